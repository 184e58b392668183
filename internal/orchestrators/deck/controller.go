// Package deck implements the interaction controller of a character sheet
// deck: clicks, hovers and the replace-card dialog lifecycle.
package deck

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-deck/internal/clients/catalog"
	"github.com/KirkDiggler/rpg-deck/internal/entities/card"
	"github.com/KirkDiggler/rpg-deck/internal/errors"
	"github.com/KirkDiggler/rpg-deck/internal/orchestrators/focus"
	"github.com/KirkDiggler/rpg-deck/internal/pkg/modifier"
	"github.com/KirkDiggler/rpg-deck/internal/services/preview"
	"github.com/KirkDiggler/rpg-deck/internal/services/slotpolicy"
	"github.com/KirkDiggler/rpg-deck/internal/services/slotview"
)

const none = -1

// Config holds the dependencies for the controller
type Config struct {
	Deck         DeckSource
	Policy       *slotpolicy.Policy
	Focus        *focus.Set
	Dialog       Dialog
	OnCardChange CardChangeFunc

	// Filters is handed to the dialog on every open
	Filters catalog.Filters

	// Optional
	Modifier *modifier.Tracker
	Views    *slotview.Renderer
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Deck == nil {
		vb.RequiredField("Deck")
	}
	if c.Policy == nil {
		vb.RequiredField("Policy")
	}
	if c.Focus == nil {
		vb.RequiredField("Focus")
	}
	if c.Dialog == nil {
		vb.RequiredField("Dialog")
	}
	if c.OnCardChange == nil {
		vb.RequiredField("OnCardChange")
	}

	return vb.Build()
}

// Controller holds the hover and pending replacement state of one deck.
// Every method is expected to run on the caller's event loop.
type Controller struct {
	deck     DeckSource
	policy   *slotpolicy.Policy
	focus    *focus.Set
	dialog   Dialog
	onChange CardChangeFunc
	filters  catalog.Filters
	modifier *modifier.Tracker
	views    *slotview.Renderer

	mounted    bool
	hovered    int
	pending    int
	dialogOpen bool
}

// NewController creates an unmounted controller
func NewController(cfg *Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	views := cfg.Views
	if views == nil {
		var err error
		views, err = slotview.NewRenderer(&slotview.Config{Policy: cfg.Policy})
		if err != nil {
			return nil, errors.Wrap(err, "failed to create slot renderer")
		}
	}

	return &Controller{
		deck:     cfg.Deck,
		policy:   cfg.Policy,
		focus:    cfg.Focus,
		dialog:   cfg.Dialog,
		onChange: cfg.OnCardChange,
		filters:  cfg.Filters,
		modifier: cfg.Modifier,
		views:    views,
		hovered:  none,
		pending:  none,
	}, nil
}

// Mount loads the persisted focus for the current deck and starts listening
// for the modifier key. Mounting twice does nothing.
func (c *Controller) Mount(ctx context.Context) {
	if c.mounted {
		return
	}

	focused := c.focus.Load(ctx)
	if c.modifier != nil {
		c.modifier.Start()
	}
	c.mounted = true

	slog.Debug("Deck mounted",
		"slots", c.policy.Size(),
		"focused", len(focused))
}

// Unmount stops the modifier listeners registered by Mount
func (c *Controller) Unmount() {
	if !c.mounted {
		return
	}

	if c.modifier != nil {
		c.modifier.Stop()
	}
	c.mounted = false
}

// Mounted reports whether Mount has run without a matching Unmount
func (c *Controller) Mounted() bool {
	return c.mounted
}

// PrimaryClick starts a replacement of slot index and opens the dialog.
// Special and out-of-range slots ignore the click. A click while a
// replacement is pending moves it to the new slot.
func (c *Controller) PrimaryClick(index int) {
	if !c.policy.InRange(index) || c.policy.IsSpecial(index) {
		return
	}

	if c.pending != none && c.pending != index {
		slog.Debug("Retargeting pending replacement",
			"from", c.pending,
			"to", index)
	}

	c.pending = index
	c.dialogOpen = true
	c.dialog.Open(DialogRequest{
		TargetIndex: index,
		Filters:     c.filters,
	})
}

// SecondaryClick toggles focus on index, special slots included, and
// suppresses the platform context action
func (c *Controller) SecondaryClick(ctx context.Context, index int, preventer DefaultPreventer) {
	if preventer != nil {
		preventer.PreventDefault()
	}

	if !c.policy.InRange(index) {
		return
	}

	c.focus.Toggle(ctx, index)
}

// HoverEnter hovers index when it holds a card. Placeholders never hover.
func (c *Controller) HoverEnter(index int) {
	if !c.policy.InRange(index) {
		return
	}
	if c.deck().At(index).IsEmpty() {
		return
	}

	c.hovered = index
}

// HoverLeave clears the hover only when index is the hovered slot, so a late
// leave from a previous slot cannot clear a newer hover.
func (c *Controller) HoverLeave(index int) {
	if c.hovered == index {
		c.hovered = none
	}
}

// SelectCard completes the pending replacement with chosen. Without a pending
// replacement it does nothing; a nil chosen card cancels.
func (c *Controller) SelectCard(chosen *card.Card) {
	if c.pending == none {
		return
	}
	if chosen == nil {
		c.CloseDialog()
		return
	}

	target := c.pending
	c.onChange(target, *chosen)

	c.pending = none
	c.closeDialog()

	slog.Debug("Replaced deck card",
		"index", target,
		"card_id", chosen.ID)
}

// CloseDialog cancels the pending replacement without calling the replace
// callback
func (c *Controller) CloseDialog() {
	c.pending = none
	c.closeDialog()
}

func (c *Controller) closeDialog() {
	if !c.dialogOpen {
		return
	}
	c.dialogOpen = false
	c.dialog.Close()
}

// Hovered returns the hovered slot
func (c *Controller) Hovered() (int, bool) {
	return c.hovered, c.hovered != none
}

// Pending returns the slot awaiting a replacement card
func (c *Controller) Pending() (int, bool) {
	return c.pending, c.pending != none
}

// DialogOpen reports whether the controller has the dialog open
func (c *Controller) DialogOpen() bool {
	return c.dialogOpen
}

// Focused returns the focused slots in ascending order
func (c *Controller) Focused() []int {
	return c.focus.Indices()
}

// IsFocused reports whether index is focused
func (c *Controller) IsFocused(index int) bool {
	return c.focus.Contains(index)
}

// AltPressed reports whether the modifier key is held. It never affects the
// controller's own transitions.
func (c *Controller) AltPressed() bool {
	return c.modifier != nil && c.modifier.Pressed()
}

// Preview places the hovered slot's preview. Nothing hovered, or no bounds for
// the hovered slot, gives the empty placement.
func (c *Controller) Preview(measure Measurer, vp card.Viewport) preview.Placement {
	index, ok := c.Hovered()
	if !ok || measure == nil {
		return preview.Placement{}
	}
	return preview.Place(measure(index), vp)
}

// Slots returns the display data of every slot
func (c *Controller) Slots() []slotview.View {
	deck := c.deck()
	views := make([]slotview.View, c.policy.Size())
	for i := range views {
		views[i] = c.views.Render(i, deck.At(i), slotview.State{
			Focused: c.focus.Contains(i),
			Hovered: c.hovered == i,
		})
	}
	return views
}
