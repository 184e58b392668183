// Package sheet handles deck commands against stored character sheets. Each
// call plays the caller of the deck controller: it owns the sheet's cards and
// performs replacements in the controller's callback.
package sheet

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-deck/internal/clients/catalog"
	"github.com/KirkDiggler/rpg-deck/internal/entities"
	"github.com/KirkDiggler/rpg-deck/internal/entities/card"
	"github.com/KirkDiggler/rpg-deck/internal/errors"
	deckorch "github.com/KirkDiggler/rpg-deck/internal/orchestrators/deck"
	focusorch "github.com/KirkDiggler/rpg-deck/internal/orchestrators/focus"
	"github.com/KirkDiggler/rpg-deck/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-deck/internal/pkg/modifier"
	focusrepo "github.com/KirkDiggler/rpg-deck/internal/repositories/focus"
	sheetrepo "github.com/KirkDiggler/rpg-deck/internal/repositories/sheet"
	"github.com/KirkDiggler/rpg-deck/internal/services/preview"
	"github.com/KirkDiggler/rpg-deck/internal/services/slotpolicy"
	"github.com/KirkDiggler/rpg-deck/internal/services/slotview"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	Sheets  sheetrepo.Repository
	Focus   focusrepo.Repository
	Catalog catalog.Client
	Policy  *slotpolicy.Policy
	IDGen   idgen.Generator

	// Optional
	Views       *slotview.Renderer
	Bus         events.EventBus
	ModifierKey string
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Sheets == nil {
		vb.RequiredField("Sheets")
	}
	if c.Focus == nil {
		vb.RequiredField("Focus")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Policy == nil {
		vb.RequiredField("Policy")
	}
	if c.IDGen == nil {
		vb.RequiredField("IDGen")
	}

	return vb.Build()
}

// Handler runs deck commands
type Handler struct {
	sheets      sheetrepo.Repository
	focus       focusrepo.Repository
	catalog     catalog.Client
	policy      *slotpolicy.Policy
	idGen       idgen.Generator
	views       *slotview.Renderer
	bus         events.EventBus
	modifierKey string
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
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

	bus := cfg.Bus
	if bus == nil {
		bus = events.NewBus()
	}

	return &Handler{
		sheets:      cfg.Sheets,
		focus:       cfg.Focus,
		catalog:     cfg.Catalog,
		policy:      cfg.Policy,
		idGen:       cfg.IDGen,
		views:       views,
		bus:         bus,
		modifierKey: cfg.ModifierKey,
	}, nil
}

// InitInput describes a new sheet
type InitInput struct {
	Scope string

	// NewScope generates a fresh sheet ID instead of using Scope
	NewScope bool

	// Force replaces an existing sheet
	Force bool

	// Cards fill the first slots; the rest are placeholders
	Cards []card.Card
}

// InitOutput returns the stored sheet
type InitOutput struct {
	Sheet *entities.Sheet
}

// Init stores a sheet of placeholder slots
func (h *Handler) Init(ctx context.Context, input *InitInput) (*InitOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	scope := input.Scope
	if input.NewScope {
		scope = h.idGen.Generate()
	}
	if scope == "" {
		return nil, errors.InvalidArgument("scope is required")
	}
	if len(input.Cards) > h.policy.Size() {
		return nil, errors.InvalidArgumentf("%d cards do not fit %d slots", len(input.Cards), h.policy.Size())
	}

	cards := make(card.Deck, h.policy.Size())
	for i := range cards {
		cards[i] = card.Deck(input.Cards).At(i)
	}
	newSheet := &entities.Sheet{ID: scope, Cards: cards}

	created, err := h.sheets.Create(ctx, sheetrepo.CreateInput{Sheet: newSheet})
	if err == nil {
		slog.Info("Created sheet", "scope", scope, "slots", len(cards))
		return &InitOutput{Sheet: created.Sheet}, nil
	}
	if !errors.IsAlreadyExists(err) || !input.Force {
		return nil, err
	}

	updated, err := h.sheets.Update(ctx, sheetrepo.UpdateInput{Sheet: newSheet})
	if err != nil {
		return nil, err
	}
	slog.Info("Replaced sheet", "scope", scope, "slots", len(cards))

	return &InitOutput{Sheet: updated.Sheet}, nil
}

// ListSlotsInput selects the sheet to list
type ListSlotsInput struct {
	Scope string
}

// ListSlotsOutput holds one view per slot
type ListSlotsOutput struct {
	Slots   []slotview.View
	Focused []int
}

// ListSlots returns the display data of every slot of a sheet
func (h *Handler) ListSlots(ctx context.Context, input *ListSlotsInput) (*ListSlotsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	sess, err := h.open(ctx, input.Scope, catalog.Filters{})
	if err != nil {
		return nil, err
	}
	defer sess.close()

	return &ListSlotsOutput{
		Slots:   sess.controller.Slots(),
		Focused: sess.controller.Focused(),
	}, nil
}

// ToggleFocusInput selects the slot to toggle
type ToggleFocusInput struct {
	Scope string
	Index int
}

// ToggleFocusOutput holds the focus after the toggle
type ToggleFocusOutput struct {
	Focused []int
}

// ToggleFocus flips the focus of a slot, special slots included
func (h *Handler) ToggleFocus(ctx context.Context, input *ToggleFocusInput) (*ToggleFocusOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := h.checkIndex(input.Index); err != nil {
		return nil, err
	}

	sess, err := h.open(ctx, input.Scope, catalog.Filters{})
	if err != nil {
		return nil, err
	}
	defer sess.close()

	sess.controller.SecondaryClick(ctx, input.Index, nil)

	return &ToggleFocusOutput{Focused: sess.controller.Focused()}, nil
}

// ReplaceCardInput picks a catalog card for a slot. An empty CardID cancels
// the dialog.
type ReplaceCardInput struct {
	Scope   string
	Index   int
	CardID  string
	Filters catalog.Filters
}

// ReplaceCardOutput reports the outcome of the dialog
type ReplaceCardOutput struct {
	Card      *card.Card
	Cancelled bool
}

// ReplaceCard runs the replace dialog for a slot and stores the sheet when a
// card was chosen
func (h *Handler) ReplaceCard(ctx context.Context, input *ReplaceCardInput) (*ReplaceCardOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := h.checkIndex(input.Index); err != nil {
		return nil, err
	}

	sess, err := h.open(ctx, input.Scope, input.Filters)
	if err != nil {
		return nil, err
	}
	defer sess.close()

	sess.controller.PrimaryClick(input.Index)
	if !sess.dialog.open {
		return nil, errors.SlotLocked(input.Index, h.policy.Classify(input.Index).Label)
	}

	if input.CardID == "" {
		sess.controller.CloseDialog()
		return &ReplaceCardOutput{Cancelled: true}, nil
	}

	chosen, err := h.catalog.Get(ctx, input.CardID)
	if err != nil {
		sess.controller.CloseDialog()
		return nil, err
	}
	if !sess.dialog.request.Filters.Match(*chosen) {
		sess.controller.CloseDialog()
		return nil, errors.InvalidArgumentf("card %s does not match the dialog filters", input.CardID)
	}

	sess.controller.SelectCard(chosen)

	if err := sess.save(ctx); err != nil {
		return nil, err
	}

	return &ReplaceCardOutput{Card: chosen}, nil
}

// PreviewInput describes the hovered slot and its measured bounds
type PreviewInput struct {
	Scope    string
	Index    int
	Bounds   *card.Rect
	Viewport card.Viewport

	// HeldKeys are published as key-down events before placing the preview
	HeldKeys []string
}

// PreviewOutput holds the preview placement
type PreviewOutput struct {
	Hovered    bool
	Placement  preview.Placement
	AltPressed bool
}

// Preview hovers a slot and places its preview
func (h *Handler) Preview(ctx context.Context, input *PreviewInput) (*PreviewOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := h.checkIndex(input.Index); err != nil {
		return nil, err
	}

	sess, err := h.open(ctx, input.Scope, catalog.Filters{})
	if err != nil {
		return nil, err
	}
	defer sess.close()

	for _, key := range input.HeldKeys {
		if err := modifier.PublishKeyDown(ctx, h.bus, key); err != nil {
			return nil, err
		}
	}

	sess.controller.HoverEnter(input.Index)
	_, hovered := sess.controller.Hovered()

	measure := func(index int) *card.Rect {
		if index != input.Index {
			return nil
		}
		return input.Bounds
	}

	return &PreviewOutput{
		Hovered:    hovered,
		Placement:  sess.controller.Preview(measure, input.Viewport),
		AltPressed: sess.controller.AltPressed(),
	}, nil
}

// SearchCatalogInput holds the dialog filter state
type SearchCatalogInput struct {
	Filters catalog.Filters
	Limit   int
}

// SearchCatalogOutput holds the matching cards
type SearchCatalogOutput struct {
	Cards []card.Card
}

// SearchCatalog lists the cards the dialog would offer
func (h *Handler) SearchCatalog(ctx context.Context, input *SearchCatalogInput) (*SearchCatalogOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := h.catalog.Search(ctx, &catalog.SearchInput{
		Filters: input.Filters,
		Limit:   input.Limit,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to search catalog")
	}

	return &SearchCatalogOutput{Cards: out.Cards}, nil
}

func (h *Handler) checkIndex(index int) error {
	if !h.policy.InRange(index) {
		return errors.SlotOutOfRange(index, h.policy.Size())
	}
	return nil
}

// open loads a sheet and mounts a controller over it
func (h *Handler) open(ctx context.Context, scope string, filters catalog.Filters) (*session, error) {
	if scope == "" {
		return nil, errors.InvalidArgument("scope is required")
	}

	out, err := h.sheets.Get(ctx, sheetrepo.GetInput{ID: scope})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load sheet %s", scope)
	}

	cards := make(card.Deck, h.policy.Size())
	for i := range cards {
		cards[i] = out.Sheet.Cards.At(i)
	}
	out.Sheet.Cards = cards

	sess := &session{
		sheets: h.sheets,
		sheet:  out.Sheet,
		dialog: &dialog{},
	}
	deckSource := func() card.Deck { return sess.sheet.Cards }

	set, err := focusorch.NewSet(&focusorch.Config{
		Repository: h.focus,
		Deck:       deckSource,
		Scope:      scope,
	})
	if err != nil {
		return nil, err
	}

	tracker, err := modifier.NewTracker(&modifier.Config{Bus: h.bus, Key: h.modifierKey})
	if err != nil {
		return nil, err
	}

	controller, err := deckorch.NewController(&deckorch.Config{
		Deck:         deckSource,
		Policy:       h.policy,
		Focus:        set,
		Dialog:       sess.dialog,
		OnCardChange: sess.replace,
		Filters:      filters,
		Modifier:     tracker,
		Views:        h.views,
	})
	if err != nil {
		return nil, err
	}

	sess.controller = controller
	controller.Mount(ctx)

	return sess, nil
}
