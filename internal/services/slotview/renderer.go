// Package slotview derives the per-slot display data of a deck. The card
// dependent part of each view is memoized by card identity and slot index.
package slotview

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/KirkDiggler/rpg-deck/internal/entities/card"
	"github.com/KirkDiggler/rpg-deck/internal/errors"
	"github.com/KirkDiggler/rpg-deck/internal/services/cardmodel"
	"github.com/KirkDiggler/rpg-deck/internal/services/slotpolicy"
)

// DefaultCacheSize holds a few decks worth of views
const DefaultCacheSize = 128

// View is what the rendering layer needs to draw one slot
type View struct {
	Index   int    `json:"index"`
	Label   string `json:"label"`
	Special bool   `json:"special"`
	Empty   bool   `json:"empty"`
	Name    string `json:"name,omitempty"`

	// TypeLabel is the effective type name, set only on filled generic slots
	TypeLabel string                   `json:"type_label,omitempty"`
	Summary   [card.SummarySize]string `json:"summary"`

	Focused bool `json:"focused"`
	Hovered bool `json:"hovered"`
}

// State is the interaction state overlaid on a slot view
type State struct {
	Focused bool
	Hovered bool
}

type cacheKey struct {
	cardID string
	index  int
}

// Config configures a Renderer
type Config struct {
	Policy    *slotpolicy.Policy
	CacheSize int
}

// Validate checks the renderer configuration
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Policy == nil {
		vb.RequiredField("Policy")
	}
	if c.CacheSize < 0 {
		vb.Field("CacheSize", "must not be negative")
	}

	return vb.Build()
}

// Renderer builds slot views
type Renderer struct {
	policy *slotpolicy.Policy
	cache  *lru.Cache[cacheKey, View]
}

// NewRenderer creates a renderer. A zero CacheSize uses DefaultCacheSize.
func NewRenderer(cfg *Config) (*Renderer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	size := cfg.CacheSize
	if size == 0 {
		size = DefaultCacheSize
	}

	cache, err := lru.New[cacheKey, View](size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create view cache")
	}

	return &Renderer{
		policy: cfg.Policy,
		cache:  cache,
	}, nil
}

// Render returns the view of slot index holding c
func (r *Renderer) Render(index int, c card.Card, state State) View {
	view := r.base(index, c)
	view.Focused = state.Focused
	view.Hovered = state.Hovered
	return view
}

// RenderDeck renders every slot of deck. stateOf supplies the overlay per index.
func (r *Renderer) RenderDeck(deck card.Deck, stateOf func(index int) State) []View {
	views := make([]View, len(deck))
	for i, c := range deck {
		var state State
		if stateOf != nil {
			state = stateOf(i)
		}
		views[i] = r.Render(i, c, state)
	}
	return views
}

// Len returns the number of memoized views
func (r *Renderer) Len() int {
	return r.cache.Len()
}

// Purge drops every memoized view
func (r *Renderer) Purge() {
	r.cache.Purge()
}

// base computes the card dependent part of a view. Cards without an ID are
// not memoized since nothing identifies them across renders.
func (r *Renderer) base(index int, c card.Card) View {
	if c.ID == "" {
		return r.derive(index, c)
	}

	key := cacheKey{cardID: c.ID, index: index}
	if view, ok := r.cache.Get(key); ok {
		return view
	}

	view := r.derive(index, c)
	r.cache.Add(key, view)
	return view
}

func (r *Renderer) derive(index int, c card.Card) View {
	class := r.policy.Classify(index)
	view := View{
		Index:   index,
		Label:   class.Label,
		Special: class.Special,
		Empty:   c.IsEmpty(),
		Name:    c.Name,
		Summary: c.Summary,
	}

	if !class.Special && !view.Empty {
		view.TypeLabel = cardmodel.TypeName(cardmodel.ResolveEffectiveType(c))
	}

	return view
}
