// Package focus implements the focus set of a deck: the highlighted slots,
// persisted by card identity through the focus repository.
package focus

import (
	"context"
	"log/slog"
	"sort"

	"github.com/KirkDiggler/rpg-deck/internal/entities/card"
	"github.com/KirkDiggler/rpg-deck/internal/errors"
	focusrepo "github.com/KirkDiggler/rpg-deck/internal/repositories/focus"
)

// DeckSource returns the deck as it is at call time
type DeckSource func() card.Deck

// Config holds the dependencies for a focus set
type Config struct {
	Repository focusrepo.Repository
	Deck       DeckSource

	// Scope selects the persisted entry, one per character sheet
	Scope string
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Deck == nil {
		vb.RequiredField("Deck")
	}
	errors.ValidateRequired("Scope", c.Scope, vb)

	return vb.Build()
}

// Set is the set of focused slot indices. It is driven from a single event
// loop and is not safe for concurrent use.
type Set struct {
	repo    focusrepo.Repository
	deck    DeckSource
	scope   string
	indices map[int]struct{}
}

// NewSet creates an empty focus set. Call Load once the deck is available.
func NewSet(cfg *Config) (*Set, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Set{
		repo:    cfg.Repository,
		deck:    cfg.Deck,
		scope:   cfg.Scope,
		indices: make(map[int]struct{}),
	}, nil
}

// Load replaces the set with the persisted focus resolved against the current
// deck. Every non-empty slot holding a persisted ID is focused; IDs no such
// slot holds are dropped, and the pruned list is written back so they do not come back.
func (s *Set) Load(ctx context.Context) []int {
	s.indices = make(map[int]struct{})

	out, err := s.repo.Load(ctx, focusrepo.LoadInput{Scope: s.scope})
	if err != nil {
		slog.Warn("Failed to load focused cards",
			"scope", s.scope,
			"error", err)
		return s.Indices()
	}

	deck := s.deck()
	dropped := 0
	for _, id := range out.CardIDs {
		found := false
		for _, index := range deck.IndicesOf(id) {
			if deck.At(index).IsEmpty() {
				continue
			}
			s.indices[index] = struct{}{}
			found = true
		}
		if !found {
			dropped++
		}
	}

	if dropped > 0 {
		slog.Info("Dropped stale focused cards",
			"scope", s.scope,
			"dropped", dropped)
		s.Persist(ctx)
	}

	return s.Indices()
}

// Toggle flips membership of index and persists the result. Any slot may be
// toggled, special ones included, and there is no limit on the set size.
func (s *Set) Toggle(ctx context.Context, index int) []int {
	if _, ok := s.indices[index]; ok {
		delete(s.indices, index)
	} else {
		s.indices[index] = struct{}{}
	}

	s.Persist(ctx)

	return s.Indices()
}

// Persist writes the IDs of the focused cards, read from the deck current at
// call time. Slots without an ID are skipped. Failures are logged only.
func (s *Set) Persist(ctx context.Context) {
	ids := s.CardIDs()

	if _, err := s.repo.Save(ctx, focusrepo.SaveInput{Scope: s.scope, CardIDs: ids}); err != nil {
		slog.Warn("Failed to save focused cards",
			"scope", s.scope,
			"count", len(ids),
			"error", err)
	}
}

// CardIDs maps the focused indices to card IDs in slot order, without
// duplicates
func (s *Set) CardIDs() []string {
	deck := s.deck()
	ids := make([]string, 0, len(s.indices))
	seen := make(map[string]struct{}, len(s.indices))

	for _, index := range s.Indices() {
		id := deck.At(index).ID
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	return ids
}

// Contains reports whether index is focused
func (s *Set) Contains(index int) bool {
	_, ok := s.indices[index]
	return ok
}

// Indices returns the focused indices in ascending order
func (s *Set) Indices() []int {
	out := make([]int, 0, len(s.indices))
	for index := range s.indices {
		out = append(out, index)
	}
	sort.Ints(out)
	return out
}

// Len returns the number of focused slots
func (s *Set) Len() int {
	return len(s.indices)
}
