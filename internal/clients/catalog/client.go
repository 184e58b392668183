// Package catalog serves the card catalog behind the selection dialog from
// data embedded in the binary.
package catalog

//go:generate mockgen -destination=mock/mock_client.go -package=catalogmock github.com/KirkDiggler/rpg-deck/internal/clients/catalog Client

import (
	"context"
	"embed"
	"encoding/json"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/KirkDiggler/rpg-deck/internal/entities/card"
	"github.com/KirkDiggler/rpg-deck/internal/errors"
	"github.com/KirkDiggler/rpg-deck/internal/services/cardmodel"
)

//go:embed data/cards.json
var catalogFS embed.FS

const catalogFile = "data/cards.json"

// CategoryAll matches every card type
const CategoryAll = "all"

// Filters is the dialog's filter state. The deck controller threads it
// through untouched; only the catalog reads it.
type Filters struct {
	// Category is a card type, or a type display name such as "class"
	Category string
	Query    string
	Classes  []string
	Levels   []int
}

// SearchInput contains the search parameters
type SearchInput struct {
	Filters Filters
	Limit   int
}

// SearchOutput contains the matching cards in catalog order
type SearchOutput struct {
	Cards []card.Card
}

// Client defines the catalog operations used by the selection dialog
type Client interface {
	Search(ctx context.Context, input *SearchInput) (*SearchOutput, error)
	Get(ctx context.Context, id string) (*card.Card, error)
}

type embeddedClient struct {
	once  sync.Once
	cards []card.Card
	byID  map[string]int
	err   error
}

// NewEmbedded creates a client over the embedded catalog. The data is
// decoded on first use.
func NewEmbedded() Client {
	return &embeddedClient{}
}

var _ Client = (*embeddedClient)(nil)

func (c *embeddedClient) init() {
	raw, err := catalogFS.ReadFile(catalogFile)
	if err != nil {
		c.err = errors.Wrap(err, "failed to read embedded catalog")
		return
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		c.err = errors.Wrap(err, "failed to parse embedded catalog")
		return
	}

	c.cards = make([]card.Card, 0, len(entries))
	c.byID = make(map[string]int, len(entries))
	for i, entry := range entries {
		parsed := cardmodel.Normalize(entry)
		if parsed == nil || parsed.IsEmpty() || parsed.ID == "" {
			slog.Warn("Skipping unusable catalog entry", "position", i)
			continue
		}
		c.byID[parsed.ID] = len(c.cards)
		c.cards = append(c.cards, *parsed)
	}
}

func (c *embeddedClient) load() error {
	c.once.Do(c.init)
	return c.err
}

// Search returns the cards matching every non-empty filter
func (c *embeddedClient) Search(_ context.Context, input *SearchInput) (*SearchOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Limit < 0 {
		return nil, errors.InvalidArgument("limit must not be negative")
	}
	if err := c.load(); err != nil {
		return nil, err
	}

	out := &SearchOutput{Cards: []card.Card{}}
	for _, candidate := range c.cards {
		if !input.Filters.Match(candidate) {
			continue
		}
		out.Cards = append(out.Cards, candidate)
		if input.Limit > 0 && len(out.Cards) == input.Limit {
			break
		}
	}

	return out, nil
}

// Get returns the card with id
func (c *embeddedClient) Get(_ context.Context, id string) (*card.Card, error) {
	if id == "" {
		return nil, errors.InvalidArgument("id is required")
	}
	if err := c.load(); err != nil {
		return nil, err
	}

	index, ok := c.byID[id]
	if !ok {
		return nil, errors.CardNotFound(id)
	}

	found := c.cards[index]
	return &found, nil
}

// Match reports whether c passes every non-empty filter. Category matches the
// effective type, so variants are found under the type they stand in for.
func (f Filters) Match(c card.Card) bool {
	if f.Category != "" && !strings.EqualFold(f.Category, CategoryAll) {
		effective := cardmodel.ResolveEffectiveType(c)
		if !strings.EqualFold(f.Category, string(effective)) &&
			!strings.EqualFold(f.Category, cardmodel.TypeName(effective)) {
			return false
		}
	}

	if q := strings.TrimSpace(f.Query); q != "" {
		if !strings.Contains(strings.ToLower(c.Name), strings.ToLower(q)) {
			return false
		}
	}

	if len(f.Classes) > 0 && !slices.ContainsFunc(f.Classes, func(class string) bool {
		return strings.EqualFold(class, c.Class)
	}) {
		return false
	}

	if len(f.Levels) > 0 && !slices.Contains(f.Levels, c.Level) {
		return false
	}

	return true
}
