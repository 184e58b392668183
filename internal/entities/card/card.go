// Package card holds the canonical card, deck and geometry types shared by the
// deck section packages.
package card

import "github.com/KirkDiggler/rpg-toolkit/core"

// Type is the declared category of a card
type Type string

// Card types. The set is closed: anything else read from form state is kept
// verbatim but gets no special treatment.
const (
	TypeUnknown    Type = "unknown"
	TypeProfession Type = "profession"
	TypeSubclass   Type = "subclass"
	TypeAncestry   Type = "ancestry"
	TypeCommunity  Type = "community"
	TypeDomain     Type = "domain"
	TypeVariant    Type = "variant"
)

// SummarySize is the number of short display strings a card carries
const SummarySize = 3

// Card is the canonical shape every raw card representation is normalized into
type Card struct {
	ID    string
	Name  string
	Type  Type
	Class string
	Level int

	// Summary holds up to three short strings shown under the card name
	Summary [SummarySize]string

	// VariantOf is the underlying semantic type of a variant card.
	// Empty for every non-variant card.
	VariantOf Type
}

// Empty returns the placeholder stored in slots that hold no card
func Empty() Card {
	return Card{Type: TypeUnknown}
}

// IsEmpty reports whether the card is a placeholder. A card without a name is
// never selectable or hoverable.
func (c Card) IsEmpty() bool {
	return c.Name == ""
}

var _ core.Entity = Card{}

// GetID returns the card ID for rpg-toolkit
func (c Card) GetID() string {
	return c.ID
}

// GetType returns the entity type for rpg-toolkit
func (c Card) GetType() string {
	return "card"
}

// Deck is the ordered list of slots of a character sheet. Slot identity is the
// index; the card stored at an index may change.
type Deck []Card

// At returns the card at index, or the placeholder when index is out of range
func (d Deck) At(index int) Card {
	if index < 0 || index >= len(d) {
		return Empty()
	}
	return d[index]
}

// IndicesOf returns every slot index holding a card with the given ID
func (d Deck) IndicesOf(id string) []int {
	if id == "" {
		return nil
	}
	var indices []int
	for i, c := range d {
		if c.ID == id {
			indices = append(indices, i)
		}
	}
	return indices
}

// Rect is an on-screen bounding box in viewport pixels
type Rect struct {
	Top    float64
	Left   float64
	Right  float64
	Bottom float64
}

// Viewport is the visible area size in pixels
type Viewport struct {
	Width  float64
	Height float64
}
