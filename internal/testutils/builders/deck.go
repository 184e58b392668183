// Package builders provides test data builders for creating test fixtures
package builders

import (
	"github.com/KirkDiggler/rpg-deck/internal/entities/card"
)

// DeckBuilder provides a fluent interface for building test decks
type DeckBuilder struct {
	deck card.Deck
}

// NewDeckBuilder creates a deck of size placeholder slots
func NewDeckBuilder(size int) *DeckBuilder {
	deck := make(card.Deck, size)
	for i := range deck {
		deck[i] = card.Empty()
	}
	return &DeckBuilder{deck: deck}
}

// WithCard stores c at index
func (b *DeckBuilder) WithCard(index int, c card.Card) *DeckBuilder {
	b.deck[index] = c
	return b
}

// WithNamedCard stores a domain card with the given ID and name at index
func (b *DeckBuilder) WithNamedCard(index int, id, name string) *DeckBuilder {
	return b.WithCard(index, card.Card{ID: id, Name: name, Type: card.TypeDomain})
}

// Build returns a copy of the deck
func (b *DeckBuilder) Build() card.Deck {
	out := make(card.Deck, len(b.deck))
	copy(out, b.deck)
	return out
}
