// Package entities provides core data structures for rpg-deck.
package entities

import (
	"time"

	"github.com/KirkDiggler/rpg-deck/internal/entities/card"
)

// Sheet is the stored deck of one character sheet. Its ID is also the scope
// its focused cards are persisted under.
type Sheet struct {
	ID        string
	Cards     card.Deck
	CreatedAt time.Time
	UpdatedAt time.Time
}
