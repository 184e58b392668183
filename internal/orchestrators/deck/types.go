package deck

//go:generate mockgen -destination=mock/mock_dialog.go -package=deckmock github.com/KirkDiggler/rpg-deck/internal/orchestrators/deck Dialog

import (
	"github.com/KirkDiggler/rpg-deck/internal/clients/catalog"
	"github.com/KirkDiggler/rpg-deck/internal/entities/card"
)

// DeckSource returns the caller's deck as it is at call time
type DeckSource func() card.Deck

// CardChangeFunc is the caller's replace callback. It is invoked at most once
// per completed selection.
type CardChangeFunc func(index int, c card.Card)

// Measurer returns the on-screen bounds of slot index, or nil when the slot
// has not been laid out
type Measurer func(index int) *card.Rect

// DefaultPreventer suppresses the platform's default action for a gesture
type DefaultPreventer interface {
	PreventDefault()
}

// DialogRequest asks the selection dialog to open for a slot
type DialogRequest struct {
	TargetIndex int
	Filters     catalog.Filters
}

// Dialog is the card selection dialog. It reports the outcome back through
// Controller.SelectCard or Controller.CloseDialog.
type Dialog interface {
	Open(req DialogRequest)
	Close()
}
