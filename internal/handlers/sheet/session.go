package sheet

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-deck/internal/entities"
	"github.com/KirkDiggler/rpg-deck/internal/entities/card"
	deckorch "github.com/KirkDiggler/rpg-deck/internal/orchestrators/deck"
	sheetrepo "github.com/KirkDiggler/rpg-deck/internal/repositories/sheet"
)

// session is one mounted controller over a loaded sheet
type session struct {
	sheets     sheetrepo.Repository
	sheet      *entities.Sheet
	dialog     *dialog
	controller *deckorch.Controller
	changed    bool
}

// replace is the controller's replace callback
func (s *session) replace(index int, c card.Card) {
	s.sheet.Cards[index] = c
	s.changed = true
}

// save stores the sheet when the callback changed it
func (s *session) save(ctx context.Context) error {
	if !s.changed {
		return nil
	}

	if _, err := s.sheets.Update(ctx, sheetrepo.UpdateInput{Sheet: s.sheet}); err != nil {
		return err
	}
	s.changed = false

	return nil
}

func (s *session) close() {
	if s.controller != nil {
		s.controller.Unmount()
	}
}

// dialog stands in for the selection dialog. The handler resolves it
// directly from the command input.
type dialog struct {
	open    bool
	request deckorch.DialogRequest
}

var _ deckorch.Dialog = (*dialog)(nil)

func (d *dialog) Open(req deckorch.DialogRequest) {
	slog.Debug("Selection dialog opened",
		"target_index", req.TargetIndex,
		"category", req.Filters.Category)
	d.open = true
	d.request = req
}

func (d *dialog) Close() {
	d.open = false
}
