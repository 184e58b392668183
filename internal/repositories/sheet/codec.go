package sheet

import (
	"encoding/json"
	"time"

	"github.com/KirkDiggler/rpg-deck/internal/entities"
	"github.com/KirkDiggler/rpg-deck/internal/entities/card"
	"github.com/KirkDiggler/rpg-deck/internal/errors"
	"github.com/KirkDiggler/rpg-deck/internal/services/cardmodel"
)

// record is the stored form of a sheet. Cards keep the form-state shape so a
// hand-edited file reads the same way the dialog's cards do.
type record struct {
	ID        string            `json:"id"`
	Cards     []json.RawMessage `json:"cards"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

func encode(s *entities.Sheet) ([]byte, error) {
	rec := record{
		ID:        s.ID,
		Cards:     make([]json.RawMessage, len(s.Cards)),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}

	for i, c := range s.Cards {
		data, err := json.Marshal(cardmodel.ToMap(c))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to marshal card %d", i)
		}
		rec.Cards[i] = data
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal sheet")
	}
	return data, nil
}

// decode reads a stored sheet. Cards that cannot be read become placeholders.
func decode(data []byte) (*entities.Sheet, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal sheet")
	}

	raws := make([]any, len(rec.Cards))
	for i, raw := range rec.Cards {
		raws[i] = raw
	}

	return &entities.Sheet{
		ID:        rec.ID,
		Cards:     cardmodel.NormalizeDeck(raws, len(raws)),
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}, nil
}

func copySheet(s *entities.Sheet) *entities.Sheet {
	out := *s
	out.Cards = make(card.Deck, len(s.Cards))
	copy(out.Cards, s.Cards)
	return &out
}
