package cardmodel_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-deck/internal/entities/card"
	"github.com/KirkDiggler/rpg-deck/internal/services/cardmodel"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name     string
		raw      any
		wantNil  bool
		validate func(t *testing.T, c *card.Card)
	}{
		{
			name:    "nil is unusable",
			raw:     nil,
			wantNil: true,
		},
		{
			name:    "nil pointer is unusable",
			raw:     (*card.Card)(nil),
			wantNil: true,
		},
		{
			name:    "scalar is unusable",
			raw:     42,
			wantNil: true,
		},
		{
			name:    "json array is unusable",
			raw:     json.RawMessage(`[1,2]`),
			wantNil: true,
		},
		{
			name:    "json null is unusable",
			raw:     []byte(`null`),
			wantNil: true,
		},
		{
			name:    "name of wrong kind is unusable",
			raw:     map[string]any{"name": []any{"x"}},
			wantNil: true,
		},
		{
			name: "missing name yields placeholder shape",
			raw:  map[string]any{"id": "c1", "type": "domain"},
			validate: func(t *testing.T, c *card.Card) {
				assert.True(t, c.IsEmpty())
				assert.Equal(t, "c1", c.ID)
				assert.Equal(t, card.TypeDomain, c.Type)
			},
		},
		{
			name: "legacy select display shape",
			raw: json.RawMessage(`{
				"id": "ranger",
				"name": "Ranger",
				"type": "profession",
				"class": "Ranger",
				"level": "1",
				"cardSelectDisplay": {"item1": "Bone", "item2": "Sage", "item3": "Evasion 12"}
			}`),
			validate: func(t *testing.T, c *card.Card) {
				assert.Equal(t, "ranger", c.ID)
				assert.Equal(t, "Ranger", c.Name)
				assert.Equal(t, card.TypeProfession, c.Type)
				assert.Equal(t, 1, c.Level)
				assert.Equal(t, [card.SummarySize]string{"Bone", "Sage", "Evasion 12"}, c.Summary)
			},
		},
		{
			name: "summary list is cut to three entries",
			raw: map[string]any{
				"name":           "Rune Ward",
				"type":           "Domain",
				"displaySummary": []any{"Arcana", "Level 1", "Spell", "extra"},
			},
			validate: func(t *testing.T, c *card.Card) {
				assert.Equal(t, card.TypeDomain, c.Type)
				assert.Equal(t, [card.SummarySize]string{"Arcana", "Level 1", "Spell"}, c.Summary)
			},
		},
		{
			name: "variant reads real type",
			raw: map[string]any{
				"id":             "v1",
				"name":           "Traveling Merchant",
				"type":           "variant",
				"variantSpecial": map[string]any{"realType": "community"},
			},
			validate: func(t *testing.T, c *card.Card) {
				assert.Equal(t, card.TypeVariant, c.Type)
				assert.Equal(t, card.TypeCommunity, c.VariantOf)
			},
		},
		{
			name: "variant of is dropped on non variants",
			raw:  card.Card{Name: "Loreborne", Type: "community", VariantOf: card.TypeDomain},
			validate: func(t *testing.T, c *card.Card) {
				assert.Equal(t, card.TypeCommunity, c.Type)
				assert.Empty(t, c.VariantOf)
			},
		},
		{
			name: "blank type becomes unknown",
			raw:  &card.Card{Name: "Mystery"},
			validate: func(t *testing.T, c *card.Card) {
				assert.Equal(t, card.TypeUnknown, c.Type)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := cardmodel.Normalize(tc.raw)
			if tc.wantNil {
				assert.Nil(t, c)
				return
			}
			require.NotNil(t, c)
			tc.validate(t, c)
		})
	}
}

func TestNormalizeIsDeterministic(t *testing.T) {
	raw := map[string]any{"id": "c1", "name": "Ranger", "type": "profession"}

	first := cardmodel.Normalize(raw)
	second := cardmodel.Normalize(raw)

	require.NotNil(t, first)
	assert.Equal(t, first, second)
	assert.Equal(t, "Ranger", raw["name"], "raw input must not be modified")
}

func TestNormalizeDeck(t *testing.T) {
	raws := []any{
		map[string]any{"id": "c1", "name": "Ranger", "type": "profession"},
		nil,
		"garbage",
		map[string]any{"id": "c4", "name": "Wayfinder", "type": "subclass"},
	}

	t.Run("pads to size", func(t *testing.T) {
		deck := cardmodel.NormalizeDeck(raws, 8)
		require.Len(t, deck, 8)
		assert.Equal(t, "Ranger", deck[0].Name)
		assert.True(t, deck[1].IsEmpty())
		assert.True(t, deck[2].IsEmpty())
		assert.Equal(t, "Wayfinder", deck[3].Name)
		for _, c := range deck[4:] {
			assert.Equal(t, card.Empty(), c)
		}
	})

	t.Run("truncates to size", func(t *testing.T) {
		deck := cardmodel.NormalizeDeck(raws, 2)
		require.Len(t, deck, 2)
		assert.Equal(t, "c1", deck[0].ID)
	})

	t.Run("no cards yields placeholders", func(t *testing.T) {
		deck := cardmodel.NormalizeDeck(nil, 20)
		require.Len(t, deck, 20)
		for _, c := range deck {
			assert.True(t, c.IsEmpty())
		}
	})
}

func TestResolveEffectiveType(t *testing.T) {
	testCases := []struct {
		name string
		card card.Card
		want card.Type
	}{
		{
			name: "plain card keeps declared type",
			card: card.Card{Name: "Ranger", Type: card.TypeProfession},
			want: card.TypeProfession,
		},
		{
			name: "variant resolves to underlying type",
			card: card.Card{Name: "Merchant", Type: card.TypeVariant, VariantOf: card.TypeCommunity},
			want: card.TypeCommunity,
		},
		{
			name: "variant without underlying type stays variant",
			card: card.Card{Name: "Odd", Type: card.TypeVariant},
			want: card.TypeVariant,
		},
		{
			name: "non variant ignores variant of",
			card: card.Card{Name: "Elf", Type: card.TypeAncestry, VariantOf: card.TypeDomain},
			want: card.TypeAncestry,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, cardmodel.ResolveEffectiveType(tc.card))
		})
	}
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "class", cardmodel.TypeName(card.TypeProfession))
	assert.Equal(t, "community", cardmodel.TypeName(card.TypeCommunity))
	assert.Equal(t, "", cardmodel.TypeName(card.TypeUnknown))
	assert.Equal(t, "food", cardmodel.TypeName(card.Type("food")))
}

func TestToMapIsReadBackByNormalize(t *testing.T) {
	variant := card.Card{
		ID:        "v1",
		Name:      "Traveling Merchant",
		Type:      card.TypeVariant,
		Level:     2,
		Summary:   [card.SummarySize]string{"Haggler", "", "Coin"},
		VariantOf: card.TypeCommunity,
	}

	for _, c := range []card.Card{variant, card.Empty()} {
		data, err := json.Marshal(cardmodel.ToMap(c))
		require.NoError(t, err)

		got := cardmodel.Normalize(json.RawMessage(data))
		require.NotNil(t, got)
		assert.Equal(t, c, *got)
	}
}
