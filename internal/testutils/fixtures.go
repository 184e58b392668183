package testutils

import (
	"github.com/KirkDiggler/rpg-deck/internal/entities/card"
	"github.com/KirkDiggler/rpg-deck/internal/testutils/builders"
)

// Fixture scopes and sizes
const (
	TestScope = "sheet_test_001"

	// ExampleDeckSize is the small deck used by the interaction scenarios
	ExampleDeckSize = 8
)

// RangerCard is a class card with an ID
func RangerCard() card.Card {
	return card.Card{
		ID:      "c1",
		Name:    "Ranger",
		Type:    card.TypeProfession,
		Class:   "Ranger",
		Level:   1,
		Summary: [card.SummarySize]string{"Bone", "Sage", "Evasion 12"},
	}
}

// WarriorCard is the card the selection dialog hands back in the scenarios
func WarriorCard() card.Card {
	return card.Card{
		ID:      "c2",
		Name:    "Warrior",
		Type:    card.TypeProfession,
		Class:   "Warrior",
		Level:   1,
		Summary: [card.SummarySize]string{"Blade", "Bone", "Evasion 11"},
	}
}

// MerchantVariant is a variant card standing in for a community card
func MerchantVariant() card.Card {
	return card.Card{
		ID:        "v1",
		Name:      "Traveling Merchant",
		Type:      card.TypeVariant,
		VariantOf: card.TypeCommunity,
	}
}

// CreateExampleDeck returns the 8 slot deck with the Ranger in slot 2 and the
// rest empty
func CreateExampleDeck() card.Deck {
	return builders.NewDeckBuilder(ExampleDeckSize).
		WithCard(2, RangerCard()).
		Build()
}
