// Package cardmodel normalizes the card shapes found in sheet form state into
// the canonical card.Card and classifies variant cards.
package cardmodel

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-deck/internal/entities/card"
)

// Keys of the legacy form-state card shape
const (
	keyID             = "id"
	keyName           = "name"
	keyType           = "type"
	keyClass          = "class"
	keyLevel          = "level"
	keySelectDisplay  = "cardSelectDisplay"
	keyDisplaySummary = "displaySummary"
	keySummary        = "summary"
	keyVariantSpecial = "variantSpecial"
	keyRealType       = "realType"
)

var typeNames = map[card.Type]string{
	card.TypeUnknown:    "",
	card.TypeProfession: "class",
	card.TypeSubclass:   "subclass",
	card.TypeAncestry:   "ancestry",
	card.TypeCommunity:  "community",
	card.TypeDomain:     "domain",
	card.TypeVariant:    "variant",
}

// Normalize converts raw into a card. It returns nil only when raw cannot be
// read as a card at all; a card without a name comes back as a placeholder
// shape, not nil.
func Normalize(raw any) *card.Card {
	switch v := raw.(type) {
	case nil:
		return nil
	case card.Card:
		c := v
		fillDefaults(&c)
		return &c
	case *card.Card:
		if v == nil {
			return nil
		}
		c := *v
		fillDefaults(&c)
		return &c
	case json.RawMessage:
		return fromJSON(v)
	case []byte:
		return fromJSON(v)
	case map[string]any:
		return fromMap(v)
	default:
		return nil
	}
}

// NormalizeDeck normalizes every raw entry and fits the result to size slots.
// Unusable entries and missing trailing slots become placeholders.
func NormalizeDeck(raws []any, size int) card.Deck {
	if size < 0 {
		size = 0
	}
	deck := make(card.Deck, size)
	for i := range deck {
		deck[i] = card.Empty()
		if i >= len(raws) {
			continue
		}
		if c := Normalize(raws[i]); c != nil {
			deck[i] = *c
		}
	}
	return deck
}

// IsVariant reports whether the card wraps another semantic type
func IsVariant(c card.Card) bool {
	return c.Type == card.TypeVariant
}

// ResolveEffectiveType returns the type used to label the card. Variants with
// a known underlying type resolve to it; every other card keeps its declared type.
func ResolveEffectiveType(c card.Card) card.Type {
	if IsVariant(c) && c.VariantOf != "" {
		return c.VariantOf
	}
	return c.Type
}

// TypeName returns the display label of a card type. Types outside the known
// set are returned verbatim.
func TypeName(t card.Type) string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return string(t)
}

func fillDefaults(c *card.Card) {
	c.ID = strings.TrimSpace(c.ID)
	c.Type = parseType(string(c.Type))
	if c.Type != card.TypeVariant {
		c.VariantOf = ""
	}
}

func fromJSON(data []byte) *card.Card {
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil
	}
	if fields == nil {
		return nil
	}
	return fromMap(fields)
}

func fromMap(fields map[string]any) *card.Card {
	if fields == nil {
		return nil
	}

	c := card.Empty()

	id, ok := optionalString(fields[keyID])
	if !ok {
		return nil
	}
	name, ok := optionalString(fields[keyName])
	if !ok {
		return nil
	}
	typ, ok := optionalString(fields[keyType])
	if !ok {
		return nil
	}

	c.ID = strings.TrimSpace(id)
	c.Name = name
	c.Type = parseType(typ)
	c.Class, _ = optionalString(fields[keyClass])
	c.Level = parseLevel(fields[keyLevel])
	c.Summary = parseSummary(fields)

	if c.Type == card.TypeVariant {
		c.VariantOf = parseVariantOf(fields)
	}

	return &c
}

func parseType(raw string) card.Type {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return card.TypeUnknown
	}
	return card.Type(raw)
}

func parseVariantOf(fields map[string]any) card.Type {
	if special, ok := fields[keyVariantSpecial].(map[string]any); ok {
		if realType, _ := optionalString(special[keyRealType]); strings.TrimSpace(realType) != "" {
			return parseType(realType)
		}
	}
	if realType, _ := optionalString(fields[keyRealType]); strings.TrimSpace(realType) != "" {
		return parseType(realType)
	}
	return ""
}

func parseSummary(fields map[string]any) [card.SummarySize]string {
	var summary [card.SummarySize]string

	if display, ok := fields[keySelectDisplay].(map[string]any); ok {
		for i := range summary {
			summary[i], _ = optionalString(display["item"+strconv.Itoa(i+1)])
		}
		return summary
	}

	for _, key := range []string{keyDisplaySummary, keySummary} {
		items, ok := fields[key].([]any)
		if !ok {
			continue
		}
		for i := 0; i < len(items) && i < card.SummarySize; i++ {
			summary[i], _ = optionalString(items[i])
		}
		return summary
	}

	return summary
}

func parseLevel(raw any) int {
	switch v := raw.(type) {
	case float64:
		return int(v)
	case int:
		return v
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	default:
		return 0
	}
}

// optionalString reads a string field. Missing and null fields are fine,
// numbers are formatted, anything else makes the field unusable.
func optionalString(raw any) (string, bool) {
	switch v := raw.(type) {
	case nil:
		return "", true
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	default:
		return "", false
	}
}

// ToMap encodes c in the form-state shape that Normalize reads. Empty fields
// are left out.
func ToMap(c card.Card) map[string]any {
	fields := map[string]any{
		keyName: c.Name,
	}
	if c.ID != "" {
		fields[keyID] = c.ID
	}
	if c.Type != "" && c.Type != card.TypeUnknown {
		fields[keyType] = string(c.Type)
	}
	if c.Class != "" {
		fields[keyClass] = c.Class
	}
	if c.Level != 0 {
		fields[keyLevel] = c.Level
	}

	last := -1
	for i, item := range c.Summary {
		if item != "" {
			last = i
		}
	}
	if last >= 0 {
		summary := make([]any, last+1)
		for i := range summary {
			summary[i] = c.Summary[i]
		}
		fields[keyDisplaySummary] = summary
	}

	if c.Type == card.TypeVariant && c.VariantOf != "" {
		fields[keyVariantSpecial] = map[string]any{keyRealType: string(c.VariantOf)}
	}

	return fields
}
