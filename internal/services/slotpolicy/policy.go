// Package slotpolicy decides, per slot index, whether a deck slot is role-locked
// and which label it carries.
package slotpolicy

import (
	"github.com/KirkDiggler/rpg-deck/internal/errors"
)

// Defaults for a character sheet deck
const (
	DefaultSize         = 20
	DefaultGenericLabel = "standard"
)

// DefaultSpecialLabels are the labels of the role-locked slots, in slot order
var DefaultSpecialLabels = []string{
	"primary class",
	"subclass",
	"heritage-1",
	"heritage-2",
	"community",
}

// SlotClass is the classification of one slot
type SlotClass struct {
	Special bool
	Label   string
}

// Config configures a Policy
type Config struct {
	// Size is the number of slots in the deck (N)
	Size int

	// SpecialLabels holds one label per special slot; the first
	// len(SpecialLabels) indices are special
	SpecialLabels []string

	GenericLabel string
}

// Validate ensures the policy configuration is usable
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateMin("Size", c.Size, 1, vb)
	if len(c.SpecialLabels) > c.Size {
		vb.Fieldf("SpecialLabels", "cannot exceed size %d", c.Size)
	}
	seen := make(map[string]struct{}, len(c.SpecialLabels))
	for _, label := range c.SpecialLabels {
		errors.ValidateRequired("SpecialLabels", label, vb)
		if _, dup := seen[label]; dup {
			vb.Fieldf("SpecialLabels", "duplicate label %q", label)
		}
		seen[label] = struct{}{}
	}
	errors.ValidateRequired("GenericLabel", c.GenericLabel, vb)

	return vb.Build()
}

// Policy classifies slots. It holds configuration constants only and never
// looks at deck contents.
type Policy struct {
	size          int
	specialLabels []string
	genericLabel  string
}

// New creates a policy from cfg
func New(cfg *Config) (*Policy, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	labels := make([]string, len(cfg.SpecialLabels))
	copy(labels, cfg.SpecialLabels)

	return &Policy{
		size:          cfg.Size,
		specialLabels: labels,
		genericLabel:  cfg.GenericLabel,
	}, nil
}

// Default returns the standard 20 slot policy with five special slots
func Default() *Policy {
	return WithSize(DefaultSize)
}

// WithSize returns the default labels over a deck of size slots. Sizes smaller
// than the special slot count shrink the special set.
func WithSize(size int) *Policy {
	if size < 1 {
		size = 1
	}
	labels := DefaultSpecialLabels
	if len(labels) > size {
		labels = labels[:size]
	}
	p, err := New(&Config{
		Size:          size,
		SpecialLabels: labels,
		GenericLabel:  DefaultGenericLabel,
	})
	if err != nil {
		panic(err)
	}
	return p
}

// Classify returns the class of index. It is total: indices outside the deck
// are generic, non-special slots.
func (p *Policy) Classify(index int) SlotClass {
	if index >= 0 && index < len(p.specialLabels) {
		return SlotClass{Special: true, Label: p.specialLabels[index]}
	}
	return SlotClass{Label: p.genericLabel}
}

// IsSpecial is shorthand for Classify(index).Special
func (p *Policy) IsSpecial(index int) bool {
	return p.Classify(index).Special
}

// Size returns the number of slots (N)
func (p *Policy) Size() int {
	return p.size
}

// SpecialCount returns the number of special slots (K)
func (p *Policy) SpecialCount() int {
	return len(p.specialLabels)
}

// InRange reports whether index addresses a slot of the deck
func (p *Policy) InRange(index int) bool {
	return index >= 0 && index < p.size
}
