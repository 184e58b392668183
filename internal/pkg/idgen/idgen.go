// Package idgen generates identifiers for character sheets and deck cards
package idgen

import (
	"strconv"
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

// Prefixes of generated identifiers
const (
	PrefixSheet = "sheet"
	PrefixCard  = "card"
)

const separator = "_"

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// Prefixed joins a prefix and a fresh suffix as prefix_suffix. An empty
// prefix yields the bare suffix.
type Prefixed struct {
	prefix string
	next   func() string
}

var _ Generator = (*Prefixed)(nil)

// NewUUID returns a generator of random UUID suffixes
func NewUUID(prefix string) *Prefixed {
	return &Prefixed{prefix: prefix, next: uuid.NewString}
}

// NewSequential returns a generator counting up from 1, for tests
func NewSequential(prefix string) *Prefixed {
	var n atomic.Uint64
	return &Prefixed{
		prefix: prefix,
		next:   func() string { return strconv.FormatUint(n.Add(1), 10) },
	}
}

// Generate returns the next ID
func (g *Prefixed) Generate() string {
	if g.prefix == "" {
		return g.next()
	}
	return g.prefix + separator + g.next()
}

// ParseUUID returns the UUID part of an ID made by NewUUID(prefix)
func ParseUUID(prefix, id string) (uuid.UUID, bool) {
	if prefix != "" {
		rest, ok := strings.CutPrefix(id, prefix+separator)
		if !ok {
			return uuid.Nil, false
		}
		id = rest
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return uuid.Nil, false
	}
	return parsed, true
}
