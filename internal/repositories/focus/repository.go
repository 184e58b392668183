// Package focus provides the storage collaborator that persists which deck
// cards a user has focused
package focus

//go:generate mockgen -destination=mock/mock_repository.go -package=focusmock github.com/KirkDiggler/rpg-deck/internal/repositories/focus Repository

import (
	"context"
)

// DefaultScope is used when a sheet has no scope of its own
const DefaultScope = "default"

// Repository persists focused card IDs. Implementations store IDs, never slot
// indices, so reordering a deck does not move focus to another card.
type Repository interface {
	// Load returns the persisted card IDs for a scope
	// Returns an empty list (not NotFound) when nothing was saved yet
	// Returns errors.InvalidArgument for an empty scope
	Load(ctx context.Context, input LoadInput) (*LoadOutput, error)

	// Save replaces the persisted card IDs for a scope
	// Returns errors.InvalidArgument for an empty scope
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)
}

// LoadInput defines the input for loading focused card IDs
type LoadInput struct {
	Scope string
}

// LoadOutput defines the output for loading focused card IDs
type LoadOutput struct {
	CardIDs []string
}

// SaveInput defines the input for saving focused card IDs
type SaveInput struct {
	Scope   string
	CardIDs []string
}

// SaveOutput defines the output for saving focused card IDs
type SaveOutput struct {
	// Saved is the number of IDs written
	Saved int
}
