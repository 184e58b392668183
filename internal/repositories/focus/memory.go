package focus

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-deck/internal/errors"
)

const errScopeEmpty = "scope cannot be empty"

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string][]string
}

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		store: make(map[string][]string),
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Load returns a copy of the stored IDs
func (r *InMemoryRepository) Load(_ context.Context, input LoadInput) (*LoadOutput, error) {
	if input.Scope == "" {
		return nil, errors.InvalidArgument(errScopeEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return &LoadOutput{CardIDs: cloneIDs(r.store[input.Scope])}, nil
}

// Save replaces the stored IDs with a copy of input.CardIDs
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Scope == "" {
		return nil, errors.InvalidArgument(errScopeEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[input.Scope] = cloneIDs(input.CardIDs)

	return &SaveOutput{Saved: len(input.CardIDs)}, nil
}

func cloneIDs(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}
