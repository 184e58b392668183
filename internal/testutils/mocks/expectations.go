// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-deck/internal/repositories/focus"
	focusmock "github.com/KirkDiggler/rpg-deck/internal/repositories/focus/mock"
)

// ExpectFocusLoad expects one load for scope returning ids
func ExpectFocusLoad(ctx context.Context, repo *focusmock.MockRepository, scope string, ids ...string) *gomock.Call {
	if ids == nil {
		ids = []string{}
	}
	return repo.EXPECT().
		Load(ctx, focus.LoadInput{Scope: scope}).
		Return(&focus.LoadOutput{CardIDs: ids}, nil)
}

// ExpectFocusSave expects one save of exactly ids for scope
func ExpectFocusSave(ctx context.Context, repo *focusmock.MockRepository, scope string, ids ...string) *gomock.Call {
	if ids == nil {
		ids = []string{}
	}
	return repo.EXPECT().
		Save(ctx, focus.SaveInput{Scope: scope, CardIDs: ids}).
		Return(&focus.SaveOutput{Saved: len(ids)}, nil)
}
