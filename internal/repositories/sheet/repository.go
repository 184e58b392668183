// Package sheet provides the interface for character sheet deck persistence
package sheet

//go:generate mockgen -destination=mock/mock_repository.go -package=sheetmock github.com/KirkDiggler/rpg-deck/internal/repositories/sheet Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-deck/internal/entities"
	"github.com/KirkDiggler/rpg-deck/internal/errors"
)

// Repository defines the interface for sheet persistence
type Repository interface {
	// Create stores a new sheet
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a sheet with the same ID exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a sheet by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the sheet doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing sheet
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the sheet doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)
}

// CreateInput defines the input for creating a sheet
type CreateInput struct {
	Sheet *entities.Sheet
}

// CreateOutput defines the output for creating a sheet
type CreateOutput struct {
	Sheet *entities.Sheet
}

// GetInput defines the input for getting a sheet
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a sheet
type GetOutput struct {
	Sheet *entities.Sheet
}

// UpdateInput defines the input for updating a sheet
type UpdateInput struct {
	Sheet *entities.Sheet
}

// UpdateOutput defines the output for updating a sheet
type UpdateOutput struct {
	Sheet *entities.Sheet
}

const (
	errSheetNil     = "sheet cannot be nil"
	errSheetIDEmpty = "sheet ID cannot be empty"
)

func validateSheet(s *entities.Sheet) error {
	if s == nil {
		return errors.InvalidArgument(errSheetNil)
	}
	if s.ID == "" {
		return errors.InvalidArgument(errSheetIDEmpty)
	}
	return nil
}
