package sheet

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/KirkDiggler/rpg-deck/internal/entities"
	"github.com/KirkDiggler/rpg-deck/internal/errors"
	"github.com/KirkDiggler/rpg-deck/internal/pkg/clock"
)

// FileConfig configures the file-backed sheet repository
type FileConfig struct {
	// Dir holds one {id}.json file per sheet. It is created on first write.
	Dir   string
	Clock clock.Clock
}

// Validate validates the FileConfig
func (cfg *FileConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Dir", cfg.Dir, vb)
	return vb.Build()
}

type fileRepository struct {
	dir   string
	clock clock.Clock
	mu    sync.Mutex
}

// NewFile creates a sheet repository storing JSON files under a directory
func NewFile(cfg *FileConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &fileRepository{
		dir:   cfg.Dir,
		clock: c,
	}, nil
}

var _ Repository = (*fileRepository)(nil)

func (r *fileRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateSheet(input.Sheet); err != nil {
		return nil, err
	}
	path, err := r.path(input.Sheet.ID)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := os.Stat(path); err == nil {
		return nil, errors.AlreadyExistsf("sheet with ID %s already exists", input.Sheet.ID)
	}

	stored := copySheet(input.Sheet)
	now := r.clock.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	if err := r.write(path, stored); err != nil {
		return nil, err
	}

	return &CreateOutput{Sheet: stored}, nil
}

func (r *fileRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSheetIDEmpty)
	}
	path, err := r.path(input.ID)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.SheetNotFound(input.ID)
		}
		return nil, errors.Wrapf(err, "failed to read sheet")
	}

	stored, err := decode(data)
	if err != nil {
		return nil, err
	}

	return &GetOutput{Sheet: stored}, nil
}

func (r *fileRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateSheet(input.Sheet); err != nil {
		return nil, err
	}
	path, err := r.path(input.Sheet.ID)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.SheetNotFound(input.Sheet.ID)
	}

	stored := copySheet(input.Sheet)
	stored.UpdatedAt = r.clock.Now()

	if err := r.write(path, stored); err != nil {
		return nil, err
	}

	return &UpdateOutput{Sheet: stored}, nil
}

// path maps an ID to its file. IDs are single path elements.
func (r *fileRepository) path(id string) (string, error) {
	if id == "." || id == ".." || strings.ContainsAny(id, `/\`) {
		return "", errors.InvalidArgumentf("invalid sheet ID %q", id)
	}
	return filepath.Join(r.dir, id+".json"), nil
}

// write replaces the file through a rename so readers never see a partial
// sheet
func (r *fileRepository) write(path string, s *entities.Sheet) error {
	data, err := encode(s)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(r.dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create sheet directory")
	}

	tmp, err := os.CreateTemp(r.dir, "."+s.ID+"-*.tmp")
	if err != nil {
		return errors.Wrapf(err, "failed to create temp sheet file")
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return errors.Wrapf(err, "failed to write sheet")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "failed to close sheet file")
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "failed to replace sheet file")
	}
	return nil
}
