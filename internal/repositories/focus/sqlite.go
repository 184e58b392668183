package focus

import (
	"context"
	"database/sql"
	"encoding/json"
	"path/filepath"
	"strings"

	// registers the "sqlite" driver
	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/rpg-deck/internal/errors"
	"github.com/KirkDiggler/rpg-deck/internal/pkg/clock"
)

const createFocusedCardsTable = `
CREATE TABLE IF NOT EXISTS focused_cards (
	scope TEXT PRIMARY KEY,
	card_ids TEXT NOT NULL,
	updated_at INTEGER NOT NULL
);
`

// SQLiteConfig holds the configuration for the SQLite repository
type SQLiteConfig struct {
	// Path is the database file; ":memory:" is accepted for tests
	Path string

	// Clock stamps updated_at; nil uses the real clock
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *SQLiteConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Path", c.Path, vb)
	return vb.Build()
}

// SQLiteRepository implements Repository on a local SQLite file
type SQLiteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// OpenSQLite opens (creating if needed) the database at cfg.Path
func OpenSQLite(cfg *SQLiteConfig) (*SQLiteRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	dsn := cfg.Path
	if dsn != ":memory:" {
		dsn = filepath.Clean(strings.TrimSpace(dsn)) + "?_journal_mode=WAL&_busy_timeout=5000"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite db")
	}
	// a single connection keeps ":memory:" databases shared across calls
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping sqlite db")
	}
	if _, err := db.Exec(createFocusedCardsTable); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "create focused_cards table")
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &SQLiteRepository{db: db, clock: clk}, nil
}

var _ Repository = (*SQLiteRepository)(nil)

// Close closes the SQLite handle
func (r *SQLiteRepository) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}

// Load reads the ID list stored for a scope
func (r *SQLiteRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if input.Scope == "" {
		return nil, errors.InvalidArgument(errScopeEmpty)
	}

	var data string
	err := r.db.QueryRowContext(ctx,
		`SELECT card_ids FROM focused_cards WHERE scope = ?`,
		input.Scope,
	).Scan(&data)
	if err != nil {
		if err == sql.ErrNoRows {
			return &LoadOutput{CardIDs: []string{}}, nil
		}
		return nil, errors.Wrap(err, "failed to query focused cards")
	}

	var ids []string
	if err := json.Unmarshal([]byte(data), &ids); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal focused cards")
	}
	if ids == nil {
		ids = []string{}
	}

	return &LoadOutput{CardIDs: ids}, nil
}

// Save upserts the ID list for a scope
func (r *SQLiteRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Scope == "" {
		return nil, errors.InvalidArgument(errScopeEmpty)
	}

	ids := input.CardIDs
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal focused cards")
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO focused_cards (scope, card_ids, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(scope) DO UPDATE SET card_ids = excluded.card_ids, updated_at = excluded.updated_at`,
		input.Scope,
		string(data),
		r.clock.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to save focused cards")
	}

	return &SaveOutput{Saved: len(ids)}, nil
}
