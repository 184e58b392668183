// Package config loads the deck tool configuration from the environment
package config

import (
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/rpg-deck/internal/errors"
	"github.com/KirkDiggler/rpg-deck/internal/redis"
)

// Focus storage backends
const (
	StoreMemory = "memory"
	StoreRedis  = "redis"
	StoreSQLite = "sqlite"
)

// Stores lists the accepted DECK_STORE values
var Stores = []string{StoreMemory, StoreRedis, StoreSQLite}

// Config is the environment configuration. Command line flags override it.
type Config struct {
	Store      string `env:"DECK_STORE" envDefault:"sqlite"`
	SQLitePath string `env:"DECK_SQLITE_PATH" envDefault:"deck.db"`

	RedisAddr        string        `env:"DECK_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword    string        `env:"DECK_REDIS_PASSWORD"`
	RedisDB          int           `env:"DECK_REDIS_DB" envDefault:"0"`
	RedisTLS         bool          `env:"DECK_REDIS_TLS" envDefault:"false"`
	RedisDialTimeout time.Duration `env:"DECK_REDIS_DIAL_TIMEOUT" envDefault:"3s"`

	// SheetDir holds the file-backed sheets, one JSON card list per scope
	SheetDir string `env:"DECK_SHEET_DIR" envDefault:".deck"`
	Scope    string `env:"DECK_SCOPE" envDefault:"default"`

	LogLevel      slog.Level `env:"DECK_LOG_LEVEL" envDefault:"info"`
	Size          int        `env:"DECK_SIZE" envDefault:"20"`
	ModifierKey   string     `env:"DECK_MODIFIER_KEY" envDefault:"Alt"`
	ViewCacheSize int        `env:"DECK_VIEW_CACHE_SIZE" envDefault:"128"`
}

// ParseEnv loads environment variables into target
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidArgument, "parse env")
	}
	return nil
}

// Load parses and validates the configuration
func Load() (*Config, error) {
	cfg := &Config{}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

// Validate checks the values that env parsing cannot
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("Store", c.Store, Stores, vb)
	errors.ValidateRequired("Scope", c.Scope, vb)
	errors.ValidateRequired("SheetDir", c.SheetDir, vb)
	errors.ValidateMin("Size", c.Size, 1, vb)
	errors.ValidateMin("ViewCacheSize", c.ViewCacheSize, 0, vb)

	switch c.Store {
	case StoreRedis:
		errors.ValidateRequired("RedisAddr", c.RedisAddr, vb)
		errors.ValidateMin("RedisDB", c.RedisDB, 0, vb)
	case StoreSQLite:
		errors.ValidateRequired("SQLitePath", c.SQLitePath, vb)
	}

	return vb.Build()
}

// SheetsInRedis reports whether sheets are stored next to the focus state in
// Redis instead of in SheetDir
func (c *Config) SheetsInRedis() bool {
	return c.Store == StoreRedis
}

// RedisOptions returns the connection options for the redis store
func (c *Config) RedisOptions() *redis.Options {
	return &redis.Options{
		Addr:        c.RedisAddr,
		Password:    c.RedisPassword,
		DB:          c.RedisDB,
		UseTLS:      c.RedisTLS,
		DialTimeout: c.RedisDialTimeout,
	}
}
