package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-deck/internal/config"
	"github.com/KirkDiggler/rpg-deck/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func (s *ConfigTestSuite) TestLoadDefaults() {
	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Equal(config.StoreSQLite, cfg.Store)
	s.Equal("deck.db", cfg.SQLitePath)
	s.Equal(".deck", cfg.SheetDir)
	s.False(cfg.SheetsInRedis())
	s.Equal("default", cfg.Scope)
	s.Equal(slog.LevelInfo, cfg.LogLevel)
	s.Equal(20, cfg.Size)
	s.Equal("Alt", cfg.ModifierKey)
	s.Equal(128, cfg.ViewCacheSize)
}

func (s *ConfigTestSuite) TestLoadFromEnvironment() {
	s.T().Setenv("DECK_STORE", "redis")
	s.T().Setenv("DECK_REDIS_ADDR", "cache:6380")
	s.T().Setenv("DECK_SCOPE", "sheet-42")
	s.T().Setenv("DECK_LOG_LEVEL", "debug")
	s.T().Setenv("DECK_SIZE", "12")
	s.T().Setenv("DECK_MODIFIER_KEY", "Meta")
	s.T().Setenv("DECK_REDIS_DB", "2")
	s.T().Setenv("DECK_REDIS_DIAL_TIMEOUT", "500ms")

	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Equal(config.StoreRedis, cfg.Store)
	s.Equal("cache:6380", cfg.RedisAddr)
	s.True(cfg.SheetsInRedis())
	s.Equal("sheet-42", cfg.Scope)
	s.Equal(slog.LevelDebug, cfg.LogLevel)
	s.Equal(12, cfg.Size)
	s.Equal("Meta", cfg.ModifierKey)

	opts := cfg.RedisOptions()
	s.Equal("cache:6380", opts.Addr)
	s.Equal(2, opts.DB)
	s.Equal(500*time.Millisecond, opts.DialTimeout)
	s.False(opts.UseTLS)
}

func (s *ConfigTestSuite) TestLoadParseError() {
	s.T().Setenv("DECK_SIZE", "twenty")

	cfg, err := config.Load()
	s.Error(err)
	s.Nil(cfg)
	s.Contains(err.Error(), "parse env")
	s.True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestValidate() {
	testCases := []struct {
		name  string
		env   map[string]string
		field string
	}{
		{name: "unknown store", env: map[string]string{"DECK_STORE": "postgres"}, field: "Store"},
		{name: "zero size", env: map[string]string{"DECK_SIZE": "0"}, field: "Size"},
		{name: "negative cache", env: map[string]string{"DECK_VIEW_CACHE_SIZE": "-1"}, field: "ViewCacheSize"},
		{name: "blank scope", env: map[string]string{"DECK_SCOPE": "  "}, field: "Scope"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			for k, v := range tc.env {
				s.T().Setenv(k, v)
			}

			cfg, err := config.Load()
			s.Error(err)
			s.Nil(cfg)
			s.Contains(err.Error(), tc.field)
		})
	}
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
