package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-deck/internal/clients/catalog"
	"github.com/KirkDiggler/rpg-deck/internal/config"
	"github.com/KirkDiggler/rpg-deck/internal/errors"
	"github.com/KirkDiggler/rpg-deck/internal/handlers/sheet"
	"github.com/KirkDiggler/rpg-deck/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-deck/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-deck/internal/redis"
	focusrepo "github.com/KirkDiggler/rpg-deck/internal/repositories/focus"
	sheetrepo "github.com/KirkDiggler/rpg-deck/internal/repositories/sheet"
	"github.com/KirkDiggler/rpg-deck/internal/services/slotpolicy"
	"github.com/KirkDiggler/rpg-deck/internal/services/slotview"
)

var (
	cfg      *config.Config
	handler  *sheet.Handler
	closers  []func() error
	jsonOut  bool
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "deck",
	Short: "Character sheet card deck",
	Long: `deck manages the card deck of a character sheet: role-locked special slots,
focused cards persisted by card ID, the replace-card dialog and hover previews.

Configuration comes from DECK_* environment variables; flags override them.`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.String("store", "", "focus storage: memory, redis or sqlite (env DECK_STORE)")
	flags.String("redis-addr", "", "redis address (env DECK_REDIS_ADDR)")
	flags.String("sqlite-path", "", "sqlite database file (env DECK_SQLITE_PATH)")
	flags.String("sheet-dir", "", "directory of sheet files (env DECK_SHEET_DIR)")
	flags.String("scope", "", "sheet ID the command works on (env DECK_SCOPE)")
	flags.Int("size", 0, "number of deck slots (env DECK_SIZE)")
	flags.String("modifier-key", "", "modifier key tracked for previews (env DECK_MODIFIER_KEY)")
	flags.StringVar(&logLevel, "log-level", "", "debug, info, warn or error (env DECK_LOG_LEVEL)")
	flags.BoolVar(&jsonOut, "json", false, "print JSON instead of text")

	rootCmd.AddCommand(initCmd, slotsCmd, focusCmd, replaceCmd, previewCmd, catalogCmd)
}

func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load()
	if err != nil {
		return err
	}
	if err := applyFlags(cmd, loaded); err != nil {
		return err
	}
	if err := loaded.Validate(); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	cfg = loaded

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	})))

	h, err := buildHandler(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	handler = h

	return nil
}

func teardown(_ *cobra.Command, _ []string) error {
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i](); err != nil {
			slog.Warn("Failed to close resource", "error", err)
		}
	}
	closers = nil
	return nil
}

// applyFlags copies the flags the user set over the environment config
func applyFlags(cmd *cobra.Command, c *config.Config) error {
	flags := cmd.Flags()

	stringFlags := map[string]*string{
		"store":        &c.Store,
		"redis-addr":   &c.RedisAddr,
		"sqlite-path":  &c.SQLitePath,
		"sheet-dir":    &c.SheetDir,
		"scope":        &c.Scope,
		"modifier-key": &c.ModifierKey,
	}
	for name, target := range stringFlags {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetString(name)
		if err != nil {
			return errors.Wrapf(err, "failed to read --%s", name)
		}
		*target = v
	}

	if flags.Changed("size") {
		size, err := flags.GetInt("size")
		if err != nil {
			return errors.Wrap(err, "failed to read --size")
		}
		c.Size = size
	}

	if flags.Changed("log-level") {
		if err := c.LogLevel.UnmarshalText([]byte(logLevel)); err != nil {
			return errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid --log-level")
		}
	}

	return nil
}

func buildHandler(ctx context.Context, c *config.Config) (*sheet.Handler, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	focusRepo, sheetRepo, err := buildStores(ctx, c)
	if err != nil {
		return nil, err
	}

	policy := slotpolicy.WithSize(c.Size)
	views, err := slotview.NewRenderer(&slotview.Config{
		Policy:    policy,
		CacheSize: c.ViewCacheSize,
	})
	if err != nil {
		return nil, err
	}

	return sheet.NewHandler(&sheet.HandlerConfig{
		Sheets:      sheetRepo,
		Focus:       focusRepo,
		Catalog:     catalog.NewEmbedded(),
		Policy:      policy,
		IDGen:       idgen.NewUUID(idgen.PrefixSheet),
		Views:       views,
		Bus:         events.NewBus(),
		ModifierKey: c.ModifierKey,
	})
}

func buildStores(ctx context.Context, c *config.Config) (focusrepo.Repository, sheetrepo.Repository, error) {
	switch c.Store {
	case config.StoreRedis:
		client, err := redisclient.Connect(ctx, c.RedisOptions())
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, client.Close)

		focusRepo, err := focusrepo.NewRedis(&focusrepo.RedisConfig{Client: client})
		if err != nil {
			return nil, nil, err
		}
		sheetRepo, err := sheetrepo.NewRedis(&sheetrepo.RedisConfig{Client: client})
		if err != nil {
			return nil, nil, err
		}
		return focusRepo, sheetRepo, nil

	case config.StoreSQLite:
		focusRepo, err := focusrepo.OpenSQLite(&focusrepo.SQLiteConfig{
			Path:  c.SQLitePath,
			Clock: clock.New(),
		})
		if err != nil {
			return nil, nil, err
		}
		closers = append(closers, focusRepo.Close)

		sheetRepo, err := sheetrepo.NewFile(&sheetrepo.FileConfig{Dir: c.SheetDir})
		if err != nil {
			return nil, nil, err
		}
		return focusRepo, sheetRepo, nil

	default:
		slog.Warn("Focus state kept in memory is lost when the command exits")

		sheetRepo, err := sheetrepo.NewFile(&sheetrepo.FileConfig{Dir: c.SheetDir})
		if err != nil {
			return nil, nil, err
		}
		return focusrepo.NewInMemory(), sheetRepo, nil
	}
}
