package sheet

import (
	"context"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-deck/internal/errors"
	"github.com/KirkDiggler/rpg-deck/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-deck/internal/redis"
)

const (
	// Key pattern: sheet:{id}
	sheetKeyPrefix = "sheet:"
)

// RedisConfig contains configuration for the Redis sheet repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedis creates a Redis-backed sheet repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  c,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateSheet(input.Sheet); err != nil {
		return nil, err
	}

	stored := copySheet(input.Sheet)
	now := r.clock.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	data, err := encode(stored)
	if err != nil {
		return nil, err
	}

	created, err := r.client.SetNX(ctx, sheetKeyPrefix+stored.ID, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create sheet")
	}
	if !created {
		return nil, errors.AlreadyExistsf("sheet with ID %s already exists", stored.ID)
	}

	return &CreateOutput{Sheet: stored}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSheetIDEmpty)
	}

	result, err := r.client.Get(ctx, sheetKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.SheetNotFound(input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get sheet")
	}

	stored, err := decode([]byte(result))
	if err != nil {
		return nil, err
	}

	return &GetOutput{Sheet: stored}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateSheet(input.Sheet); err != nil {
		return nil, err
	}

	stored := copySheet(input.Sheet)
	stored.UpdatedAt = r.clock.Now()

	data, err := encode(stored)
	if err != nil {
		return nil, err
	}

	updated, err := r.client.SetXX(ctx, sheetKeyPrefix+stored.ID, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update sheet")
	}
	if !updated {
		return nil, errors.SheetNotFound(stored.ID)
	}

	return &UpdateOutput{Sheet: stored}, nil
}
