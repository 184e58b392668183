package focus

import (
	"context"
	"encoding/json"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-deck/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-deck/internal/redis"
)

const (
	// Key pattern: focused_cards:{scope}
	focusKeyPrefix = "focused_cards:"
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedis creates a Redis backed repository. Keys carry no TTL so focus
// state survives restarts.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Load reads the JSON encoded ID list for a scope
func (r *redisRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if input.Scope == "" {
		return nil, errors.InvalidArgument(errScopeEmpty)
	}

	data, err := r.client.Get(ctx, r.buildKey(input.Scope)).Result()
	if err != nil {
		if err == redis.Nil {
			return &LoadOutput{CardIDs: []string{}}, nil
		}
		return nil, errors.Wrapf(err, "failed to get focused cards from Redis")
	}

	var ids []string
	if err := json.Unmarshal([]byte(data), &ids); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal focused cards")
	}
	if ids == nil {
		ids = []string{}
	}

	return &LoadOutput{CardIDs: ids}, nil
}

// Save overwrites the ID list for a scope
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Scope == "" {
		return nil, errors.InvalidArgument(errScopeEmpty)
	}

	ids := input.CardIDs
	if ids == nil {
		ids = []string{}
	}

	data, err := json.Marshal(ids)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal focused cards")
	}

	if err := r.client.Set(ctx, r.buildKey(input.Scope), data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store focused cards in Redis")
	}

	return &SaveOutput{Saved: len(ids)}, nil
}

// buildKey creates the Redis key for a scope
func (r *redisRepository) buildKey(scope string) string {
	return fmt.Sprintf("%s%s", focusKeyPrefix, scope)
}
