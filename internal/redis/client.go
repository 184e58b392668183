// Package redis wraps the go-redis client so repositories depend on a small
// interface that tests can back with miniredis.
package redis

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-deck/internal/errors"
)

// DefaultDialTimeout bounds the reachability check in Connect
const DefaultDialTimeout = 3 * time.Second

// Options configures the connection to the focus and sheet store
type Options struct {
	Addr     string
	Password string
	DB       int
	UseTLS   bool

	// DialTimeout bounds dialing and the Ping in Connect
	DialTimeout time.Duration
}

// Validate ensures the options name a server
func (o *Options) Validate() error {
	if o == nil {
		return errors.InvalidArgument("options are required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Addr", o.Addr, vb)
	errors.ValidateMin("DB", o.DB, 0, vb)
	return vb.Build()
}

// NewClient creates a client without touching the network. Redis connects
// lazily.
func NewClient(opts *Options) (Client, error) {
	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid redis options")
	}

	redisOpts := &redis.Options{
		Addr:        opts.Addr,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: opts.timeout(),
	}
	if opts.UseTLS {
		redisOpts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	return redis.NewClient(redisOpts), nil
}

// Connect creates a client and pings it. An unreachable server is reported
// as Unavailable and the client is closed.
func Connect(ctx context.Context, opts *Options) (Client, error) {
	client, err := NewClient(opts)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, opts.timeout())
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "redis unreachable").
			WithMeta("addr", opts.Addr)
	}

	return client, nil
}

func (o *Options) timeout() time.Duration {
	if o.DialTimeout > 0 {
		return o.DialTimeout
	}
	return DefaultDialTimeout
}
