package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is what the focus and sheet repositories need from Redis. It is the
// universal client so a cluster address works as well as a single node.
type Client interface {
	redis.UniversalClient
}
