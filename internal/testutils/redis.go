// Package testutils holds fixtures and helpers shared by package tests
package testutils

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-deck/internal/redis"
)

// CreateTestRedisClient connects to a fresh miniredis server. Server and
// client are closed when the test ends.
func CreateTestRedisClient(t *testing.T) (redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	client, err := redis.Connect(context.Background(), &redis.Options{Addr: mr.Addr()})
	require.NoError(t, err, "failed to connect to miniredis")
	t.Cleanup(func() { _ = client.Close() })

	return client, mr
}
