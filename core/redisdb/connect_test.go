package redisdb

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requireLocalRedis skips the test when no local Redis is available.
func requireLocalRedis(t *testing.T) {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: "localhost:6379", DB: 15})
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for testing: %v", err)
	}
}

func TestConnect(t *testing.T) {
	requireLocalRedis(t)

	client, err := Connect(Config{Addr: "localhost:6379", DB: 15})
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, client.Ping(context.Background()).Err())
}

func TestConnectUnreachable(t *testing.T) {
	_, err := Connect(Config{
		Addr:        "localhost:1",
		DialTimeout: 100 * time.Millisecond,
	})
	require.Error(t, err)
}

func TestWaitForRedisReady(t *testing.T) {
	requireLocalRedis(t)

	err := WaitForRedis(Config{Addr: "localhost:6379", DB: 15}, 5*time.Second)
	assert.NoError(t, err)
}

func TestWaitForRedisTimesOut(t *testing.T) {
	cfg := Config{
		Addr:        "localhost:1",
		DialTimeout: 100 * time.Millisecond,
	}

	err := WaitForRedis(cfg, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not ready")
}
