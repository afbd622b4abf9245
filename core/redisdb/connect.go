// Package redisdb opens and verifies the shared Redis connection.
package redisdb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Dzima-G/caht-bot-quiz/core/logger"
)

const defaultDialTimeout = 5 * time.Second

// Connect opens the Redis connection and verifies connectivity with a ping.
func Connect(cfg Config) (*redis.Client, error) {
	dialTimeout := cfg.DialTimeout
	if dialTimeout <= 0 {
		dialTimeout = defaultDialTimeout
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: dialTimeout,
	})

	ctx, cancel := context.WithTimeout(context.Background(), dialTimeout)
	defer cancel()

	start := time.Now()
	err := client.Ping(ctx).Err()
	took := time.Since(start)
	if err != nil {
		logger.Store.Error("redis connect failed",
			slog.String("event", "redis.connect"),
			slog.String("addr", cfg.Addr),
			slog.Int("db", cfg.DB),
			slog.Duration("duration", logger.RoundMS(took)),
			slog.String("err", err.Error()),
		)
		_ = client.Close()
		return nil, fmt.Errorf("redis connect: %w", err)
	}

	logger.Store.Info("redis connected",
		slog.String("event", "redis.connect"),
		slog.String("addr", cfg.Addr),
		slog.Int("db", cfg.DB),
		slog.Duration("duration", logger.RoundMS(took)),
	)
	return client, nil
}

// WaitForRedis pings the store until it is ready or the timeout is reached.
// Useful when the bot starts alongside Redis under an orchestrator.
func WaitForRedis(cfg Config, timeout time.Duration) error {
	deadline := time.Now().Add(timeout)
	var lastErr error
	for {
		client, err := Connect(cfg)
		if err == nil {
			return client.Close()
		}
		lastErr = err
		if time.Now().After(deadline) {
			return fmt.Errorf("redis not ready after %s: %w", timeout, lastErr)
		}
		time.Sleep(time.Second)
	}
}
