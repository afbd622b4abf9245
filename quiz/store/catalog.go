package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Dzima-G/caht-bot-quiz/core/logger"
)

var (
	// ErrNoQuestions reports an empty question bank. It is distinct from
	// transport errors so callers can tell an empty catalog from an outage.
	ErrNoQuestions = errors.New("question bank is empty")
	// ErrNotFound reports a lookup of a question that does not exist.
	ErrNotFound = errors.New("question not found")
)

// Catalog provides read access to the question bank and append-only loading.
type Catalog struct {
	client *redis.Client
}

// NewCatalog wraps a Redis client with question bank operations.
func NewCatalog(client *redis.Client) *Catalog {
	return &Catalog{client: client}
}

// Load appends entries to the bank, numbering them after the current count.
// Existing questions are never overwritten. Re-running with the same input
// appends duplicates; callers must avoid double-loading. On a mid-write
// failure the already written entries remain (no rollback).
func (c *Catalog) Load(ctx context.Context, entries []Entry, prefix string) (int, error) {
	start := time.Now()

	existing, err := c.keys(ctx)
	if err != nil {
		return 0, fmt.Errorf("count existing questions: %w", err)
	}

	next := len(existing) + 1
	for i, entry := range entries {
		key := fmt.Sprintf("%s%s_%d", keyNamespace, prefix, next+i)
		if err := c.client.HSet(ctx, key, entry.fields()).Err(); err != nil {
			return i, fmt.Errorf("write question %s: %w", key, err)
		}
	}

	logger.Store.Info("questions loaded",
		slog.String("event", "store.load"),
		slog.Int("loaded", len(entries)),
		slog.Int("existing", len(existing)),
		slog.String("prefix", prefix),
		slog.Duration("duration", logger.Took(start)),
	)
	return len(entries), nil
}

// Random selects a question uniformly at random over the whole bank.
// It enumerates every key with a scanning cursor before sampling, so the
// choice is unbiased regardless of load order. Returns ErrNoQuestions for
// an empty bank. O(n) per call; fine for banks of hundreds of questions.
func (c *Catalog) Random(ctx context.Context) (Question, error) {
	keys, err := c.keys(ctx)
	if err != nil {
		return Question{}, fmt.Errorf("scan questions: %w", err)
	}
	if len(keys) == 0 {
		logger.Store.Warn("question bank is empty",
			slog.String("event", "store.random"),
		)
		return Question{}, ErrNoQuestions
	}

	return c.Get(ctx, keys[rand.IntN(len(keys))])
}

// Get returns the question stored at the given record key.
func (c *Catalog) Get(ctx context.Context, key string) (Question, error) {
	fields, err := c.client.HGetAll(ctx, key).Result()
	if err != nil {
		return Question{}, fmt.Errorf("get question %s: %w", key, err)
	}
	// HGetAll yields an empty map for a missing key.
	if len(fields) == 0 {
		return Question{}, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return questionFromFields(key, fields), nil
}

// Count reports the number of stored questions.
func (c *Catalog) Count(ctx context.Context) (int, error) {
	keys, err := c.keys(ctx)
	if err != nil {
		return 0, fmt.Errorf("scan questions: %w", err)
	}
	return len(keys), nil
}

func (c *Catalog) keys(ctx context.Context) ([]string, error) {
	var keys []string
	iter := c.client.Scan(ctx, 0, scanPattern, scanCount).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}
