package session

import (
	"context"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestRedis creates a test Redis client on DB 15 and wipes it.
// Tests are skipped when no local Redis is available.
func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	client := redis.NewClient(&redis.Options{
		Addr: "localhost:6379",
		DB:   15,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		t.Skipf("Redis not available for testing: %v", err)
	}
	client.FlushDB(ctx)

	t.Cleanup(func() { _ = client.Close() })
	return client
}

func TestCurrentQuestionRoundTrip(t *testing.T) {
	sessions := NewSessions(setupTestRedis(t))
	ctx := context.Background()

	key, err := sessions.CurrentQuestion(ctx, "42")
	require.NoError(t, err)
	assert.Empty(t, key, "fresh user has no current question")

	require.NoError(t, sessions.SetCurrentQuestion(ctx, "42", "question:id_7"))

	// Reads without an intervening write must return the same reference.
	for i := 0; i < 2; i++ {
		key, err = sessions.CurrentQuestion(ctx, "42")
		require.NoError(t, err)
		assert.Equal(t, "question:id_7", key)
	}

	require.NoError(t, sessions.SetCurrentQuestion(ctx, "42", "question:id_9"))
	key, err = sessions.CurrentQuestion(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, "question:id_9", key, "pointer overwrite is unconditional")
}

func TestIncrementStat(t *testing.T) {
	sessions := NewSessions(setupTestRedis(t))
	ctx := context.Background()

	const n = 7
	for i := 0; i < n; i++ {
		require.NoError(t, sessions.IncrementStat(ctx, "42", CounterQuestionsAsked))
	}

	stats, err := sessions.Stats(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, int64(n), stats.QuestionsAsked)
	assert.Zero(t, stats.CorrectAnswers, "unaffected counters remain unchanged")
	assert.Zero(t, stats.GiveUp)
}

func TestIncrementStatUnknownCounter(t *testing.T) {
	sessions := NewSessions(setupTestRedis(t))

	err := sessions.IncrementStat(context.Background(), "42", Counter("high_scores"))
	require.ErrorIs(t, err, ErrUnknownCounter)
}

func TestStatsDefaultsForNewUser(t *testing.T) {
	sessions := NewSessions(setupTestRedis(t))

	stats, err := sessions.Stats(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, Stats{}, stats, "all counters default to zero")
}

func TestStateDefaultsAndRoundTrip(t *testing.T) {
	sessions := NewSessions(setupTestRedis(t))
	ctx := context.Background()

	st, err := sessions.State(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, AwaitingQuestionRequest, st)

	require.NoError(t, sessions.SetState(ctx, "42", AwaitingAnswer))
	st, err = sessions.State(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, AwaitingAnswer, st)
}

func TestPerUserIsolation(t *testing.T) {
	sessions := NewSessions(setupTestRedis(t))
	ctx := context.Background()

	require.NoError(t, sessions.SetCurrentQuestion(ctx, "alice", "question:id_1"))
	require.NoError(t, sessions.SetCurrentQuestion(ctx, "bob", "question:id_2"))
	require.NoError(t, sessions.IncrementStat(ctx, "alice", CounterCorrectAnswers))

	aliceKey, err := sessions.CurrentQuestion(ctx, "alice")
	require.NoError(t, err)
	bobKey, err := sessions.CurrentQuestion(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "question:id_1", aliceKey)
	assert.Equal(t, "question:id_2", bobKey)

	bobStats, err := sessions.Stats(ctx, "bob")
	require.NoError(t, err)
	assert.Zero(t, bobStats.CorrectAnswers, "users never observe each other's counters")
}
