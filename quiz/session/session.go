// Package session keeps per-user quiz state in the shared Redis store.
//
// Layout per user: "user:{id}:current_question" holds the full question
// record key, "user:{id}:stats" is a hash of counters, and
// "user:{id}:state" carries the conversational state so that multiple
// front-ends share one conversation instead of each tracking it in-process.
package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// State is the conversational state governing which actions are valid.
type State string

const (
	// AwaitingQuestionRequest means the user is ready for a new question.
	AwaitingQuestionRequest State = "awaiting_question_request"
	// AwaitingAnswer means a question has been issued and a reply is expected.
	AwaitingAnswer State = "awaiting_answer"
)

// Counter identifies one of the recognized session counters.
type Counter string

const (
	CounterQuestionsAsked Counter = "questions_asked"
	CounterCorrectAnswers Counter = "correct_answers"
	CounterGiveUp         Counter = "give_up"
)

// Stats is the fixed-shape statistics record. Counters never written
// read as zero; default filling happens at the read boundary.
type Stats struct {
	QuestionsAsked int64
	CorrectAnswers int64
	GiveUp         int64
}

// ErrUnknownCounter rejects increments of unrecognized counter names.
var ErrUnknownCounter = errors.New("unknown stats counter")

// Sessions provides access to per-user quiz session state.
type Sessions struct {
	client *redis.Client
}

// NewSessions wraps a Redis client with session state operations.
func NewSessions(client *redis.Client) *Sessions {
	return &Sessions{client: client}
}

func currentQuestionKey(userID string) string { return "user:" + userID + ":current_question" }
func statsKey(userID string) string           { return "user:" + userID + ":stats" }
func stateKey(userID string) string           { return "user:" + userID + ":state" }

// CurrentQuestion returns the stored question pointer, or empty when none
// is set. It is a pure read and never allocates a new question.
func (s *Sessions) CurrentQuestion(ctx context.Context, userID string) (string, error) {
	key, err := s.client.Get(ctx, currentQuestionKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get current question for %s: %w", userID, err)
	}
	return key, nil
}

// SetCurrentQuestion overwrites the pointer unconditionally, last write wins.
func (s *Sessions) SetCurrentQuestion(ctx context.Context, userID, questionKey string) error {
	if err := s.client.Set(ctx, currentQuestionKey(userID), questionKey, 0).Err(); err != nil {
		return fmt.Errorf("set current question for %s: %w", userID, err)
	}
	return nil
}

// IncrementStat atomically increments one recognized counter by 1.
// The counter implicitly initializes to 0 on first increment.
func (s *Sessions) IncrementStat(ctx context.Context, userID string, counter Counter) error {
	switch counter {
	case CounterQuestionsAsked, CounterCorrectAnswers, CounterGiveUp:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCounter, counter)
	}
	if err := s.client.HIncrBy(ctx, statsKey(userID), string(counter), 1).Err(); err != nil {
		return fmt.Errorf("increment %s for %s: %w", counter, userID, err)
	}
	return nil
}

// Stats reads the statistics record; absent counters read as zero.
func (s *Sessions) Stats(ctx context.Context, userID string) (Stats, error) {
	fields, err := s.client.HGetAll(ctx, statsKey(userID)).Result()
	if err != nil {
		return Stats{}, fmt.Errorf("get stats for %s: %w", userID, err)
	}
	return Stats{
		QuestionsAsked: parseCounter(fields, CounterQuestionsAsked),
		CorrectAnswers: parseCounter(fields, CounterCorrectAnswers),
		GiveUp:         parseCounter(fields, CounterGiveUp),
	}, nil
}

// State returns the user's conversational state. A user who has never
// interacted (or whose state record is unreadable garbage) starts at
// AwaitingQuestionRequest.
func (s *Sessions) State(ctx context.Context, userID string) (State, error) {
	raw, err := s.client.Get(ctx, stateKey(userID)).Result()
	if errors.Is(err, redis.Nil) {
		return AwaitingQuestionRequest, nil
	}
	if err != nil {
		return AwaitingQuestionRequest, fmt.Errorf("get state for %s: %w", userID, err)
	}
	switch State(raw) {
	case AwaitingAnswer:
		return AwaitingAnswer, nil
	default:
		return AwaitingQuestionRequest, nil
	}
}

// SetState persists the conversational state.
func (s *Sessions) SetState(ctx context.Context, userID string, st State) error {
	if err := s.client.Set(ctx, stateKey(userID), string(st), 0).Err(); err != nil {
		return fmt.Errorf("set state for %s: %w", userID, err)
	}
	return nil
}

func parseCounter(fields map[string]string, counter Counter) int64 {
	raw, ok := fields[string(counter)]
	if !ok {
		return 0
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0
	}
	return n
}
