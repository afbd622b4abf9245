// Package engine implements the conversational state machine of the quiz.
//
// The engine is front-end agnostic: adapters translate platform updates
// into Actions and render the returned Result. All state lives in the
// shared store, so any number of front-ends can serve the same user.
package engine

import (
	"context"
	"errors"
	"log/slog"

	"github.com/Dzima-G/caht-bot-quiz/core/logger"
	"github.com/Dzima-G/caht-bot-quiz/quiz/session"
	"github.com/Dzima-G/caht-bot-quiz/quiz/store"
)

// Kind enumerates the quiz actions a front-end can submit.
type Kind string

const (
	ActionNewQuestion Kind = "new_question"
	ActionAnswer      Kind = "answer"
	ActionGiveUp      Kind = "give_up"
	ActionHint        Kind = "hint"
	ActionStats       Kind = "stats"
)

// Action is one inbound user action. Text carries the raw submission for
// ActionAnswer and is ignored otherwise.
type Action struct {
	Kind Kind
	Text string
}

// Result is what a front-end renders: one or more messages in order, plus
// the conversational state after the action.
type Result struct {
	Replies []string
	State   session.State
}

// Catalog is the read side of the question bank required by the engine.
type Catalog interface {
	Random(ctx context.Context) (store.Question, error)
	Get(ctx context.Context, key string) (store.Question, error)
}

// Sessions is the per-user state access required by the engine.
type Sessions interface {
	CurrentQuestion(ctx context.Context, userID string) (string, error)
	SetCurrentQuestion(ctx context.Context, userID, questionKey string) error
	IncrementStat(ctx context.Context, userID string, counter session.Counter) error
	Stats(ctx context.Context, userID string) (session.Stats, error)
	State(ctx context.Context, userID string) (session.State, error)
	SetState(ctx context.Context, userID string, st session.State) error
}

// Engine drives quiz conversations against the shared store.
type Engine struct {
	catalog  Catalog
	sessions Sessions
}

// New builds an Engine on top of the given catalog and session storage.
func New(catalog Catalog, sessions Sessions) *Engine {
	return &Engine{catalog: catalog, sessions: sessions}
}

// Handle applies one user action and returns the messages to render.
//
// Handle never fails the interaction outright: the Result is always
// renderable. A non-nil error accompanies it when a store operation
// failed and is meant for boundary logging, not for the user.
// Multi-key updates are best effort, not transactional: a crash between
// the pointer write and a counter increment leaves them out of step.
func (e *Engine) Handle(ctx context.Context, userID string, action Action) (Result, error) {
	st, err := e.sessions.State(ctx, userID)
	if err != nil {
		return Result{Replies: []string{msgUnavailable}, State: st}, err
	}

	var res Result
	switch st {
	case session.AwaitingAnswer:
		res, err = e.handleAwaitingAnswer(ctx, userID, action)
	default:
		res, err = e.handleAwaitingRequest(ctx, userID, action)
	}

	if res.State != st {
		if stateErr := e.sessions.SetState(ctx, userID, res.State); stateErr != nil {
			err = errors.Join(err, stateErr)
		}
	}

	logger.Engine.Debug("action handled",
		slog.String("event", "engine.handle"),
		slog.String("user_id", userID),
		slog.String("action", string(action.Kind)),
		slog.String("from", string(st)),
		slog.String("to", string(res.State)),
		slog.String("status", logger.Status(err)),
	)
	return res, err
}

func (e *Engine) handleAwaitingRequest(ctx context.Context, userID string, action Action) (Result, error) {
	switch action.Kind {
	case ActionNewQuestion:
		return e.issueNewQuestion(ctx, userID)
	case ActionStats:
		return e.reportStats(ctx, userID, session.AwaitingQuestionRequest)
	case ActionGiveUp:
		return Result{Replies: []string{msgNoQuestionYet}, State: session.AwaitingQuestionRequest}, nil
	default:
		// Answers, hints and anything else are premature here.
		return Result{Replies: []string{msgGreeting}, State: session.AwaitingQuestionRequest}, nil
	}
}

func (e *Engine) handleAwaitingAnswer(ctx context.Context, userID string, action Action) (Result, error) {
	switch action.Kind {
	case ActionNewQuestion:
		return Result{Replies: []string{msgNotTimeForNewQuestion}, State: session.AwaitingAnswer}, nil
	case ActionGiveUp:
		return e.giveUp(ctx, userID)
	case ActionHint:
		return e.hint(ctx, userID)
	case ActionStats:
		return e.reportStats(ctx, userID, session.AwaitingAnswer)
	default:
		return e.checkAnswer(ctx, userID, action.Text)
	}
}

// issueNewQuestion selects, assigns and counts a fresh question.
func (e *Engine) issueNewQuestion(ctx context.Context, userID string) (Result, error) {
	question, err := e.catalog.Random(ctx)
	if errors.Is(err, store.ErrNoQuestions) {
		// Source parity: the conversation still advances to awaiting-answer
		// even though no question was issued. The transparent re-acquire in
		// answer-dependent actions keeps the session from getting stuck.
		return Result{Replies: []string{msgNoQuestions}, State: session.AwaitingAnswer}, nil
	}
	if err != nil {
		return Result{Replies: []string{msgUnavailable}, State: session.AwaitingQuestionRequest}, err
	}

	if err := e.sessions.SetCurrentQuestion(ctx, userID, question.Key); err != nil {
		return Result{Replies: []string{msgUnavailable}, State: session.AwaitingQuestionRequest}, err
	}
	err = e.sessions.IncrementStat(ctx, userID, session.CounterQuestionsAsked)

	return Result{Replies: []string{question.Question}, State: session.AwaitingAnswer}, err
}

func (e *Engine) giveUp(ctx context.Context, userID string) (Result, error) {
	question, err := e.currentQuestion(ctx, userID)
	if errors.Is(err, store.ErrNoQuestions) {
		return Result{Replies: []string{msgNoQuestions}, State: session.AwaitingAnswer}, nil
	}
	if err != nil {
		return Result{Replies: []string{msgUnavailable}, State: session.AwaitingAnswer}, err
	}

	err = e.sessions.IncrementStat(ctx, userID, session.CounterGiveUp)

	replies := []string{formatGiveUp(question.Answer)}

	// The replacement question is assigned implicitly and does not count
	// toward questions_asked; only explicit requests do.
	next, nextErr := e.catalog.Random(ctx)
	switch {
	case errors.Is(nextErr, store.ErrNoQuestions):
		replies = append(replies, msgNoQuestions)
	case nextErr != nil:
		err = errors.Join(err, nextErr)
		replies = append(replies, msgUnavailable)
	default:
		if setErr := e.sessions.SetCurrentQuestion(ctx, userID, next.Key); setErr != nil {
			err = errors.Join(err, setErr)
			replies = append(replies, msgUnavailable)
		} else {
			replies = append(replies, formatNewQuestion(next.Question))
		}
	}

	return Result{Replies: replies, State: session.AwaitingAnswer}, err
}

func (e *Engine) hint(ctx context.Context, userID string) (Result, error) {
	question, err := e.currentQuestion(ctx, userID)
	if errors.Is(err, store.ErrNoQuestions) {
		return Result{Replies: []string{msgNoQuestions}, State: session.AwaitingAnswer}, nil
	}
	if err != nil {
		return Result{Replies: []string{msgUnavailable}, State: session.AwaitingAnswer}, err
	}

	if question.Comment == "" {
		return Result{Replies: []string{msgNoHint}, State: session.AwaitingAnswer}, nil
	}
	return Result{Replies: []string{question.Comment}, State: session.AwaitingAnswer}, nil
}

func (e *Engine) checkAnswer(ctx context.Context, userID, text string) (Result, error) {
	question, err := e.currentQuestion(ctx, userID)
	if errors.Is(err, store.ErrNoQuestions) {
		return Result{Replies: []string{msgNoQuestions}, State: session.AwaitingAnswer}, nil
	}
	if err != nil {
		return Result{Replies: []string{msgUnavailable}, State: session.AwaitingAnswer}, err
	}

	if !AnswerMatches(question.Answer, text) {
		return Result{Replies: []string{msgWrong}, State: session.AwaitingAnswer}, nil
	}

	err = e.sessions.IncrementStat(ctx, userID, session.CounterCorrectAnswers)
	return Result{Replies: []string{msgCorrect}, State: session.AwaitingQuestionRequest}, err
}

func (e *Engine) reportStats(ctx context.Context, userID string, st session.State) (Result, error) {
	stats, err := e.sessions.Stats(ctx, userID)
	if err != nil {
		return Result{Replies: []string{msgUnavailable}, State: st}, err
	}
	return Result{Replies: []string{formatStats(stats)}, State: st}, nil
}

// currentQuestion resolves the user's current question. An absent pointer
// or a pointer to a deleted record is not an error: a fresh question is
// selected and assigned transparently so the session is never stuck while
// the bank is non-empty. The implicit assignment does not bump
// questions_asked.
func (e *Engine) currentQuestion(ctx context.Context, userID string) (store.Question, error) {
	key, err := e.sessions.CurrentQuestion(ctx, userID)
	if err != nil {
		return store.Question{}, err
	}

	if key != "" {
		question, err := e.catalog.Get(ctx, key)
		if err == nil {
			return question, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return store.Question{}, err
		}
		logger.Engine.Warn("stale question pointer",
			slog.String("event", "engine.stale_pointer"),
			slog.String("user_id", userID),
			slog.String("question_key", key),
		)
	}

	question, err := e.catalog.Random(ctx)
	if err != nil {
		return store.Question{}, err
	}
	if err := e.sessions.SetCurrentQuestion(ctx, userID, question.Key); err != nil {
		return store.Question{}, err
	}
	return question, nil
}
