// Package telegram adapts Telegram updates to quiz engine actions.
//
// The adapter is deliberately thin: it classifies inbound text, hands a
// single Action to the engine, and renders the returned messages with the
// quiz reply keyboard. Any other front-end can follow the same contract.
package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	tele "gopkg.in/telebot.v4"

	"github.com/Dzima-G/caht-bot-quiz/core/logger"
	coretelegram "github.com/Dzima-G/caht-bot-quiz/core/telegram"
	"github.com/Dzima-G/caht-bot-quiz/core/telegram/keyboard"
	"github.com/Dzima-G/caht-bot-quiz/quiz/engine"
)

const (
	btnNewQuestion = "New question"
	btnGiveUp      = "Give up"
	btnHint        = "Hint"
	btnMyScore     = "My score"
)

// Adapter renders quiz engine results as Telegram messages.
type Adapter struct {
	engine *engine.Engine
	markup *tele.ReplyMarkup
}

// New builds the Telegram front-end for the given engine.
func New(eng *engine.Engine) *Adapter {
	return &Adapter{
		engine: eng,
		markup: keyboard.ReplyButtons(
			[]string{btnNewQuestion, btnGiveUp},
			[]string{btnHint, btnMyScore},
		),
	}
}

// Routes declares the handlers this adapter registers on the bot.
func (a *Adapter) Routes() []coretelegram.Route {
	return []coretelegram.Route{
		{Endpoint: "/start", Handler: a.handleStart},
		{Endpoint: "/hint", Handler: a.handleAction(engine.Action{Kind: engine.ActionHint})},
		{Endpoint: "/stats", Handler: a.handleAction(engine.Action{Kind: engine.ActionStats})},
		{Endpoint: tele.OnText, Handler: a.handleText},
	}
}

func (a *Adapter) handleStart(c tele.Context) error {
	user := c.Sender()
	greeting := "Hi! I am a quiz bot!\nPress «New question» to start the quiz."
	if user != nil && user.FirstName != "" {
		greeting = fmt.Sprintf("Hi %s! I am a quiz bot!\nPress «New question» to start the quiz.", user.FirstName)
	}
	return c.Send(greeting, a.markup)
}

func (a *Adapter) handleText(c tele.Context) error {
	return a.dispatch(c, classify(c.Text()))
}

func (a *Adapter) handleAction(action engine.Action) tele.HandlerFunc {
	return func(c tele.Context) error {
		return a.dispatch(c, action)
	}
}

func (a *Adapter) dispatch(c tele.Context, action engine.Action) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}
	userID := strconv.FormatInt(sender.ID, 10)
	ctx := logger.WithUserID(context.Background(), userID)

	result, err := a.engine.Handle(ctx, userID, action)
	if err != nil {
		logger.TG.Error("quiz action failed",
			slog.String("event", "tg.action"),
			slog.String("user_id", userID),
			slog.String("action", string(action.Kind)),
			slog.String("payload", logger.SanitizeLimit(action.Text, 128)),
			slog.String("err", err.Error()),
		)
	}

	for _, reply := range result.Replies {
		if sendErr := c.Send(reply, a.markup); sendErr != nil {
			return sendErr
		}
	}
	return nil
}

// classify maps keyboard buttons to quiz actions; everything else is
// treated as an answer submission and judged by the engine's state.
func classify(text string) engine.Action {
	switch text {
	case btnNewQuestion:
		return engine.Action{Kind: engine.ActionNewQuestion}
	case btnGiveUp:
		return engine.Action{Kind: engine.ActionGiveUp}
	case btnHint:
		return engine.Action{Kind: engine.ActionHint}
	case btnMyScore:
		return engine.Action{Kind: engine.ActionStats}
	default:
		return engine.Action{Kind: engine.ActionAnswer, Text: text}
	}
}
