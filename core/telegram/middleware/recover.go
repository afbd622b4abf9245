package middleware

import (
	"log/slog"
	"runtime/debug"
	"strconv"

	tele "gopkg.in/telebot.v4"

	"github.com/Dzima-G/caht-bot-quiz/core/logger"
)

// RecoverMiddleware keeps a panicking handler from taking the bot down.
// The log line carries the acting user and their sanitized input so the
// offending quiz interaction can be reproduced.
func RecoverMiddleware(next tele.HandlerFunc) tele.HandlerFunc {
	return func(c tele.Context) error {
		defer func() {
			if r := recover(); r != nil {
				userID := ""
				if sender := c.Sender(); sender != nil {
					userID = strconv.FormatInt(sender.ID, 10)
				}
				logger.TG.Error("panic recovered",
					slog.String("event", "tg.panic"),
					slog.String("user_id", userID),
					slog.String("text", logger.SanitizeLimit(c.Text(), 128)),
					slog.Any("err", r),
					slog.String("stack", string(debug.Stack())),
				)
			}
		}()
		return next(c)
	}
}
