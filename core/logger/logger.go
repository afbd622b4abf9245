// Package logger wires structured slog logging for all bot components.
// Components receive pre-tagged child loggers so log lines stay
// greppable by the "component" attribute.
package logger

import (
	"log/slog"
	"os"
	"strings"
	"sync"

	coreconfig "github.com/Dzima-G/caht-bot-quiz/core/config"
)

var (
	initOnce sync.Once

	levelVar slog.LevelVar

	// L is the base logger shared by all components.
	L *slog.Logger

	// Store logs question bank and session storage events.
	Store *slog.Logger
	// Engine logs quiz engine transitions.
	Engine *slog.Logger
	// TG logs Telegram transport events.
	TG *slog.Logger
	// Loader logs bulk question loading.
	Loader *slog.Logger
)

func init() {
	// A usable default until InitLogger runs, mainly for tests.
	apply(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: &levelVar})))
}

// InitLogger configures the global structured logger from configuration.
// It may be called only once; later calls are no-ops.
func InitLogger(cfg *coreconfig.Config) error {
	initOnce.Do(func() {
		levelVar.Set(selectLevel(cfg))

		opts := &slog.HandlerOptions{Level: &levelVar}
		var handler slog.Handler
		switch selectFormat(cfg) {
		case "json":
			handler = slog.NewJSONHandler(os.Stdout, opts)
		default:
			handler = slog.NewTextHandler(os.Stdout, opts)
		}

		logger := slog.New(handler)
		slog.SetDefault(logger)
		apply(logger)

		L.Info("logger initialized",
			slog.String("event", "logger.init"),
			slog.String("level", levelVar.Level().String()),
			slog.String("format", selectFormat(cfg)),
		)
	})
	return nil
}

func apply(logger *slog.Logger) {
	L = logger
	Store = logger.With("component", "store")
	Engine = logger.With("component", "engine")
	TG = logger.With("component", "tg")
	Loader = logger.With("component", "loader")
}

// SetLevel overrides the logging level at runtime.
func SetLevel(level slog.Level) {
	levelVar.Set(level)
}

func selectLevel(cfg *coreconfig.Config) slog.Level {
	if cfg == nil {
		return slog.LevelInfo
	}
	switch strings.ToLower(strings.TrimSpace(cfg.Logging.Level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func selectFormat(cfg *coreconfig.Config) string {
	if cfg == nil {
		return "text"
	}
	if strings.EqualFold(strings.TrimSpace(cfg.Logging.Format), "json") {
		return "json"
	}
	return "text"
}
