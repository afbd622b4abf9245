// Package cmd wires configuration, bootstrap and the Telegram runtime
// into a single entrypoint pipeline for bot binaries.
package cmd

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tele "gopkg.in/telebot.v4"

	"github.com/Dzima-G/caht-bot-quiz/core/bootstrap"
	coreconfig "github.com/Dzima-G/caht-bot-quiz/core/config"
	"github.com/Dzima-G/caht-bot-quiz/core/logger"
	coretelegram "github.com/Dzima-G/caht-bot-quiz/core/telegram"
)

// Options describe how to locate configuration and build the bot runtime.
type Options struct {
	ConfigEnvVar      string
	DefaultConfigPath string

	// Build assembles run options from loaded config and bootstrapped
	// infrastructure (logger ready, Redis connected).
	Build func(cfg *coreconfig.Config, infra *bootstrap.Result) (coretelegram.RunOptions, error)
}

// Run loads configuration, bootstraps infrastructure, and starts the bot
// until an interrupt or termination signal arrives.
func Run(opts Options) error {
	if opts.Build == nil {
		return fmt.Errorf("cmd: Build is required")
	}

	env := opts.ConfigEnvVar
	if env == "" {
		env = "CONFIG_PATH"
	}
	cfgPath := os.Getenv(env)
	if cfgPath == "" {
		cfgPath = opts.DefaultConfigPath
	}
	if cfgPath == "" {
		return fmt.Errorf("cmd: config path not provided via %s or DefaultConfigPath", env)
	}

	log.Printf("loading config: %s", cfgPath)
	cfg, err := coreconfig.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("cmd: failed to load config: %w", err)
	}

	infra, err := bootstrap.Run(bootstrap.Options{Config: cfg})
	if err != nil {
		return fmt.Errorf("cmd: bootstrap failed: %w", err)
	}
	defer func() {
		if err := infra.Redis.Close(); err != nil {
			logger.L.Warn("redis close error",
				slog.String("event", "shutdown"),
				slog.String("err", err.Error()),
			)
		}
	}()

	runOpts, err := opts.Build(cfg, infra)
	if err != nil {
		return fmt.Errorf("cmd: runtime build failed: %w", err)
	}

	startedAt := time.Now()
	prevStart := runOpts.OnStart
	runOpts.OnStart = func(ctx context.Context, bot *tele.Bot) error {
		if prevStart != nil {
			if err := prevStart(ctx, bot); err != nil {
				return err
			}
		}
		logger.L.With("component", "app").Info("app ready",
			slog.String("event", "ready"),
			slog.Duration("startup_duration", logger.Took(startedAt)),
		)
		return nil
	}

	prevStop := runOpts.OnStop
	runOpts.OnStop = func(ctx context.Context, bot *tele.Bot) error {
		logger.L.With("component", "app").Info("shutting down...",
			slog.String("event", "shutdown"),
		)
		if prevStop != nil {
			return prevStop(ctx, bot)
		}
		return nil
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return coretelegram.RunTelegram(ctx, runOpts)
}
