package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"

	bottelegram "github.com/Dzima-G/caht-bot-quiz/bot/telegram"
	"github.com/Dzima-G/caht-bot-quiz/core/bootstrap"
	"github.com/Dzima-G/caht-bot-quiz/core/cmd"
	coreconfig "github.com/Dzima-G/caht-bot-quiz/core/config"
	coretelegram "github.com/Dzima-G/caht-bot-quiz/core/telegram"
	"github.com/Dzima-G/caht-bot-quiz/core/telegram/middleware"
	"github.com/Dzima-G/caht-bot-quiz/quiz/engine"
	"github.com/Dzima-G/caht-bot-quiz/quiz/session"
	"github.com/Dzima-G/caht-bot-quiz/quiz/store"
)

func main() {
	// .env is optional; explicit env vars win either way.
	_ = godotenv.Load()

	err := cmd.Run(cmd.Options{
		DefaultConfigPath: "config.yaml",
		Build:             buildRuntime,
	})
	if err != nil {
		log.Fatalf("quizbot: %v", err)
	}
}

func buildRuntime(cfg *coreconfig.Config, infra *bootstrap.Result) (coretelegram.RunOptions, error) {
	catalog := store.NewCatalog(infra.Redis)
	sessions := session.NewSessions(infra.Redis)
	adapter := bottelegram.New(engine.New(catalog, sessions))

	middlewares := []coretelegram.Middleware{
		{Name: "recover", Use: middleware.RecoverMiddleware},
	}
	if cfg.RateLimit.IntervalMS > 0 {
		middlewares = append(middlewares, coretelegram.Middleware{
			Name: "rate_limit",
			Use: middleware.RateLimitMiddleware(middleware.RateLimitOptions{
				Interval: time.Duration(cfg.RateLimit.IntervalMS) * time.Millisecond,
			}),
		})
	}

	return coretelegram.RunOptions{
		Config:      cfg,
		Middlewares: middlewares,
		Routes:      adapter.Routes(),
	}, nil
}
