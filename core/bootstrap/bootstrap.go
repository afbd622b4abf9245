// Package bootstrap runs the shared startup pipeline for the bot binaries.
package bootstrap

import (
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	coreconfig "github.com/Dzima-G/caht-bot-quiz/core/config"
	"github.com/Dzima-G/caht-bot-quiz/core/logger"
	"github.com/Dzima-G/caht-bot-quiz/core/redisdb"
)

// Options control the bootstrap pipeline shared between the bot and the loader.
type Options struct {
	Config *coreconfig.Config

	LoggerInit func(*coreconfig.Config) error
	Connect    func(redisdb.Config) (*redis.Client, error)
}

// Result exposes infrastructure initialized by the bootstrap pipeline.
type Result struct {
	Redis *redis.Client
}

// Run initializes the logger and connects to the shared Redis store.
func Run(opts Options) (*Result, error) {
	if opts.Config == nil {
		return nil, fmt.Errorf("bootstrap: nil config provided")
	}

	loggerInit := opts.LoggerInit
	if loggerInit == nil {
		loggerInit = logger.InitLogger
	}
	if err := loggerInit(opts.Config); err != nil {
		return nil, fmt.Errorf("bootstrap: logger init failed: %w", err)
	}

	connect := opts.Connect
	if connect == nil {
		connect = redisdb.Connect
	}
	client, err := connect(redisdb.Config{
		Addr:        opts.Config.Redis.Addr,
		Password:    opts.Config.Redis.Password,
		DB:          opts.Config.Redis.DB,
		DialTimeout: time.Duration(opts.Config.Redis.DialTimeoutSeconds) * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("bootstrap: redis initialization failed: %w", err)
	}

	return &Result{Redis: client}, nil
}
