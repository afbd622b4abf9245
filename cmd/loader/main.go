// Command loader bulk loads a questions JSON file into the shared store.
// It is a startup-time tool and the one place allowed to fail loudly.
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	coreconfig "github.com/Dzima-G/caht-bot-quiz/core/config"
	"github.com/Dzima-G/caht-bot-quiz/core/logger"
	"github.com/Dzima-G/caht-bot-quiz/core/redisdb"
	"github.com/Dzima-G/caht-bot-quiz/quiz/store"
)

type loaderEnv struct {
	Redis coreconfig.RedisConfig
	Quiz  coreconfig.QuizConfig
}

func main() {
	file := flag.String("file", "questions.json", "path to the questions JSON file")
	prefix := flag.String("prefix", "", "question sub-identifier prefix (defaults to QUIZ_KEY_PREFIX or 'id')")
	wait := flag.Duration("wait", 30*time.Second, "how long to wait for the store to become reachable; 0 fails immediately")
	flag.Parse()

	_ = godotenv.Load()

	var env loaderEnv
	if err := envconfig.Process("", &env); err != nil {
		log.Fatalf("loader: failed to process env: %v", err)
	}
	if env.Redis.Addr == "" {
		env.Redis.Addr = "localhost:6379"
	}
	if *prefix == "" {
		*prefix = env.Quiz.KeyPrefix
	}
	if *prefix == "" {
		*prefix = "id"
	}

	if err := logger.InitLogger(nil); err != nil {
		log.Fatalf("loader: logger init failed: %v", err)
	}

	entries, err := store.ReadQuestionsFile(*file)
	if err != nil {
		log.Fatalf("loader: %v", err)
	}

	redisCfg := redisdb.Config{
		Addr:        env.Redis.Addr,
		Password:    env.Redis.Password,
		DB:          env.Redis.DB,
		DialTimeout: time.Duration(env.Redis.DialTimeoutSeconds) * time.Second,
	}

	// The loader often starts alongside Redis under an orchestrator, so
	// give the store a grace period before failing the load.
	if *wait > 0 {
		if err := redisdb.WaitForRedis(redisCfg, *wait); err != nil {
			log.Fatalf("loader: %v", err)
		}
	}

	client, err := redisdb.Connect(redisCfg)
	if err != nil {
		log.Fatalf("loader: %v", err)
	}
	defer client.Close()

	loaded, err := store.NewCatalog(client).Load(context.Background(), entries, *prefix)
	if err != nil {
		// Partially written entries remain; rerunning appends duplicates,
		// so inspect the bank before retrying.
		log.Fatalf("loader: wrote %d of %d entries: %v", loaded, len(entries), err)
	}

	log.Printf("loader: loaded %d questions from %s with prefix %q", loaded, *file, *prefix)
}
