package redisdb

import "time"

// Config describes the Redis connection used as the shared quiz store.
type Config struct {
	Addr        string
	Password    string
	DB          int
	DialTimeout time.Duration
}
