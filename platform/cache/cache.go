// Package cache connects the optional redis cache placed in front of memo reads.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

type Config struct {
	ConnectionURL string
	User          string
	Pass          string
	PingTimeout   time.Duration
}

// Open returns a client that already answered a ping
func Open(ctx context.Context, cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.ConnectionURL,
		Username: cfg.User,
		Password: cfg.Pass,
	})

	pingTimeout := cfg.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = 2 * time.Second
	}
	rdsCtx, rdsCancel := context.WithTimeout(ctx, pingTimeout)
	defer rdsCancel()
	if err := rdb.Ping(rdsCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("could not connect to redis: %w", err)
	}
	return rdb, nil
}

func Close(log *zap.SugaredLogger, rdb *redis.Client) {
	if rdb == nil {
		return
	}
	if err := rdb.Close(); err != nil {
		log.Errorf("could not close redis conn gracefully: %s", err)
	}
}
