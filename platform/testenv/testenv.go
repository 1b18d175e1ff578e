// Package testenv builds isolated resources for tests: a private in-memory
// database with the schema created and, on demand, a miniredis backed cache.
package testenv

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/memo-api/persistence/v1/schema"
	"github.com/ribgsilva/memo-api/platform/database"
	"github.com/ribgsilva/memo-api/sys"
	"go.uber.org/zap"
)

// New returns resources backed by a fresh in-memory sqlite database
func New(t *testing.T) *sys.Resources {
	t.Helper()

	r := &sys.Resources{Log: zap.NewNop().Sugar()}
	r.Configs.Database.Driver = database.SQLite
	r.Configs.Database.ConnectionURL = ":memory:"
	r.Configs.Database.PingTimeout = 2 * time.Second
	r.Configs.Database.OperationTimeout = 5 * time.Second
	r.Configs.Cache.OperationTimeout = 2 * time.Second
	r.Configs.Cache.CacheTTL = time.Hour

	db, err := database.Open(context.Background(), database.Config{
		Driver:        r.Configs.Database.Driver,
		ConnectionURL: r.Configs.Database.ConnectionURL,
		PingTimeout:   r.Configs.Database.PingTimeout,
	})
	if err != nil {
		t.Fatalf("open database: %s", err)
	}
	t.Cleanup(func() {
		database.Close(r.Log, db)
	})
	r.Database = db

	if err := schema.Create(context.Background(), r); err != nil {
		t.Fatalf("create schema: %s", err)
	}

	return r
}

// NewWithCache is New plus a redis client talking to a miniredis instance
func NewWithCache(t *testing.T) (*sys.Resources, *miniredis.Miniredis) {
	t.Helper()

	r := New(t)
	s := miniredis.RunT(t)

	r.Configs.Cache.Enabled = true
	r.Configs.Cache.ConnectionURL = s.Addr()
	r.Cache = redis.NewClient(&redis.Options{Addr: s.Addr()})
	t.Cleanup(func() {
		_ = r.Cache.Close()
	})

	return r, s
}
