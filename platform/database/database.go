// Package database opens the single connection the gateway owns.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

const (
	SQLite = "sqlite"
	MySQL  = "mysql"
)

// Config selects the engine and where to find it
type Config struct {
	Driver        string
	ConnectionURL string
	PingTimeout   time.Duration
}

// Open connects to the database and checks it answers. Statements are serialized on one
// connection; for sqlite this also keeps ":memory:" databases alive for the handle's lifetime.
func Open(ctx context.Context, cfg Config) (*sql.DB, error) {
	driver := strings.ToLower(strings.TrimSpace(cfg.Driver))
	if driver == "" {
		driver = SQLite
	}
	if driver != SQLite && driver != MySQL {
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	dsn := cfg.ConnectionURL
	if driver == MySQL && !strings.Contains(dsn, "parseTime") {
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "parseTime=true&loc=Local"
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("error to connect to database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pingTimeout := cfg.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = 2 * time.Second
	}
	dbCtx, dbCancel := context.WithTimeout(ctx, pingTimeout)
	defer dbCancel()
	if err := db.PingContext(dbCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("could not connect to database: %w", err)
	}

	if driver == SQLite {
		if err := applyPragmas(dbCtx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return db, nil
}

func applyPragmas(ctx context.Context, db *sql.DB) error {
	statements := []string{
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = FULL",
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("apply pragma %q: %w", stmt, err)
		}
	}
	return nil
}

// Close releases the connection. Failures are only logged, shutdown goes on.
func Close(log *zap.SugaredLogger, db *sql.DB) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		log.Errorf("could not close db conn gracefully: %s", err)
		return
	}
	log.Infow("shutdown", "status", "database connection closed")
}
