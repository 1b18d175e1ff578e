package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOpenSQLiteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "memo.db")

	db, err := Open(context.Background(), Config{Driver: SQLite, ConnectionURL: path})
	require.NoError(t, err)

	_, err = db.Exec("CREATE TABLE scratch (id INTEGER PRIMARY KEY AUTOINCREMENT, v TEXT)")
	require.NoError(t, err)
	Close(zap.NewNop().Sugar(), db)

	db, err = Open(context.Background(), Config{ConnectionURL: path})
	require.NoError(t, err)
	defer Close(zap.NewNop().Sugar(), db)

	var name string
	require.NoError(t, db.QueryRow("SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'scratch'").Scan(&name))
	require.Equal(t, "scratch", name)
}

func TestOpenMemoryKeepsData(t *testing.T) {
	db, err := Open(context.Background(), Config{Driver: SQLite, ConnectionURL: ":memory:"})
	require.NoError(t, err)
	defer Close(zap.NewNop().Sugar(), db)

	_, err = db.Exec("CREATE TABLE scratch (v TEXT)")
	require.NoError(t, err)
	_, err = db.Exec("INSERT INTO scratch (v) VALUES ('x')")
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM scratch").Scan(&count))
	require.Equal(t, 1, count)
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), Config{Driver: "oracle"})
	require.Error(t, err)
}

func TestCloseNil(t *testing.T) {
	Close(zap.NewNop().Sugar(), nil)
}
