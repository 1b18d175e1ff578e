package schema_test

import (
	"context"
	"testing"
	"time"

	"github.com/ribgsilva/memo-api/persistence/v1/schema"
	"github.com/ribgsilva/memo-api/platform/errs"
	"github.com/ribgsilva/memo-api/platform/testenv"
	"github.com/stretchr/testify/require"
)

func TestCreateIsIdempotent(t *testing.T) {
	r := testenv.New(t)
	ctx := context.Background()

	n := time.Now()
	_, err := r.Database.Exec("INSERT INTO notebook (name, created_at, updated_at) VALUES (?, ?, ?)", "Work", n, n)
	require.NoError(t, err)

	require.NoError(t, schema.Create(ctx, r))

	var count int
	require.NoError(t, r.Database.QueryRow("SELECT COUNT(*) FROM notebook").Scan(&count))
	require.Equal(t, 1, count)

	rows, err := r.Database.Query("SELECT name FROM sqlite_master WHERE type = 'table' AND name IN ('notebook', 'memo') ORDER BY name")
	require.NoError(t, err)
	defer rows.Close()
	var names []string
	for rows.Next() {
		var name string
		require.NoError(t, rows.Scan(&name))
		names = append(names, name)
	}
	require.NoError(t, rows.Err())
	require.Equal(t, []string{"memo", "notebook"}, names)
}

func TestDrop(t *testing.T) {
	r := testenv.New(t)
	ctx := context.Background()

	require.NoError(t, schema.Drop(ctx, r))
	require.NoError(t, schema.Drop(ctx, r))

	_, err := r.Database.Exec("SELECT * FROM memo")
	require.Error(t, err)

	require.NoError(t, schema.Create(ctx, r))
}

func TestCreateReportsStoreError(t *testing.T) {
	r := testenv.New(t)
	require.NoError(t, r.Database.Close())

	err := schema.Create(context.Background(), r)
	require.Error(t, err)
	require.Equal(t, errs.KindStore, errs.KindOf(err))
}
