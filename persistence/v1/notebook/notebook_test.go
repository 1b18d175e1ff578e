package notebook_test

import (
	"context"
	"testing"

	"github.com/ribgsilva/memo-api/persistence/v1/notebook"
	"github.com/ribgsilva/memo-api/platform/testenv"
	"github.com/stretchr/testify/require"
)

func TestInsertAndFindAllKeepsInsertionOrder(t *testing.T) {
	r := testenv.New(t)
	ctx := context.Background()

	names := []string{"Work", "Home", "Work", ""}
	var inserted []notebook.Notebook
	for _, name := range names {
		n, err := notebook.Insert(ctx, r, notebook.NewNotebook{Name: name})
		require.NoError(t, err)
		require.NotZero(t, n.Id)
		require.Equal(t, name, n.Name)
		require.Equal(t, n.CreatedAt, n.UpdatedAt)
		inserted = append(inserted, n)
	}

	all, err := notebook.FindAll(ctx, r)
	require.NoError(t, err)
	require.Len(t, all, len(names))

	seen := map[int64]bool{}
	for i, n := range all {
		require.Equal(t, inserted[i].Id, n.Id)
		require.Equal(t, names[i], n.Name)
		require.True(t, inserted[i].CreatedAt.Equal(n.CreatedAt), "created_at %v != %v", inserted[i].CreatedAt, n.CreatedAt)
		require.False(t, seen[n.Id], "duplicated id %d", n.Id)
		seen[n.Id] = true
	}
}

func TestFindAllEmpty(t *testing.T) {
	r := testenv.New(t)

	all, err := notebook.FindAll(context.Background(), r)
	require.NoError(t, err)
	require.NotNil(t, all)
	require.Empty(t, all)
}

func TestFindLast(t *testing.T) {
	r := testenv.New(t)
	ctx := context.Background()

	last, err := notebook.FindLast(ctx, r)
	require.NoError(t, err)
	require.Zero(t, last.Id)

	_, err = notebook.Insert(ctx, r, notebook.NewNotebook{Name: "Home"})
	require.NoError(t, err)
	work, err := notebook.Insert(ctx, r, notebook.NewNotebook{Name: "Work"})
	require.NoError(t, err)

	last, err = notebook.FindLast(ctx, r)
	require.NoError(t, err)
	require.Equal(t, work.Id, last.Id)
	require.Equal(t, "Work", last.Name)
}

func TestDeleteDoesNotReuseIds(t *testing.T) {
	r := testenv.New(t)
	ctx := context.Background()

	first, err := notebook.Insert(ctx, r, notebook.NewNotebook{Name: "first"})
	require.NoError(t, err)
	require.NoError(t, notebook.Delete(ctx, r, first.Id))
	require.NoError(t, notebook.Delete(ctx, r, first.Id))

	found, err := notebook.Find(ctx, r, first.Id)
	require.NoError(t, err)
	require.Zero(t, found.Id)

	second, err := notebook.Insert(ctx, r, notebook.NewNotebook{Name: "second"})
	require.NoError(t, err)
	require.Greater(t, second.Id, first.Id)
}
