package schema

import (
	"bytes"
	"context"
	"testing"

	"github.com/ribgsilva/memo-api/platform/testenv"
	"github.com/stretchr/testify/require"
)

func TestExec(t *testing.T) {
	r := testenv.New(t)
	var out bytes.Buffer

	count := func() int {
		var n int
		row := r.Database.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name IN ('notebook', 'memo')")
		require.NoError(t, row.Scan(&n))
		return n
	}

	require.NoError(t, Exec(context.Background(), r, &out, "delete"))
	require.Equal(t, 0, count())
	require.Contains(t, out.String(), "deleted schema")

	require.NoError(t, Exec(context.Background(), r, &out, "create"))
	require.Equal(t, 2, count())
	require.Contains(t, out.String(), "created schema")
}

func TestHelp(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, Run(nil, &out, []string{"help"}))
	require.Contains(t, out.String(), "Schema Commands")

	out.Reset()
	require.NoError(t, Run(nil, &out, nil))
	require.Contains(t, out.String(), "create")
}
