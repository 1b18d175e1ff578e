package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestOrDefault(t *testing.T) {
	log := zap.NewNop().Sugar()

	t.Setenv("MEMO_TEST_VALUE", "")
	require.Equal(t, "def", OrDefault(log, "MEMO_TEST_VALUE", "def"))

	t.Setenv("MEMO_TEST_VALUE", "set")
	require.Equal(t, "set", OrDefault(log, "MEMO_TEST_VALUE", "def"))
}

func TestTypedDefaults(t *testing.T) {
	log := zap.NewNop().Sugar()

	t.Setenv("MEMO_TEST_DURATION", "3s")
	t.Setenv("MEMO_TEST_BOOL", "t")
	t.Setenv("MEMO_TEST_INT", "42")
	t.Setenv("MEMO_TEST_INT_GARBAGE", "many")

	require.Equal(t, 3*time.Second, DurationDefault(log, "MEMO_TEST_DURATION", "1s"))
	require.Equal(t, time.Second, DurationDefault(log, "MEMO_TEST_DURATION_MISSING", "1s"))
	require.True(t, BoolDefault(log, "MEMO_TEST_BOOL", "f"))
	require.False(t, BoolDefault(log, "MEMO_TEST_BOOL_MISSING", "f"))
	require.Equal(t, 42, IntDefault(log, "MEMO_TEST_INT", "1"))
	require.Equal(t, 3, IntDefault(log, "MEMO_TEST_INT_GARBAGE", "3"))
	require.Equal(t, 0, IntDefault(log, "MEMO_TEST_INT_BAD", "nope"))
}

func TestMust(t *testing.T) {
	log := zap.NewNop().Sugar()

	t.Setenv("MEMO_TEST_REQUIRED", "")
	require.Panics(t, func() { Must(log, "MEMO_TEST_REQUIRED") })

	t.Setenv("MEMO_TEST_REQUIRED", "topic")
	require.Equal(t, "topic", Must(log, "MEMO_TEST_REQUIRED"))
}

func TestLoad(t *testing.T) {
	log := zap.NewNop().Sugar()
	file := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(file, []byte("MEMO_TEST_DOTENV=from-file\n"), 0o600))

	t.Setenv("MEMO_TEST_DOTENV", "")
	require.NoError(t, os.Unsetenv("MEMO_TEST_DOTENV"))
	Load(log, file)
	require.Equal(t, "from-file", OrDefault(log, "MEMO_TEST_DOTENV", "def"))

	// missing files are ignored
	Load(log, filepath.Join(t.TempDir(), "missing.env"))
}
