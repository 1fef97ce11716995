package logger

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesKeyValues(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l := New(&buf, slog.LevelInfo)

	l.Info("searching for symbol", "keywords", "Tesla")
	l.Debug("hidden")

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, `msg="searching for symbol"`)
	assert.Contains(t, out, "keywords=Tesla")
	assert.NotContains(t, out, "hidden")
}

// Setup はグローバルなデフォルトロガーを書き換えるため並列実行しない。
func TestSetup_WritesLogFile(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	dir := filepath.Join(t.TempDir(), "logs")

	closer, err := Setup(dir, slog.LevelInfo)
	require.NoError(t, err)

	slog.Info("fetching daily stock data", "symbol", "IBM")
	require.NoError(t, closer.Close())

	b, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Contains(t, string(b), "symbol=IBM")
}

func TestSetup_ConsoleOnly(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	closer, err := Setup("", slog.LevelWarn)

	require.NoError(t, err)
	assert.NoError(t, closer.Close())
}
