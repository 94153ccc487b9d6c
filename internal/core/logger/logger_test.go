package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"myplanetplan-api/internal/core/config"
)

func TestBuildWritesRotatedFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "app.log")
	l, cleanup := Build(Options{
		Level:  "info",
		JSON:   true,
		Rotate: FileRotate{Enable: true, Filename: file, MaxSizeMB: 1},
	})
	l.Info("item completed", zap.String("item_id", "abc"))
	l.Debug("dropped")
	cleanup()

	b, err := os.ReadFile(file)
	require.NoError(t, err)
	require.Contains(t, string(b), `"item_id":"abc"`)
	require.NotContains(t, string(b), "dropped")
}

func TestNewFallsBackToInfo(t *testing.T) {
	l, cleanup := New(config.Log{Level: "loud"})
	defer cleanup()
	require.True(t, l.Core().Enabled(zapcore.InfoLevel))
	require.False(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestStd(t *testing.T) {
	l, cleanup := New(config.Log{Level: "debug"})
	defer cleanup()
	require.NotNil(t, Std(l, zapcore.ErrorLevel))
}
