package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("no destination discards", func(t *testing.T) {
		logger, err := New(Options{})
		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(-1))
	})

	t.Run("file destination writes JSON lines", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "pathpick.log")
		logger, err := New(Options{File: path, Level: "debug", AppName: "pathpick", AppVersion: "test"})
		require.NoError(t, err)

		logger.Debug("hello")
		_ = logger.Sync()

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"msg":"hello"`)
		assert.Contains(t, string(data), `"appName":"pathpick"`)
	})

	t.Run("invalid level", func(t *testing.T) {
		logger, err := New(Options{File: filepath.Join(t.TempDir(), "x.log"), Level: "loud"})
		assert.Error(t, err)
		assert.NotNil(t, logger)
	})
}
