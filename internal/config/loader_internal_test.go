package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, debug bool) string {
	t.Helper()

	configPath := filepath.Join(t.TempDir(), "fpl-tui.yaml")
	content := []byte("debug: false\n")
	if debug {
		content = []byte("debug: true\n")
	}

	require.NoError(t, os.WriteFile(configPath, content, 0o600))

	return configPath
}

func TestConfigChangePublished(t *testing.T) {
	t.Parallel()

	changes := make(chan Config, 1)
	loader := NewLoader(nil, writeConfig(t, true))
	loader.changes = changes

	loader.onConfigChange(fsnotify.Event{Name: loader.ConfigFileUsed(), Op: fsnotify.Write})

	select {
	case conf := <-changes:
		require.True(t, conf.Debug)
	default:
		require.Fail(t, "expected a published config")
	}
}

func TestConfigChangeWithoutListener(t *testing.T) {
	t.Parallel()

	// Unbuffered and never read, as after the ui has exited.
	loader := NewLoader(nil, writeConfig(t, false))
	loader.changes = make(chan Config)

	done := make(chan struct{})
	go func() {
		loader.onConfigChange(fsnotify.Event{Name: loader.ConfigFileUsed(), Op: fsnotify.Write})
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		require.Fail(t, "config change blocked with no listener")
	}
}
