package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sanonone/friendgraph/pkg/friends"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "friendwalk.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "all", cfg.Filter)
	assert.Equal(t, friends.Unbounded, cfg.MaxDepth)
	assert.Equal(t, "text", cfg.Format)
	assert.NoError(t, cfg.Validate())

	loaded, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeFile(t, "file: friends.yaml\nfilter: female\nmax_depth: 2\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "friends.yaml", cfg.File)
	assert.Equal(t, "female", cfg.Filter)
	assert.Equal(t, 2, cfg.MaxDepth)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfigStrict(t *testing.T) {
	_, err := LoadConfig(writeFile(t, "filter: all\ncolour: blue\n"))
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Filter = "robots"
	cfg.Format = "xml"
	cfg.LogLevel = "loud"

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, friends.ErrInvalidFilterType)
	assert.Contains(t, err.Error(), `unknown format "xml"`)
	assert.Contains(t, err.Error(), `unknown log level "loud"`)
}

func TestParseLogLevel(t *testing.T) {
	level, err := ParseLogLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	_, err = ParseLogLevel("")
	assert.Error(t, err)
}
