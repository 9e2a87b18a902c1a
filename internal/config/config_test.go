package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "insta_posts_1.csv", c.DataPath)
	assert.Equal(t, "/p/", c.ProfileMarker)
	assert.Equal(t, []string{"15:04:05"}, c.TimeLayouts)
	assert.Equal(t, "02-01-2006", c.DateLayouts[0])
	assert.Equal(t, 8080, c.ServerPort)
	assert.Equal(t, 40, c.RateLimitBurst)
}

func TestSaveThenLoad(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	c, err := Load("")
	require.NoError(t, err)
	c.DataPath = "exports/posts.xlsx"
	c.ServerPort = 9090
	require.NoError(t, Save(c, path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "exports/posts.xlsx", got.DataPath)
	assert.Equal(t, 9090, got.ServerPort)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("POSTPULSE_LOG_LEVEL=debug\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("POSTPULSE_LOG_LEVEL") })
	t.Setenv("POSTPULSE_DATA_PATH", "from-env.csv")

	c, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from-env.csv", c.DataPath)
	assert.Equal(t, "debug", c.LogLevel)
}

func TestLoadBadConfigFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data_path: [unterminated\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
