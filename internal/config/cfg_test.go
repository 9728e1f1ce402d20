package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigurationNoFile(t *testing.T) {
	cfg, err := LoadConfiguration("")
	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "screen", cfg.Features().Type)
	assert.Equal(t, 1024, cfg.Features().Width)
	assert.Equal(t, "en", cfg.Locale.Language)
	// template expansion knows it runs under test
	assert.Equal(t, "debug", cfg.Logging.ConsoleLogger.Level)
	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Len(t, opts, 3)
}

func TestLoadConfigurationWithFile(t *testing.T) {
	dir := t.TempDir()
	css := filepath.Join(dir, "user.css")
	require.NoError(t, os.WriteFile(css, []byte("p { color: red }"), 0644))
	path := filepath.Join(dir, "config.yaml")
	content := "version: 1\nmedia:\n  type: print\n  width: 600\nstyles:\n  user_stylesheet: " + css + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfiguration(path)
	require.NoError(t, err)
	assert.Equal(t, "print", cfg.Media.Type)
	assert.Equal(t, 600, cfg.Media.Width)
	assert.Equal(t, 768, cfg.Media.Height, "default kept")
	opts, err := cfg.Options()
	require.NoError(t, err)
	assert.Len(t, opts, 4)
}

func TestLoadConfigurationRejects(t *testing.T) {
	dir := t.TempDir()
	for name, content := range map[string]string{
		"unknown field": "version: 1\nunknown: 3\n",
		"bad version":   "version: 2\n",
		"bad media":     "version: 1\nmedia:\n  type: tv-set\n",
	} {
		path := filepath.Join(dir, "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))
		_, err := LoadConfiguration(path)
		assert.Error(t, err, name)
	}
}

func TestPrepareAndDump(t *testing.T) {
	data, err := Prepare()
	require.NoError(t, err)
	assert.Contains(t, string(data), "media:")
	cfg, err := LoadConfiguration("")
	require.NoError(t, err)
	out, err := Dump(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(out), "max_import_depth: 8")
	assert.NotNil(t, cfg.Logging.Prepare())
}
