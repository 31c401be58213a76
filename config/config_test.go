package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fwojciec/mdview"
	"github.com/fwojciec/mdview/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "mdview.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	assert.Equal(t, mdview.DefaultContainerID, cfg.ContainerID)
	assert.Equal(t, mdview.DefaultScriptID, cfg.ScriptID)
	assert.Equal(t, mdview.DefaultPath, cfg.DefaultPath)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 80, cfg.Width)
	assert.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("overrides defaults", func(t *testing.T) {
		t.Parallel()

		path := writeFile(t, `
base_url: http://localhost:8080/docs/
container_id: content
timeout: 1500ms
extensions: [gfm, definition]
front_matter: true
width: 100
`)
		cfg, err := config.Load(path)
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080/docs/", cfg.BaseURL)
		assert.Equal(t, "content", cfg.ContainerID)
		assert.Equal(t, mdview.DefaultScriptID, cfg.ScriptID)
		assert.Equal(t, 1500*time.Millisecond, cfg.Timeout)
		assert.Equal(t, []string{"gfm", "definition"}, cfg.Extensions)
		assert.True(t, cfg.FrontMatter)
		assert.Equal(t, 100, cfg.Width)
	})

	t.Run("comma separated extensions", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.Load(writeFile(t, "extensions: table,strikethrough\n"))
		require.NoError(t, err)
		assert.Equal(t, []string{"table", "strikethrough"}, cfg.Extensions)
	})

	t.Run("empty file keeps defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := config.Load(writeFile(t, ""))
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})

	t.Run("unknown key is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := config.Load(writeFile(t, "colour: blue\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config: decode")
	})

	t.Run("invalid duration is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := config.Load(writeFile(t, "timeout: soon\n"))
		require.Error(t, err)
	})

	t.Run("malformed yaml is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := config.Load(writeFile(t, "base_url: [\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "config: parse")
	})

	t.Run("explicit missing file is an error", func(t *testing.T) {
		t.Parallel()

		_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("empty path without default file returns defaults", func(t *testing.T) {
		t.Parallel()

		// The package directory has no mdview.yaml.
		cfg, err := config.Load("")
		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*config.Config)
		want   string
	}{
		{"empty container id", func(c *config.Config) { c.ContainerID = "" }, "container_id"},
		{"empty script id", func(c *config.Config) { c.ScriptID = "" }, "script_id"},
		{"zero timeout", func(c *config.Config) { c.Timeout = 0 }, "timeout"},
		{"negative width", func(c *config.Config) { c.Width = -1 }, "width"},
		{"relative base url", func(c *config.Config) { c.BaseURL = "/docs/" }, "base_url"},
		{"hidden default path", func(c *config.Config) { c.DefaultPath = ".env" }, "default_path"},
		{"empty default path", func(c *config.Config) { c.DefaultPath = "" }, "default_path"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := config.Default()
			tt.modify(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}

	t.Run("absolute base url is valid", func(t *testing.T) {
		t.Parallel()

		cfg := config.Default()
		cfg.BaseURL = "https://example.com/docs/"
		assert.NoError(t, cfg.Validate())
	})
}
