package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil)
	require.NoError(t, err)

	assert.Empty(t, cfg.Template.Path)
	assert.True(t, cfg.Backup.Enabled)
	assert.Equal(t, "auto", cfg.Output.Color)
}

func TestLoadTOMLFileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[template]
path = "/opt/wtconf/config.zsh.example"

[backup]
enabled = false
`), 0644))

	cfg, err := load([]string{path})
	require.NoError(t, err)

	assert.Equal(t, "/opt/wtconf/config.zsh.example", cfg.Template.Path)
	assert.False(t, cfg.Backup.Enabled)
	// Untouched sections keep their defaults
	assert.Equal(t, "auto", cfg.Output.Color)
}

func TestLoadYAMLFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
output:
  color: never
`), 0644))

	cfg, err := load([]string{path})
	require.NoError(t, err)

	assert.Equal(t, "never", cfg.Output.Color)
	assert.True(t, cfg.Backup.Enabled)
}

func TestLoadFirstExistingFileWins(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "config.toml")
	yamlPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(tomlPath, []byte("[output]\ncolor = \"always\"\n"), 0644))
	require.NoError(t, os.WriteFile(yamlPath, []byte("output:\n  color: never\n"), 0644))

	cfg, err := load([]string{tomlPath, yamlPath})
	require.NoError(t, err)

	assert.Equal(t, "always", cfg.Output.Color)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[output]\ncolor = \"always\"\n"), 0644))
	t.Setenv("WTCONF_OUTPUT_COLOR", "never")

	cfg, err := load([]string{path})
	require.NoError(t, err)

	assert.Equal(t, "never", cfg.Output.Color)
}

func TestLoadEnvTemplatePath(t *testing.T) {
	t.Setenv("WTCONF_TEMPLATE_PATH", "/custom/template.zsh")

	cfg, err := load(nil)
	require.NoError(t, err)

	assert.Equal(t, "/custom/template.zsh", cfg.Template.Path)
}

func TestLoadMalformedTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[template\npath ="), 0644))

	_, err := load([]string{path})
	require.Error(t, err)
}

func TestTOMLRendering(t *testing.T) {
	cfg, err := load(nil)
	require.NoError(t, err)

	out, err := cfg.TOML()
	require.NoError(t, err)

	assert.Contains(t, out, "[template]")
	assert.Contains(t, out, "[backup]")
	assert.Contains(t, out, "enabled = true")
	assert.Contains(t, out, "color = 'auto'")
}
