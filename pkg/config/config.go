// Package config loads the tool's own configuration: embedded defaults,
// then the user's config file from the XDG config directory (TOML or YAML),
// then WTCONF_-prefixed environment variables. Later layers win.
package config

import (
	"os"
	"strings"

	koanftoml "github.com/knadh/koanf/parsers/toml"
	koanfyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/wtconf/pkg/errors"
	"github.com/arthur-debert/wtconf/pkg/paths"
)

// envPrefix namespaces the environment layer, e.g. WTCONF_TEMPLATE_PATH
const envPrefix = "WTCONF_"

// Config is the tool's effective configuration
type Config struct {
	Template TemplateConfig `koanf:"template" toml:"template"`
	Backup   BackupConfig   `koanf:"backup" toml:"backup"`
	Output   OutputConfig   `koanf:"output" toml:"output"`
}

// TemplateConfig controls canonical-template resolution
type TemplateConfig struct {
	// Path overrides template discovery when non-empty
	Path string `koanf:"path" toml:"path"`
}

// BackupConfig controls the pre-write backup step
type BackupConfig struct {
	Enabled bool `koanf:"enabled" toml:"enabled"`
}

// OutputConfig controls terminal rendering
type OutputConfig struct {
	// Color is one of auto, always, never
	Color string `koanf:"color" toml:"color"`
}

// Load builds the effective configuration from all layers
func Load() (*Config, error) {
	return load(paths.ConfigFilePaths())
}

// load is the layered loader; candidate config files are probed in order
// and the first one that exists is used.
func load(configFiles []string) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, koanftoml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config file, TOML or YAML by extension
	for _, path := range configFiles {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		var parser koanf.Parser = koanftoml.Parser()
		if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
			parser = koanfyaml.Parser()
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse,
				"failed to load config from %s", path)
		}
		break
	}

	// 3. Environment: WTCONF_TEMPLATE_PATH -> template.path
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "_", ".")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load env vars")
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}
	return &cfg, nil
}

// TOML renders the effective configuration, for `wtconf config`
func (c *Config) TOML() (string, error) {
	out, err := toml.Marshal(c)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal configuration")
	}
	return string(out), nil
}
