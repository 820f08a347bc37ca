// Package paths centralizes path handling: template discovery, backup file
// naming, and XDG-compliant locations for the tool's own configuration.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/wtconf/pkg/errors"
)

// Environment variable names
const (
	// EnvTemplatePath overrides template discovery entirely
	EnvTemplatePath = "WTCONF_TEMPLATE_PATH"
)

const (
	// TemplateFileName is the canonical template's well-known file name
	TemplateFileName = "config.zsh.example"

	// AppDirName is the directory name for wtconf-specific files
	AppDirName = "wtconf"

	// BackupTimeFormat produces the timestamp suffix of backup files
	BackupTimeFormat = "20060102_150405"
)

// TemplateSearchPaths returns the locations probed for the canonical
// template, in order: next to the executable (production install), the
// adjacent share directory, and the current directory (development).
func TemplateSearchPaths() []string {
	var candidates []string
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		candidates = append(candidates,
			filepath.Join(dir, TemplateFileName),
			filepath.Join(dir, "..", "share", AppDirName, TemplateFileName),
		)
	}
	return append(candidates, TemplateFileName)
}

// FindTemplate resolves the template path. An explicit override (flag,
// config, or WTCONF_TEMPLATE_PATH) must exist; discovery failures return an
// empty path with no error so callers can fall back to the embedded copy.
func FindTemplate(override string) (string, error) {
	if override == "" {
		override = os.Getenv(EnvTemplatePath)
	}
	if override != "" {
		if _, err := os.Stat(override); err != nil {
			return "", errors.Newf(errors.ErrTemplateNotFound,
				"template not found: %s", override)
		}
		return override, nil
	}

	for _, candidate := range TemplateSearchPaths() {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", nil
}

// BackupPath names a backup file next to its target:
// <name>.<kind>.backup.<YYYYMMDD_HHMMSS>
func BackupPath(target, kind string, now time.Time) string {
	name := fmt.Sprintf("%s.%s.backup.%s",
		filepath.Base(target), kind, now.Format(BackupTimeFormat))
	return filepath.Join(filepath.Dir(target), name)
}

// ConfigFilePaths returns the candidate locations of the tool's own config
// file, most specific first. Both TOML and YAML are accepted.
func ConfigFilePaths() []string {
	dir := filepath.Join(xdg.ConfigHome, AppDirName)
	return []string{
		filepath.Join(dir, "config.toml"),
		filepath.Join(dir, "config.yaml"),
	}
}
