package zshcfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRoundTrip(t *testing.T) {
	text := "#!/usr/bin/env zsh\nGIT_USERNAME=test\n\nREPO_MAPPINGS[acmd]=\"Org-Android\"\n"
	doc := Parse(text)

	assert.Equal(t, 5, doc.Len()) // trailing newline yields a final empty line
	assert.Equal(t, text, doc.String())
}

func TestDeclarationGuard(t *testing.T) {
	assert.Equal(t,
		`[[ -z ${(t)REPO_CONFIGS} ]] && declare -gA REPO_CONFIGS`,
		DeclarationGuard(TableCIConfigs))
}

func TestAssignment(t *testing.T) {
	assert.Equal(t,
		`REPO_MODULES[acmd]="core auth"`,
		Assignment(TableModules, "acmd", "core auth"))
}

func TestIsMappingsGuard(t *testing.T) {
	assert.True(t, IsMappingsGuard(DeclarationGuard(TableMappings)))
	assert.False(t, IsMappingsGuard(DeclarationGuard(TableCIConfigs)))
	assert.False(t, IsMappingsGuard(`REPO_MAPPINGS[acmd]="Org-Android"`))
}

func TestIsSectionHeader(t *testing.T) {
	assert.True(t, IsSectionHeader("# ============================"))
	assert.False(t, IsSectionHeader("# Repository shortcuts"))
}

func TestMatchScalar(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		value string
		ok    bool
	}{
		{VarGitUsername, "GIT_USERNAME=testuser", "testuser", true},
		{VarGitUsername, `GIT_USERNAME="${USER}"`, `"${USER}"`, true},
		{VarBaseDevPath, "BASE_DEV_PATH=$HOME/dev", "$HOME/dev", true},
		{VarConfigVersion, "CONFIG_VERSION=1", "1", true},
		{VarGitUsername, "# GIT_USERNAME=testuser", "", false},
		{VarGitUsername, "BRANCH_PREFIX=x", "", false},
	}

	for _, tt := range tests {
		value, ok := MatchScalar(tt.name, tt.line)
		assert.Equal(t, tt.ok, ok, "line %q", tt.line)
		assert.Equal(t, tt.value, value, "line %q", tt.line)
	}
}

func TestMatchAssignment(t *testing.T) {
	key, value, ok := MatchAssignment(TableCIConfigs, `REPO_CONFIGS[acmd]="./gradlew build|./gradlew test|./gradlew lint"`)
	assert.True(t, ok)
	assert.Equal(t, "acmd", key)
	assert.Equal(t, "./gradlew build|./gradlew test|./gradlew lint", value)

	_, _, ok = MatchAssignment(TableCIConfigs, `# REPO_CONFIGS[acmd]="example"`)
	assert.False(t, ok)

	_, _, ok = MatchAssignment(TableCIConfigs, `REPO_MODULES[acmd]="core"`)
	assert.False(t, ok)
}

func TestIsExampleAssignment(t *testing.T) {
	assert.True(t, IsExampleAssignment(TableIDEConfigs, `# REPO_IDE_CONFIGS[acmd]="android-studio||"`))
	assert.False(t, IsExampleAssignment(TableIDEConfigs, `REPO_IDE_CONFIGS[acmd]="android-studio||"`))
}

func TestIsCIExample(t *testing.T) {
	assert.True(t, IsCIExample("# Android example:"))
	assert.True(t, IsCIExample("# iOS example:"))
	assert.True(t, IsCIExample("# Web example:"))
	assert.True(t, IsCIExample(`# REPO_CONFIGS[web]="npm run build|npm test|npm run lint"`))
	assert.False(t, IsCIExample("# Format: \"build_cmd|test_cmd|lint_cmd\""))
}

func TestIsModuleExample(t *testing.T) {
	assert.True(t, IsModuleExample("# Android modules:"))
	assert.True(t, IsModuleExample("# Web packages:"))
	assert.True(t, IsModuleExample(`# REPO_MODULES[acmd]="app-core"`))
	assert.False(t, IsModuleExample("# Android example:"))
}

func TestIsDeclared(t *testing.T) {
	assert.True(t, IsDeclared(TableModules, DeclarationGuard(TableModules)))
	assert.False(t, IsDeclared(TableModules, DeclarationGuard(TableCIConfigs)))
}
