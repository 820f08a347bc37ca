package zshcfg

import (
	"fmt"
	"regexp"
	"strings"
)

// Scalar setting names recognized at the top level of a config
const (
	VarGitUsername   = "GIT_USERNAME"
	VarBranchPrefix  = "BRANCH_PREFIX"
	VarBaseDevPath   = "BASE_DEV_PATH"
	VarConfigVersion = "CONFIG_VERSION"
)

// ScalarNames lists the scalar settings in their canonical scan order
var ScalarNames = []string{VarGitUsername, VarBranchPrefix, VarBaseDevPath, VarConfigVersion}

// Associative-array table names
const (
	TableMappings   = "REPO_MAPPINGS"
	TableIDEConfigs = "REPO_IDE_CONFIGS"
	TableCIConfigs  = "REPO_CONFIGS"
	TableModules    = "REPO_MODULES"
)

// KeyedTables lists the three per-repository attribute tables, in the order
// they appear in the canonical template. REPO_MAPPINGS is not included; it
// is the alias table the other three resolve their keys through.
var KeyedTables = []string{TableIDEConfigs, TableCIConfigs, TableModules}

// Section markers in the canonical template
const (
	// SectionDelimiter appears in every section header comment
	SectionDelimiter = "==="

	HeaderIDEConfigs = "# Optional: IDE configuration"
	HeaderCIConfigs  = "# Optional: CI commands"
	HeaderModules    = "# Optional: Modular builds"
)

// Example-line prefixes the template uses to illustrate each optional section
var (
	CIExamplePrefixes = []string{
		"# Android example:",
		"# iOS example:",
		"# Web example:",
	}
	ModuleExamplePrefixes = []string{
		"# Android modules:",
		"# iOS modules:",
		"# Web packages:",
	}
)

// mappingsGuardMarker is the fragment that identifies the REPO_MAPPINGS
// declaration guard, matching the template bit-exactly.
const mappingsGuardMarker = "[[ -z ${(t)REPO_MAPPINGS}"

var (
	scalarPatterns     = map[string]*regexp.Regexp{}
	assignmentPatterns = map[string]*regexp.Regexp{}
)

func init() {
	for _, name := range ScalarNames {
		scalarPatterns[name] = regexp.MustCompile(`^` + name + `=(.*)$`)
	}
	for _, table := range append([]string{TableMappings}, KeyedTables...) {
		assignmentPatterns[table] = regexp.MustCompile(`^` + table + `\[([^\]]+)\]="([^"]*)"`)
	}
}

// DeclarationGuard returns the guard line that declares a table exactly once
func DeclarationGuard(table string) string {
	return fmt.Sprintf(`[[ -z ${(t)%s} ]] && declare -gA %s`, table, table)
}

// Assignment formats a keyed assignment line for a table
func Assignment(table, key, value string) string {
	return fmt.Sprintf(`%s[%s]="%s"`, table, key, value)
}

// IsMappingsGuard reports whether the line is the REPO_MAPPINGS declaration guard
func IsMappingsGuard(line string) bool {
	return strings.Contains(line, mappingsGuardMarker)
}

// IsSectionHeader reports whether the line contains the section delimiter token
func IsSectionHeader(line string) bool {
	return strings.Contains(line, SectionDelimiter)
}

// IsAssignment reports whether the line is an uncommented assignment for the table
func IsAssignment(table, line string) bool {
	return assignmentPatterns[table].MatchString(line)
}

// IsExampleAssignment reports whether the line is a commented-out example
// assignment for the table, e.g. `# REPO_CONFIGS[acmd]="..."`.
func IsExampleAssignment(table, line string) bool {
	return strings.HasPrefix(line, "# "+table+"[")
}

// IsDeclared reports whether the line declares the table
func IsDeclared(table, line string) bool {
	return strings.Contains(line, "declare -gA "+table)
}

// MatchScalar returns the raw value of a scalar assignment line, or false
// when the line does not assign that scalar.
func MatchScalar(name, line string) (string, bool) {
	m := scalarPatterns[name].FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// MatchAssignment returns the key and value of a keyed assignment line,
// or false when the line does not assign into that table.
func MatchAssignment(table, line string) (key, value string, ok bool) {
	m := assignmentPatterns[table].FindStringSubmatch(line)
	if m == nil {
		return "", "", false
	}
	return m[1], m[2], true
}

// hasAnyPrefix reports whether the line starts with one of the prefixes
func hasAnyPrefix(line string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(line, p) {
			return true
		}
	}
	return false
}

// IsCIExample reports whether the line is one of the template's CI example
// comment lines (platform comment or commented assignment).
func IsCIExample(line string) bool {
	return hasAnyPrefix(line, CIExamplePrefixes) || IsExampleAssignment(TableCIConfigs, line)
}

// IsModuleExample reports whether the line is one of the template's module
// example comment lines (platform comment or commented assignment).
func IsModuleExample(line string) bool {
	return hasAnyPrefix(line, ModuleExamplePrefixes) || IsExampleAssignment(TableModules, line)
}
