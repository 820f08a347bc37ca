// Package style renders validation and normalization results for the
// terminal using pterm.
package style

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// Indicators for list items
const (
	IssueIndicator = "•"
	FixIndicator   = "✓"
)

// Semantic pterm styles
var (
	TitleStyle   = pterm.NewStyle(pterm.Bold)
	WarningStyle = pterm.NewStyle(pterm.FgYellow, pterm.Bold)
	SuccessStyle = pterm.NewStyle(pterm.FgGreen)
	MutedStyle   = pterm.NewStyle(pterm.FgGray)
)

// TerminalRenderer renders reports with rich terminal output
type TerminalRenderer struct {
	width int
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{width: 80}
}

// SetWidth updates the terminal width for rendering
func (r *TerminalRenderer) SetWidth(width int) {
	r.width = width
}

// RenderIssues renders the validator's issue list
func (r *TerminalRenderer) RenderIssues(issues []string) string {
	if len(issues) == 0 {
		return SuccessStyle.Sprint("No issues found! Config is valid.")
	}

	var result strings.Builder
	result.WriteString(WarningStyle.Sprint("Issues found:") + "\n")
	for _, issue := range issues {
		result.WriteString(fmt.Sprintf("  %s %s\n", IssueIndicator, issue))
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderFixes renders the list of fixes that were applied
func (r *TerminalRenderer) RenderFixes(fixes []string) string {
	if len(fixes) == 0 {
		return MutedStyle.Sprint("No fixes applied")
	}

	var result strings.Builder
	result.WriteString(SuccessStyle.Sprint("Fixes applied:") + "\n")
	for _, fix := range fixes {
		result.WriteString(fmt.Sprintf("  %s %s\n", FixIndicator, fix))
	}

	return strings.TrimRight(result.String(), "\n")
}

// RenderBackup renders the backup notice
func (r *TerminalRenderer) RenderBackup(path string) string {
	return MutedStyle.Sprint("Backup created: ") + path
}

// RenderNormalized renders the normalize command's closing summary
func (r *TerminalRenderer) RenderNormalized(configPath, backupPath string) string {
	var result strings.Builder
	result.WriteString(SuccessStyle.Sprint("Config normalized!") + "\n")
	result.WriteString(MutedStyle.Sprint("Your repository configurations have been preserved;") + "\n")
	result.WriteString(MutedStyle.Sprint("comments and formatting now match the template."))
	if backupPath != "" {
		result.WriteString("\n" + r.RenderBackup(backupPath))
	}
	return result.String()
}
