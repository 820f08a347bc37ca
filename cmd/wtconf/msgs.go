package wtconf

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort = "Worktree-tools config maintenance"
	MsgRootLong = `wtconf keeps a worktree-tools config.zsh healthy: it can rewrite the file
to match the canonical template while preserving your values, and it can
detect and repair common structural issues.`

	MsgNormalizeShort = "Rewrite a config to match the canonical template"
	MsgNormalizeLong = `Normalize rewrites the config file so its comments and layout match the
canonical template, while every one of your values is preserved. Repository
keys written with full repository names are rewritten to their shorthand.

A timestamped backup is created next to the config before it is overwritten.`
	MsgNormalizeExample = `  wtconf normalize ~/.config/worktree-tools/config.zsh`

	MsgValidateShort = "Check a config for structural issues"
	MsgValidateLong = `Validate checks the config file for structural issues: keyed arrays that
are assigned without a preceding declaration guard, and missing blank-line
separation between sections.

Without --fix, issues are reported and the exit code is non-zero. With
--fix, a timestamped backup is created and the repaired config is written.`
	MsgValidateExample = `  wtconf validate ~/.config/worktree-tools/config.zsh
  wtconf validate ~/.config/worktree-tools/config.zsh --fix`

	MsgConfigShort = "Print the effective tool configuration"
	MsgConfigLong  = `Config prints the effective wtconf configuration as TOML, after merging
defaults, the user config file and WTCONF_ environment variables.`

	MsgGuideShort = "Display documentation topics"
	MsgGuideLong  = "Display a documentation topic, or list all available topics."

	MsgCompletionShort = "Generate shell completion script"

	MsgManShort = "Generate man page"

	// Status messages
	MsgValidating      = "Validating config..."
	MsgNoIssues        = "No issues found! Config is valid."
	MsgFixHint         = "Run with --fix to automatically fix these issues"
	MsgConfigFixed     = "Config fixed!"
	MsgNormalizing     = "Normalizing config to match template..."
	MsgTemplateSource  = "Template: %s\n"
	MsgEmbeddedSource  = "embedded"
	MsgAvailableGuides = "Available topics:"

	// Error messages
	MsgErrLoadConfig   = "failed to load tool configuration: %w"
	MsgErrValidation   = "validation failed: %d issue(s) found"
	MsgErrUnknownTopic = "unknown topic %q"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagFix      = "Automatically fix the issues found"
	MsgFlagTemplate = "Path to the template config (overrides discovery)"
)
