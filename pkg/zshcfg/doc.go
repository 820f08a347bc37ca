// Package zshcfg implements the line-oriented grammar of the worktree-tools
// zsh configuration file.
//
// The grammar is intentionally minimal: scalar assignments (NAME=value),
// keyed associative-array assignments (TABLE[key]="value"), declaration
// guards, and comment-based section markers. Documents are never parsed
// into a syntax tree; all recognition is per-line pattern matching, and
// all transformations preserve lines verbatim unless a rule says otherwise.
package zshcfg
