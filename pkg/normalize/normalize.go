// Package normalize rewrites a user config to match the canonical template's
// structure and comments while preserving every user value.
//
// The template drives the walk: its lines are copied verbatim except inside
// recognized sections, where the template's example content is suppressed and
// the user's extracted entries are spliced in, keys normalized to shorthand.
package normalize

import (
	"strings"

	"github.com/arthur-debert/wtconf/pkg/logging"
	"github.com/arthur-debert/wtconf/pkg/zshcfg"
	"github.com/rs/zerolog"
)

// Normalizer merges a user document into the canonical template
type Normalizer struct {
	values   zshcfg.Values
	template zshcfg.Document
	logger   zerolog.Logger
}

// New creates a Normalizer for the given user and template documents.
// User values are extracted once, up front.
func New(user, template zshcfg.Document) *Normalizer {
	return &Normalizer{
		values:   zshcfg.Extract(user),
		template: template,
		logger:   logging.GetLogger("normalize"),
	}
}

// Merge is a convenience wrapper around New(...).Normalize()
func Merge(user, template zshcfg.Document) zshcfg.Document {
	return New(user, template).Normalize()
}

// Normalize walks the template with a forward-only cursor and returns the
// merged document. Every scalar, mapping and keyed entry extracted from the
// user document appears exactly once in the output, in extraction order;
// every template line outside a suppressed example block is copied verbatim.
func (n *Normalizer) Normalize() zshcfg.Document {
	n.logger.Debug().
		Int("mappings", len(n.values.Mappings)).
		Int("ide_configs", len(n.values.IDEConfigs)).
		Int("ci_configs", len(n.values.CIConfigs)).
		Int("modules", len(n.values.Modules)).
		Msg("Merging user values into template")

	w := &walker{values: n.values, lines: n.template.Lines}
	return zshcfg.Document{Lines: w.run()}
}

// walker is the merge state machine: a cursor over the template lines and
// an output buffer. Each splice method owns its consume-until rule.
type walker struct {
	values zshcfg.Values
	lines  []string
	out    []string
	i      int
}

func (w *walker) run() []string {
	for w.i < len(w.lines) {
		line := w.substituteScalars(w.lines[w.i])

		switch {
		case zshcfg.IsMappingsGuard(line):
			w.spliceMappings(line)
		case strings.HasPrefix(line, zshcfg.HeaderIDEConfigs):
			w.spliceIDESection(line)
		case strings.HasPrefix(line, zshcfg.HeaderCIConfigs):
			w.spliceExampleSection(line, zshcfg.TableCIConfigs, zshcfg.IsCIExample)
		case strings.HasPrefix(line, zshcfg.HeaderModules):
			w.spliceExampleSection(line, zshcfg.TableModules, zshcfg.IsModuleExample)
		default:
			w.emit(line)
			w.i++
		}
	}
	return w.out
}

func (w *walker) emit(lines ...string) {
	w.out = append(w.out, lines...)
}

// substituteScalars replaces a template scalar assignment with the user's
// value. At most one substitution per line; setting names are mutually
// exclusive prefixes, so the first match is the only match.
func (w *walker) substituteScalars(line string) string {
	for _, name := range zshcfg.ScalarNames {
		value, ok := w.values.Scalars[name]
		if !ok {
			continue
		}
		if strings.HasPrefix(line, name+"=") {
			return name + "=" + value
		}
	}
	return line
}

// spliceMappings emits the declaration guard, the user's alias entries, and
// discards the template's example mappings up to the next section header.
func (w *walker) spliceMappings(guard string) {
	w.emit(guard)
	w.i++

	if len(w.values.Mappings) > 0 {
		w.emit("")
		for _, e := range w.values.Mappings {
			w.emit(zshcfg.Assignment(zshcfg.TableMappings, e.Key, e.Value))
		}
	}

	// Skip comments, examples and blanks; stop at the next section header
	// without consuming it.
	for w.i < len(w.lines) && !zshcfg.IsSectionHeader(w.lines[w.i]) {
		w.i++
	}
}

// spliceIDESection copies the section's explanatory comments, splices the
// user's IDE entries where the template's example assignments begin, and
// skips the contiguous example block.
func (w *walker) spliceIDESection(header string) {
	w.emit(header)
	w.i++

	for w.i < len(w.lines) && !zshcfg.IsExampleAssignment(zshcfg.TableIDEConfigs, w.lines[w.i]) {
		w.emit(w.lines[w.i])
		w.i++
	}

	if len(w.values.IDEConfigs) > 0 {
		w.emit("")
		for _, e := range w.values.IDEConfigs {
			w.emit(zshcfg.Assignment(zshcfg.TableIDEConfigs, e.Key, e.Value))
		}
		w.emit("")
	}

	for w.i < len(w.lines) && zshcfg.IsExampleAssignment(zshcfg.TableIDEConfigs, w.lines[w.i]) {
		w.i++
	}
}

// spliceExampleSection handles the CI-commands and modular-builds sections,
// which bracket their example assignments with per-platform comment lines.
func (w *walker) spliceExampleSection(header, table string, isExample func(string) bool) {
	w.emit(header)
	w.i++

	for w.i < len(w.lines) && !isExample(w.lines[w.i]) {
		w.emit(w.lines[w.i])
		w.i++
	}

	entries := w.values.Entries(table)
	if len(entries) > 0 {
		w.emit("")
		for _, e := range entries {
			w.emit(zshcfg.Assignment(table, e.Key, e.Value))
		}
		w.emit("")
	}

	// Skip example comment and assignment lines. Stop at a section header
	// comment, consuming at most one trailing blank line directly before it.
	for w.i < len(w.lines) {
		line := w.lines[w.i]
		if isExample(line) {
			w.i++
			continue
		}
		if strings.HasPrefix(line, "# ===") {
			break
		}
		if strings.TrimSpace(line) == "" && w.i+1 < len(w.lines) && strings.HasPrefix(w.lines[w.i+1], "# ===") {
			w.i++
			break
		}
		break
	}
}
