package zshcfg

// Entry is a single keyed table assignment. Value is opaque to this package;
// pipe- or space-delimited sub-fields are preserved verbatim.
type Entry struct {
	Key   string
	Value string
}

// Values holds everything extracted from a user config in document order
type Values struct {
	// Scalars maps scalar setting names to their raw values. Only names
	// actually present in the document appear here.
	Scalars map[string]string

	// Mappings are the alias-table entries: shorthand -> canonical name
	Mappings []Entry

	// IDEConfigs, CIConfigs and Modules are the three keyed categories,
	// with keys already normalized to shorthand.
	IDEConfigs []Entry
	CIConfigs  []Entry
	Modules    []Entry
}

// Entries returns the extracted entries for the given keyed table
func (v Values) Entries(table string) []Entry {
	switch table {
	case TableMappings:
		return v.Mappings
	case TableIDEConfigs:
		return v.IDEConfigs
	case TableCIConfigs:
		return v.CIConfigs
	case TableModules:
		return v.Modules
	}
	return nil
}

// Extract scans a document and collects scalar settings, alias-table entries
// and keyed entries. It is a pure function of the input: absent patterns
// yield empty collections, and extraction never fails.
//
// Keys of the three keyed categories are resolved through the alias table
// during extraction, so canonical repository names come out as shorthand.
func Extract(doc Document) Values {
	values := Values{Scalars: make(map[string]string)}

	// First occurrence wins for each scalar
	for _, name := range ScalarNames {
		for _, line := range doc.Lines {
			if raw, ok := MatchScalar(name, line); ok {
				values.Scalars[name] = raw
				break
			}
		}
	}

	values.Mappings = collectEntries(doc, TableMappings)

	fullToShort := ReverseMap(values.Mappings)
	values.IDEConfigs = ResolveKeys(collectEntries(doc, TableIDEConfigs), fullToShort)
	values.CIConfigs = ResolveKeys(collectEntries(doc, TableCIConfigs), fullToShort)
	values.Modules = ResolveKeys(collectEntries(doc, TableModules), fullToShort)

	return values
}

// collectEntries gathers all assignments for a table in document order
func collectEntries(doc Document, table string) []Entry {
	var entries []Entry
	for _, line := range doc.Lines {
		if key, value, ok := MatchAssignment(table, line); ok {
			entries = append(entries, Entry{Key: key, Value: value})
		}
	}
	return entries
}

// ReverseMap builds the canonical-name -> shorthand lookup from the alias
// table. When two entries map different canonical names to the same
// shorthand the later entry wins; duplicate shorthands carry no diagnostic.
func ReverseMap(mappings []Entry) map[string]string {
	fullToShort := make(map[string]string, len(mappings))
	for _, m := range mappings {
		fullToShort[m.Value] = m.Key
	}
	return fullToShort
}

// ResolveKeys rewrites entry keys that are canonical names into their
// shorthand form. Keys already in shorthand pass through unchanged, which
// makes resolution idempotent: shorthands are not in the map's domain.
func ResolveKeys(entries []Entry, fullToShort map[string]string) []Entry {
	if len(entries) == 0 {
		return entries
	}
	resolved := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if short, ok := fullToShort[e.Key]; ok {
			e.Key = short
		}
		resolved = append(resolved, e)
	}
	return resolved
}
