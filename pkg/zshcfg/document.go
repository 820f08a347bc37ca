package zshcfg

import "strings"

// Document is an ordered sequence of configuration lines. Lines are never
// reordered by any operation; they are only copied, suppressed, or inserted.
type Document struct {
	Lines []string
}

// Parse splits raw config text into a Document
func Parse(text string) Document {
	return Document{Lines: strings.Split(text, "\n")}
}

// String reassembles the document into config text
func (d Document) String() string {
	return strings.Join(d.Lines, "\n")
}

// Len returns the number of lines in the document
func (d Document) Len() int {
	return len(d.Lines)
}
