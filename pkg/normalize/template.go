package normalize

import (
	_ "embed"

	"github.com/arthur-debert/wtconf/pkg/zshcfg"
)

//go:embed embedded/config.zsh.example
var embeddedTemplate string

// EmbeddedTemplate returns the canonical template compiled into the binary.
// It is the fallback when no template file is found next to the install.
func EmbeddedTemplate() zshcfg.Document {
	return zshcfg.Parse(embeddedTemplate)
}
