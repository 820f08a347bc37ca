package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedStylesLoad(t *testing.T) {
	require.NoError(t, LoadStylesFromData(embeddedStyles))

	for _, name := range []string{"Header", "Error", "Warning", "Success", "Info", "Muted", "FilePath"} {
		_, ok := StyleRegistry[name]
		assert.True(t, ok, "style %s should be registered", name)
	}
}

func TestGetStyleKnown(t *testing.T) {
	require.NoError(t, LoadStylesFromData(embeddedStyles))

	style := GetStyle("Error")
	assert.True(t, style.GetBold())
}

func TestGetStyleUnknown(t *testing.T) {
	// Unknown names render as plain text rather than crashing
	style := GetStyle("NoSuchStyle")
	assert.Equal(t, "plain", style.Render("plain"))
}

func TestLoadStylesFromDataMalformed(t *testing.T) {
	assert.Error(t, LoadStylesFromData([]byte("styles: [not a map")))
}

func TestInitDefaultStyles(t *testing.T) {
	initDefaultStyles()

	_, ok := StyleRegistry["Error"]
	assert.True(t, ok)

	// Restore the embedded styles for other tests
	require.NoError(t, LoadStylesFromData(embeddedStyles))
}
