package wtconf

import (
	"bytes"
	"io"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolateEnv points the XDG directories at temp dirs so tests never pick
// up the host's tool configuration or write into its state directory.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)
}

func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	return cmd.Execute()
}

func TestRootNoArgsFails(t *testing.T) {
	isolateEnv(t)

	err := runCommand(t)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}

func TestRootHelp(t *testing.T) {
	isolateEnv(t)

	cmd := NewRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "normalize")
	assert.Contains(t, buf.String(), "validate")
}

func TestRootVersion(t *testing.T) {
	isolateEnv(t)

	cmd := NewRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"--version"})

	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "dev")
}

func TestConfigCommand(t *testing.T) {
	isolateEnv(t)

	err := runCommand(t, "config")

	require.NoError(t, err)
}

func TestGuideListsTopics(t *testing.T) {
	isolateEnv(t)

	topics := guideTopics()

	assert.Contains(t, topics, "normalize")
	assert.Contains(t, topics, "validate")
	assert.Contains(t, topics, "configuration")

	require.NoError(t, runCommand(t, "guide"))
}

func TestGuideUnknownTopic(t *testing.T) {
	isolateEnv(t)

	err := runCommand(t, "guide", "no-such-topic")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown topic")
}
