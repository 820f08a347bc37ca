package wtconf

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

//go:embed docs/*.md
var guideFS embed.FS

func newGuideCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "guide [topic]",
		Short:     MsgGuideShort,
		Long:      MsgGuideLong,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: guideTopics(),
		GroupID:   "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Println(MsgAvailableGuides)
				for _, topic := range guideTopics() {
					fmt.Printf("  %s\n", topic)
				}
				return nil
			}

			out, err := renderGuide(args[0])
			if err != nil {
				return err
			}
			fmt.Print(out)
			return nil
		},
	}
}

// guideTopics lists the embedded topic names, without the .md suffix.
func guideTopics() []string {
	entries, err := fs.ReadDir(guideFS, "docs")
	if err != nil {
		return nil
	}

	var topics []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".md") {
			topics = append(topics, strings.TrimSuffix(name, ".md"))
		}
	}
	sort.Strings(topics)
	return topics
}

// renderGuide returns the topic rendered for the terminal. Non-terminal
// output and rendering failures fall back to the raw markdown.
func renderGuide(topic string) (string, error) {
	data, err := guideFS.ReadFile("docs/" + topic + ".md")
	if err != nil {
		return "", fmt.Errorf(MsgErrUnknownTopic, topic)
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return string(data), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(100),
	)
	if err != nil {
		return string(data), nil
	}

	out, err := renderer.Render(string(data))
	if err != nil {
		return string(data), nil
	}
	return out, nil
}
