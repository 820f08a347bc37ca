package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/wtconf/cmd/wtconf"
	"github.com/arthur-debert/wtconf/pkg/output/styles"
)

func main() {
	rootCmd := wtconf.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))

		os.Exit(1)
	}
}
