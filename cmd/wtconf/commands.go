package wtconf

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/wtconf/internal/version"
	"github.com/arthur-debert/wtconf/pkg/config"
	"github.com/arthur-debert/wtconf/pkg/fileio"
	"github.com/arthur-debert/wtconf/pkg/logging"
	"github.com/arthur-debert/wtconf/pkg/normalize"
	"github.com/arthur-debert/wtconf/pkg/output/styles"
	"github.com/arthur-debert/wtconf/pkg/paths"
	"github.com/arthur-debert/wtconf/pkg/style"
	"github.com/arthur-debert/wtconf/pkg/validate"
	"github.com/arthur-debert/wtconf/pkg/zshcfg"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	var verbosity int

	rootCmd := &cobra.Command{
		Use:     "wtconf",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: show help but report incorrect usage
			_ = cmd.Help()
			return fmt.Errorf("no command specified")
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", MsgFlagVerbose)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})

	rootCmd.AddCommand(newNormalizeCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newGuideCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	return rootCmd
}

// loadToolConfig loads the layered tool configuration and applies the
// configured color mode before any rendering happens.
func loadToolConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf(MsgErrLoadConfig, err)
	}
	styles.ApplyColorMode(cfg.Output.Color)
	return cfg, nil
}

// resolveTemplate returns the canonical template document and a printable
// description of where it came from. Discovery failures fall back to the
// embedded copy; an explicit override that does not exist is an error.
func resolveTemplate(cfg *config.Config, override string) (zshcfg.Document, string, error) {
	if override == "" {
		override = cfg.Template.Path
	}

	path, err := paths.FindTemplate(override)
	if err != nil {
		return zshcfg.Document{}, "", err
	}
	if path == "" {
		return normalize.EmbeddedTemplate(), MsgEmbeddedSource, nil
	}

	tpl, err := fileio.ReadDocument(path)
	if err != nil {
		return zshcfg.Document{}, "", err
	}
	return tpl, path, nil
}

func newNormalizeCmd() *cobra.Command {
	var templatePath string

	cmd := &cobra.Command{
		Use:     "normalize <config-file>",
		Short:   MsgNormalizeShort,
		Long:    MsgNormalizeLong,
		Example: MsgNormalizeExample,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadToolConfig()
			if err != nil {
				return err
			}

			configPath := args[0]

			user, err := fileio.ReadDocument(configPath)
			if err != nil {
				return err
			}

			template, source, err := resolveTemplate(cfg, templatePath)
			if err != nil {
				return err
			}

			log.Info().
				Str("config", configPath).
				Str("template", source).
				Msg("Normalizing config")

			fmt.Println(MsgNormalizing)
			fmt.Printf(MsgTemplateSource, source)

			var backupPath string
			if cfg.Backup.Enabled {
				backupPath, err = fileio.CreateBackup(configPath, "normalized")
				if err != nil {
					return err
				}
			}

			merged := normalize.Merge(user, template)
			if err := fileio.WriteDocument(configPath, merged); err != nil {
				return err
			}

			renderer := style.NewTerminalRenderer()
			fmt.Println(renderer.RenderNormalized(configPath, backupPath))

			return nil
		},
	}

	cmd.Flags().StringVarP(&templatePath, "template", "t", "", MsgFlagTemplate)

	return cmd
}

func newValidateCmd() *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:     "validate <config-file>",
		Short:   MsgValidateShort,
		Long:    MsgValidateLong,
		Example: MsgValidateExample,
		Args:    cobra.ExactArgs(1),
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadToolConfig()
			if err != nil {
				return err
			}

			configPath := args[0]

			doc, err := fileio.ReadDocument(configPath)
			if err != nil {
				return err
			}

			log.Info().Str("config", configPath).Bool("fix", fix).Msg("Validating config")
			fmt.Println(MsgValidating)

			fixed, report := validate.ValidateAndFix(doc)

			renderer := style.NewTerminalRenderer()
			if !report.HadIssues {
				fmt.Println(MsgNoIssues)
				return nil
			}

			fmt.Println(renderer.RenderIssues(report.Issues))

			if !fix {
				fmt.Println(MsgFixHint)
				return fmt.Errorf(MsgErrValidation, len(report.Issues))
			}

			if cfg.Backup.Enabled {
				backupPath, err := fileio.CreateBackup(configPath, "validated")
				if err != nil {
					return err
				}
				fmt.Println(renderer.RenderBackup(backupPath))
			}

			if err := fileio.WriteDocument(configPath, fixed); err != nil {
				return err
			}

			fmt.Println(renderer.RenderFixes(report.Fixes))
			fmt.Println(MsgConfigFixed)

			return nil
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, MsgFlagFix)

	return cmd
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "config",
		Short:   MsgConfigShort,
		Long:    MsgConfigLong,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadToolConfig()
			if err != nil {
				return err
			}

			out, err := cfg.TOML()
			if err != nil {
				return err
			}

			fmt.Print(out)
			return nil
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			}
			return nil
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		Hidden:  true,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			header := &doc.GenManHeader{
				Title:   "WTCONF",
				Section: "1",
			}
			return doc.GenManTree(cmd.Root(), header, "/tmp")
		},
	}
}
