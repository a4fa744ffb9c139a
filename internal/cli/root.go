// Package cli provides the Cobra command structure for docgate.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/yaklabco/docgate/internal/logging"
	"github.com/yaklabco/docgate/pkg/config"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// globalFlags are the persistent flags shared by every subcommand.
type globalFlags struct {
	debug      bool
	configPath string
	color      string
}

// NewRootCommand creates the root docgate command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	global := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "docgate",
		Short: "A structural gate for Markdown documents",
		Long: `docgate checks a Markdown document for structural problems before it
lands: skipped heading levels, asterisk list markers and fenced code
blocks without a language. In-document anchor links are listed for review.

The check command exits non-zero only when errors are found, so it can
gate a commit hook or CI job. Warnings are reported but never fail a run.`,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			if global.debug {
				logging.SetLevel("debug")
			}
			cmd.SetContext(logging.WithLogger(cmd.Context(), logging.Default()))
		},
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: unknown command %q for \"docgate\"", ErrUsage, args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVar(&global.debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&global.configPath, "config", "", "path to config file")
	rootCmd.PersistentFlags().StringVar(&global.color, "color", string(config.ColorAuto),
		"colorize output: auto, always, never")

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	})

	rootCmd.AddCommand(newCheckCommand(global))
	rootCmd.AddCommand(newRulesCommand(global))
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	NewHelpFormatter(config.ColorAuto, os.Stdout).ApplyToCommand(rootCmd)

	return rootCmd
}

// colorMode parses the --color flag. An invalid value is a usage error.
func (g *globalFlags) colorMode() (config.ColorMode, error) {
	mode, err := config.ParseColorMode(g.color)
	if err != nil {
		return "", fmt.Errorf("%w: --color: %w", ErrUsage, err)
	}
	return mode, nil
}

// noArgs rejects positional arguments as a usage error.
func noArgs(cmd *cobra.Command, args []string) error {
	if err := cobra.NoArgs(cmd, args); err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}
	return nil
}
