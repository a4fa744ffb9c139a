package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/docgate/internal/logging"
)

func newVersionCommand(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print the version, commit hash, and build date of docgate.`,
		Args:  noArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			interactiveLogger(cmd).Info("docgate",
				logging.FieldVersion, info.Version,
				logging.FieldCommit, info.Commit,
				logging.FieldBuilt, info.Date,
			)
		},
	}
}
