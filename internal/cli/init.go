package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/docgate/internal/configloader"
	"github.com/yaklabco/docgate/internal/logging"
	"github.com/yaklabco/docgate/pkg/config"
	"github.com/yaklabco/docgate/pkg/fsutil"
)

// initFlags holds the flags for the init command.
type initFlags struct {
	force  bool
	output string
}

func newInitCommand() *cobra.Command {
	flags := &initFlags{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a docgate configuration file",
		Long: `Create a commented ` + configloader.ProjectConfigFiles[0] + ` file holding the default
settings. The checks are fixed; the file only controls how reports are
presented.

An existing file is never replaced silently. With --force the previous
file is kept as a ` + fsutil.BackupSuffix + ` sidecar before the new one is written.
On a terminal, docgate asks before overwriting.`,
		Example: `  docgate init
  docgate init --output docs/.docgate.yml
  docgate init --force`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.force, "force", "f", false, "overwrite an existing configuration file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", configloader.ProjectConfigFiles[0],
		"output file path")

	return cmd
}

func runInit(cmd *cobra.Command, flags *initFlags) error {
	ctx := cmd.Context()
	logger := interactiveLogger(cmd)
	path := flags.output

	exists, err := fsutil.Exists(path)
	if err != nil {
		return fmt.Errorf("check %s: %w", path, err)
	}

	if exists && !flags.force {
		confirmed, err := confirmOverwrite(cmd, path)
		if err != nil {
			return err
		}
		if !confirmed {
			return fmt.Errorf("%w: file %q already exists; use --force to overwrite", ErrUsage, path)
		}
	}

	if exists {
		backup, err := fsutil.CreateBackup(ctx, path)
		if err != nil {
			return fmt.Errorf("back up %s: %w", path, err)
		}
		if backup != "" {
			logger.Info("saved previous configuration", logging.FieldPath, backup)
		}
	}

	written, err := fsutil.WriteAtomicIfChanged(ctx, path, config.GenerateTemplate(), fsutil.DefaultFileMode)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if !written {
		logger.Info("configuration already up to date", logging.FieldPath, path)
		return nil
	}

	logger.Info("created configuration file", logging.FieldPath, path)
	logger.Info("run 'docgate rules' to see the checks it applies to")

	return nil
}

// confirmOverwrite asks before replacing path. It only prompts when input
// is an interactive terminal and otherwise declines.
func confirmOverwrite(cmd *cobra.Command, path string) (bool, error) {
	in, ok := cmd.InOrStdin().(*os.File)
	if !ok || !term.IsTerminal(int(in.Fd())) {
		return false, nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s already exists. Overwrite? [y/N] ", path)
	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("read answer: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// interactiveLogger returns the human-facing logger bound to the
// command's output stream.
func interactiveLogger(cmd *cobra.Command) *log.Logger {
	logger := logging.NewInteractive()
	logger.SetOutput(cmd.OutOrStdout())
	return logger
}
