package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/docgate/internal/ui/pretty"
	"github.com/yaklabco/docgate/pkg/config"
	"github.com/yaklabco/docgate/pkg/lint"
)

type rulesFlags struct {
	format string
}

// sectionInfo represents a check in JSON output.
type sectionInfo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
}

func newRulesCommand(global *globalFlags) *cobra.Command {
	flags := &rulesFlags{}

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the checks docgate runs",
		Long: `List the fixed set of checks with their report section, severity and
description, in the order they appear in a report.`,
		Args: noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := config.ParseFormat(flags.format)
			if err != nil {
				return fmt.Errorf("%w: --format: %w", ErrUsage, err)
			}

			sections := lint.Sections()
			out := cmd.OutOrStdout()

			if format == config.FormatJSON {
				return outputSectionsJSON(out, sections)
			}

			mode, err := global.colorMode()
			if err != nil {
				return err
			}
			styles := pretty.NewStyles(pretty.IsColorEnabled(mode, out))
			table := pretty.NewTableFormatter(styles, terminalWidth(out))

			if _, err := io.WriteString(out, table.FormatSections(sections)); err != nil {
				return fmt.Errorf("write rules: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", string(config.FormatText), "output format: text, json")

	return cmd
}

// outputSectionsJSON writes the checks as a JSON array.
func outputSectionsJSON(w io.Writer, sections []lint.Section) error {
	infos := make([]sectionInfo, 0, len(sections))
	for _, section := range sections {
		infos = append(infos, sectionInfo{
			ID:          string(section.ID),
			Title:       section.Title,
			Description: section.Description,
			Severity:    string(section.Severity),
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(infos); err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	return nil
}

// terminalWidth returns the width of w when it is a terminal, or 0 to let
// the table pick its default.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
