package cli

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/yaklabco/docgate/internal/ui/pretty"
	"github.com/yaklabco/docgate/pkg/config"
)

// HelpFormatter renders cobra help and usage text with the report styles.
type HelpFormatter struct {
	styles *pretty.Styles
}

// NewHelpFormatter creates a help formatter for the given color mode and
// destination.
func NewHelpFormatter(mode config.ColorMode, writer io.Writer) *HelpFormatter {
	return &HelpFormatter{
		styles: pretty.NewStyles(pretty.IsColorEnabled(mode, writer)),
	}
}

// templateFuncs returns the functions available to the help templates.
func (h *HelpFormatter) templateFuncs() template.FuncMap {
	styles := h.styles
	return template.FuncMap{
		"styleCommand":            func(s string) string { return styles.Paint(styles.Title, s) },
		"styleHeading":            func(s string) string { return styles.Paint(styles.Section, s) },
		"styleSubcommand":         func(s string) string { return styles.Paint(styles.AllClear, s) },
		"styleDim":                func(s string) string { return styles.Paint(styles.Dim, s) },
		"styleFlagsUsage":         h.styleFlagsUsage,
		"rpad":                    rpad,
		"trimTrailingWhitespaces": trimTrailingWhitespaces,
	}
}

const usageTemplate = `{{ styleHeading "Usage:" }}{{if .Runnable}}
  {{ styleCommand .UseLine }}{{end}}{{if .HasAvailableSubCommands}}
  {{ styleCommand .CommandPath }} [command]{{end}}

{{- if .HasExample}}

{{ styleHeading "Examples:" }}
{{ styleDim .Example }}
{{- end}}

{{- if .HasAvailableSubCommands}}

{{ styleHeading "Available Commands:" }}{{range .Commands}}{{if (or .IsAvailableCommand (eq .Name "help"))}}
  {{ styleSubcommand (rpad .Name .NamePadding) }} {{ .Short }}{{end}}{{end}}
{{- end}}

{{- if .HasAvailableLocalFlags}}

{{ styleHeading "Flags:" }}
{{ styleFlagsUsage .LocalFlags }}
{{- end}}

{{- if .HasAvailableInheritedFlags}}

{{ styleHeading "Global Flags:" }}
{{ styleFlagsUsage .InheritedFlags }}
{{- end}}

{{- if .HasAvailableSubCommands}}

Use "{{ styleCommand (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end}}
`

const helpTemplate = `{{with (or .Long .Short)}}{{ . | trimTrailingWhitespaces }}

{{end}}` + usageTemplate

// styleFlagsUsage colors the flag names in a pflag usage block, leaving
// the layout untouched.
func (h *HelpFormatter) styleFlagsUsage(flags interface{ FlagUsages() string }) string {
	usages := strings.TrimSuffix(flags.FlagUsages(), "\n")
	if usages == "" || !h.styles.Enabled() {
		return usages
	}

	lines := strings.Split(usages, "\n")
	for i, line := range lines {
		lines[i] = h.styleFlagLine(line)
	}
	return strings.Join(lines, "\n")
}

// styleFlagLine styles the "-f, --flag type" head of one usage line.
// The description starts after the first run of two or more spaces.
func (h *HelpFormatter) styleFlagLine(line string) string {
	trimmed := strings.TrimLeft(line, " ")
	indent := line[:len(line)-len(trimmed)]

	head, desc, found := strings.Cut(trimmed, "  ")
	if !found || head == "" {
		return line
	}
	gap := desc[:len(desc)-len(strings.TrimLeft(desc, " "))]

	tokens := strings.Fields(head)
	for i, token := range tokens {
		switch {
		case strings.HasPrefix(token, "-"):
			name, comma := strings.CutSuffix(token, ",")
			tokens[i] = h.styles.Paint(h.styles.Info, name)
			if comma {
				tokens[i] += ","
			}
		default:
			tokens[i] = h.styles.Paint(h.styles.Dim, token)
		}
	}

	return indent + strings.Join(tokens, " ") + "  " + gap + strings.TrimLeft(desc, " ")
}

// ApplyToCommand installs the styled templates on cmd. Subcommands inherit
// them through cobra's parent lookup.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	funcs := h.templateFuncs()

	usage := template.Must(template.New("usage").Funcs(funcs).Parse(usageTemplate))
	help := template.Must(template.New("help").Funcs(funcs).Parse(helpTemplate))

	cmd.SetUsageFunc(func(command *cobra.Command) error {
		if err := usage.Execute(command.OutOrStderr(), command); err != nil {
			return fmt.Errorf("render usage: %w", err)
		}
		return nil
	})

	cmd.SetHelpFunc(func(command *cobra.Command, _ []string) {
		if err := help.Execute(command.OutOrStdout(), command); err != nil {
			command.PrintErrln(err)
		}
	})
}

// rpad pads str with spaces to the given width.
func rpad(str string, padding int) string {
	if len(str) >= padding {
		return str
	}
	return str + strings.Repeat(" ", padding-len(str))
}

func trimTrailingWhitespaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}
