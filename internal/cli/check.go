package cli

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yaklabco/docgate/internal/configloader"
	"github.com/yaklabco/docgate/internal/logging"
	"github.com/yaklabco/docgate/pkg/config"
	"github.com/yaklabco/docgate/pkg/document"
	"github.com/yaklabco/docgate/pkg/fsutil"
	"github.com/yaklabco/docgate/pkg/lint"
	"github.com/yaklabco/docgate/pkg/lint/refs"
	"github.com/yaklabco/docgate/pkg/reporter"
)

const checkUsageLine = "Usage: docgate check <file-path>"

// checkFlags holds the check command's own flags.
type checkFlags struct {
	format         string
	suggestions    bool
	resolveAnchors bool
	compact        bool
}

func newCheckCommand(global *globalFlags) *cobra.Command {
	flags := &checkFlags{}

	cmd := &cobra.Command{
		Use:   "check <file-path>",
		Short: "Validate a Markdown document",
		Long: `Validate a Markdown document and print a sectioned report.

Four checks run over the document:
  - heading levels must not skip (error)
  - unordered lists must use hyphens (warning)
  - fenced code blocks must declare a language (warning)
  - in-document anchor links are listed for review (info)

The command exits 1 when any error is found and 0 otherwise.`,
		Example: `  docgate check README.md
  docgate check --suggestions --resolve-anchors docs/guide.md
  docgate check --format json CHANGELOG.md`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				fmt.Fprintln(cmd.ErrOrStderr(), checkUsageLine)
				return fmt.Errorf("%w: %w: expected 1 argument, got %d", ErrReported, ErrUsage, len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args[0], global, flags)
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "", "output format: text, json")
	cmd.Flags().BoolVar(&flags.suggestions, "suggestions", false, "show a hint under findings that carry one")
	cmd.Flags().BoolVar(&flags.resolveAnchors, "resolve-anchors", false,
		"mark anchor links that match no heading or HTML anchor")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "emit single-line JSON")

	return cmd
}

func runCheck(cmd *cobra.Command, path string, global *globalFlags, flags *checkFlags) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.FromContext(ctx)

	flagLayer, err := flags.layer(cmd, global)
	if err != nil {
		return err
	}

	loaded, err := configloader.Load(ctx, configloader.LoadOptions{
		ExplicitPath: global.configPath,
		Flags:        flagLayer,
	})
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	for _, warning := range loaded.Warnings {
		logger.Warn(warning)
	}
	cfg := loaded.Config

	content, _, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		if errors.Is(err, fsutil.ErrNotFound) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: File does not exist: %s\n", path)
			return fmt.Errorf("%w: %w", ErrReported, err)
		}
		return fmt.Errorf("read document: %w", err)
	}

	doc := document.FromBytes(filepath.Base(path), content)
	report := lint.Validate(doc)

	logger.Debug("validated document",
		logging.FieldPath, path,
		logging.FieldLines, doc.Len(),
		logging.FieldErrors, report.Total.Errors,
		logging.FieldWarnings, report.Total.Warnings,
	)

	opts := reporter.Options{
		Writer:      cmd.OutOrStdout(),
		Format:      cfg.Format,
		Color:       cfg.Color,
		Suggestions: cfg.Suggestions,
		Compact:     flags.compact,
	}
	if cfg.ResolveAnchors {
		anchors := refs.Collect(doc)
		logger.Debug("collected anchors", logging.FieldAnchors, anchors.Count())
		opts.Anchors = anchors
	}

	rep, err := reporter.New(opts)
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}
	if err := rep.Report(ctx, report); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if report.Total.Failed() {
		return ErrValidationFailed
	}
	return nil
}

// layer builds the flag configuration layer from the flags the user set,
// so unset flags never mask config files or the environment.
func (f *checkFlags) layer(cmd *cobra.Command, global *globalFlags) (*configloader.Layer, error) {
	layer := &configloader.Layer{Source: configloader.SourceFlags}
	changed := cmd.Flags().Changed

	if changed("format") {
		format, err := config.ParseFormat(f.format)
		if err != nil {
			return nil, fmt.Errorf("%w: --format: %w", ErrUsage, err)
		}
		value := string(format)
		layer.Format = &value
	}
	if changed("color") {
		mode, err := global.colorMode()
		if err != nil {
			return nil, err
		}
		value := string(mode)
		layer.Color = &value
	}
	if changed("suggestions") {
		layer.Suggestions = &f.suggestions
	}
	if changed("resolve-anchors") {
		layer.ResolveAnchors = &f.resolveAnchors
	}

	return layer, nil
}
