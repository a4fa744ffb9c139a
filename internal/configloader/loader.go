// Package configloader resolves the effective docgate configuration from
// defaults, config files, the environment and command-line flags.
package configloader

import (
	"context"
	"fmt"
	"os"

	"github.com/yaklabco/docgate/internal/logging"
	"github.com/yaklabco/docgate/pkg/config"
)

// LoadOptions controls configuration loading behavior.
type LoadOptions struct {
	// WorkingDir is the directory to search from for project config.
	// Defaults to the current working directory if empty.
	WorkingDir string

	// ExplicitPath is an explicit config file path (from --config).
	// When set, project config discovery is skipped.
	ExplicitPath string

	// IgnoreUserConfig skips loading user-level configuration.
	IgnoreUserConfig bool

	// IgnoreProjectConfig skips loading project-level configuration.
	IgnoreProjectConfig bool

	// IgnoreEnv skips loading environment variables.
	IgnoreEnv bool

	// Flags holds the options set explicitly on the command line.
	// They take highest precedence.
	Flags *Layer
}

// LoadResult contains the resolved configuration and metadata.
type LoadResult struct {
	// Config is the final merged configuration.
	Config *config.Config

	// Paths contains the discovered configuration file paths.
	Paths *ConfigPaths

	// LoadedFrom lists the files that were actually loaded (in order).
	LoadedFrom []string

	// Warnings contains non-fatal issues encountered during loading.
	Warnings []string
}

// Load resolves the final configuration by merging all sources.
// Precedence (highest to lowest):
//  1. Command-line flags (opts.Flags)
//  2. Environment variables (DOCGATE_*)
//  3. Explicit config file (opts.ExplicitPath), which replaces 4
//  4. Project config (.docgate.yml upward search)
//  5. User config ($XDG_CONFIG_HOME/docgate/config.yaml)
//  6. Defaults
//
// Every returned error matches ErrConfig.
func Load(ctx context.Context, opts LoadOptions) (*LoadResult, error) {
	logger := logging.FromContext(ctx)

	workDir := opts.WorkingDir
	if workDir == "" {
		var err error
		workDir, err = os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("%w: get working directory: %w", ErrConfig, err)
		}
	}

	paths, err := DiscoverPaths(ctx, workDir)
	if err != nil {
		return nil, fmt.Errorf("%w: discover paths: %w", ErrConfig, err)
	}
	paths.Explicit = opts.ExplicitPath

	result := &LoadResult{Paths: paths}
	cfg := config.NewConfig()

	var files []string
	if !opts.IgnoreUserConfig && paths.User != "" {
		files = append(files, paths.User)
	}
	switch {
	case opts.ExplicitPath != "":
		files = append(files, opts.ExplicitPath)
	case !opts.IgnoreProjectConfig && paths.Project != "":
		files = append(files, paths.Project)
	}

	for _, path := range files {
		layer, warnings, err := loadLayerFile(ctx, path)
		if err != nil {
			return nil, err
		}
		for _, w := range warnings {
			result.Warnings = append(result.Warnings, w.Error())
		}

		cfg, err = apply(cfg, layer)
		if err != nil {
			return nil, err
		}
		result.LoadedFrom = append(result.LoadedFrom, path)
		logger.Debug("loaded config file", logging.FieldPath, path)
	}

	if !opts.IgnoreEnv {
		envLayer, err := LoadFromEnv()
		if err != nil {
			return nil, err
		}
		if !envLayer.IsEmpty() {
			logger.Debug("applying environment overrides")
		}
		cfg, err = apply(cfg, envLayer)
		if err != nil {
			return nil, err
		}
	}

	if opts.Flags != nil {
		flags := *opts.Flags
		flags.Source = SourceFlags
		cfg, err = apply(cfg, &flags)
		if err != nil {
			return nil, err
		}
	}

	if err := Validate(cfg).Err(); err != nil {
		return nil, err
	}

	logger.Debug("resolved config",
		logging.FieldFormat, cfg.Format,
		logging.FieldColor, cfg.Color,
		logging.FieldSuggestions, cfg.Suggestions,
		logging.FieldResolveAnchors, cfg.ResolveAnchors,
	)

	result.Config = cfg
	return result, nil
}

// apply validates layer and merges it onto cfg.
func apply(cfg *config.Config, layer *Layer) (*config.Config, error) {
	if err := validateLayer(layer).Err(); err != nil {
		return nil, err
	}
	return merge(cfg, layer), nil
}
