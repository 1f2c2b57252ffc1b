package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	html2jpg "github.com/alnah/go-html2jpg"
	"github.com/alnah/go-html2jpg/internal/config"
)

// runConvert orchestrates discovery, batch rendering, and reporting.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, envCfg *envConfig, pool Pool, env *Environment) error {
	start := env.Now()

	// Load configuration: flag > environment > defaults
	cfg := config.DefaultConfig()
	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}
	if configName != "" {
		var err error
		cfg, err = config.LoadConfig(configName)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Environment overrides config file; CLI flags win over both
	applyEnvOverrides(cfg, envCfg)
	mergeFlags(flags, cfg)

	// Resolve input path
	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}

	// Resolve output directory
	outputDir := resolveOutputDir(flags.output, cfg)

	// Discover files to convert
	files, err := discoverFiles(inputPath, outputDir)
	if err != nil {
		return err
	}

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Found %d HTML file(s) to convert...\n", len(files))
	}

	params := buildRenderParams(cfg)

	// Convert files, fail-fast
	results := convertBatch(ctx, pool, files, params, env, flags.common.quiet)

	printResults(results, flags.common.quiet, flags.common.verbose, env)

	if idx, failed := firstFailure(results); failed {
		r := results[idx]
		return fmt.Errorf("converting %s: %w", filepath.Base(r.InputPath), r.Err)
	}

	// A cancelled parent context (e.g. SIGINT) aborts the batch without
	// recording a per-file failure; an interrupted run must not exit 0.
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("conversion interrupted: %w", err)
	}

	if flags.common.verbose {
		fmt.Fprintf(env.Stdout, "Total: %v\n", env.Now().Sub(start).Round(time.Millisecond))
	}
	if !flags.common.quiet {
		fmt.Fprintln(env.Stdout, "All conversions completed successfully!")
	}
	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.render.width > 0 {
		cfg.Viewport.Width = flags.render.width
	}
	if flags.render.height > 0 {
		cfg.Viewport.Height = flags.render.height
	}
	if flags.render.quality > 0 {
		cfg.Render.Quality = flags.render.quality
	}
}

// resolveInputPath determines the input path from args or config.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if cfg.Input.DefaultDir != "" {
		return cfg.Input.DefaultDir, nil
	}
	return "", ErrNoInput
}

// resolveOutputDir determines the output directory from flag or config.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// buildRenderParams converts resolved config into per-render parameters.
// Unset dimensions fall back to the library defaults so a config file
// can pin just the width or just the height.
func buildRenderParams(cfg *config.Config) *renderParams {
	p := &renderParams{quality: cfg.Render.Quality}

	if cfg.Viewport.Width > 0 || cfg.Viewport.Height > 0 {
		v := html2jpg.DefaultViewport()
		if cfg.Viewport.Width > 0 {
			v.Width = cfg.Viewport.Width
		}
		if cfg.Viewport.Height > 0 {
			v.Height = cfg.Viewport.Height
		}
		p.viewport = &v
	}

	return p
}
