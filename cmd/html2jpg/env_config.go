package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-html2jpg/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string        // HTML2JPG_CONFIG: config file path
	InputDir   string        // HTML2JPG_INPUT_DIR: default input directory
	OutputDir  string        // HTML2JPG_OUTPUT_DIR: default output directory
	Timeout    time.Duration // HTML2JPG_TIMEOUT: per-file render timeout
	Width      int           // HTML2JPG_WIDTH: viewport width
	Height     int           // HTML2JPG_HEIGHT: viewport height
	Quality    int           // HTML2JPG_QUALITY: JPEG quality
	Workers    int           // HTML2JPG_WORKERS: parallel workers
}

// knownEnvVars lists valid HTML2JPG_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"HTML2JPG_CONFIG":     true,
	"HTML2JPG_INPUT_DIR":  true,
	"HTML2JPG_OUTPUT_DIR": true,
	"HTML2JPG_TIMEOUT":    true,
	"HTML2JPG_WIDTH":      true,
	"HTML2JPG_HEIGHT":     true,
	"HTML2JPG_QUALITY":    true,
	"HTML2JPG_WORKERS":    true,
	"HTML2JPG_CONTAINER":  true, // read by doctor
}

// loadEnvConfig reads configuration from environment variables.
// Unparsable values are skipped and reported as warnings.
func loadEnvConfig() (*envConfig, []string) {
	var warnings []string

	cfg := &envConfig{
		ConfigPath: os.Getenv("HTML2JPG_CONFIG"),
		InputDir:   os.Getenv("HTML2JPG_INPUT_DIR"),
		OutputDir:  os.Getenv("HTML2JPG_OUTPUT_DIR"),
	}

	if v := os.Getenv("HTML2JPG_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			warnings = append(warnings, fmt.Sprintf("Warning: ignoring HTML2JPG_TIMEOUT=%q (expected a positive duration like 30s)", v))
		} else {
			cfg.Timeout = d
		}
	}

	cfg.Width = parseEnvInt("HTML2JPG_WIDTH", &warnings)
	cfg.Height = parseEnvInt("HTML2JPG_HEIGHT", &warnings)
	cfg.Quality = parseEnvInt("HTML2JPG_QUALITY", &warnings)
	cfg.Workers = parseEnvInt("HTML2JPG_WORKERS", &warnings)

	return cfg, warnings
}

// parseEnvInt reads a positive integer env var, 0 when unset or invalid.
func parseEnvInt(name string, warnings *[]string) int {
	v := os.Getenv(name)
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		*warnings = append(*warnings, fmt.Sprintf("Warning: ignoring %s=%q (expected a positive integer)", name, v))
		return 0
	}
	return n
}

// applyEnvOverrides layers environment values over a loaded config.
// CLI flags are merged afterwards and win over both.
func applyEnvOverrides(cfg *config.Config, envCfg *envConfig) {
	if envCfg.InputDir != "" {
		cfg.Input.DefaultDir = envCfg.InputDir
	}
	if envCfg.OutputDir != "" {
		cfg.Output.DefaultDir = envCfg.OutputDir
	}
	if envCfg.Width > 0 {
		cfg.Viewport.Width = envCfg.Width
	}
	if envCfg.Height > 0 {
		cfg.Viewport.Height = envCfg.Height
	}
	if envCfg.Quality > 0 {
		cfg.Render.Quality = envCfg.Quality
	}
}

// warnUnknownEnvVars reports HTML2JPG_* variables that are not recognized,
// catching typos like HTML2JPG_TIMEOUTS.
func warnUnknownEnvVars(w io.Writer) {
	for _, kv := range os.Environ() {
		name, _, ok := strings.Cut(kv, "=")
		if !ok || !strings.HasPrefix(name, "HTML2JPG_") {
			continue
		}
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "Warning: unknown environment variable %s\n", name)
		}
	}
}
