// Package config loads CLI configuration from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-html2jpg/internal/fileutil"
	"github.com/alnah/go-html2jpg/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidField    = errors.New("invalid config field")
)

// Bounds mirrored from the library so a config file is rejected at load
// time instead of on the first render.
const (
	minViewportDim = 1
	maxViewportDim = 16384
	maxQuality     = 100
)

// DefaultInputDir is where diagrams are looked up when neither the
// command line nor the config file names a directory.
const DefaultInputDir = "diagrams"

// Config holds all configuration for screenshot generation.
type Config struct {
	Input    InputConfig    `yaml:"input"`
	Output   OutputConfig   `yaml:"output"`
	Viewport ViewportConfig `yaml:"viewport"`
	Render   RenderConfig   `yaml:"render"`
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default input directory (default: "diagrams")
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
}

// ViewportConfig defines rendering surface dimensions.
type ViewportConfig struct {
	Width  int `yaml:"width"`  // Logical pixels (0 = library default)
	Height int `yaml:"height"` // Logical pixels (0 = library default)
}

// RenderConfig defines capture options.
type RenderConfig struct {
	Quality int `yaml:"quality"` // JPEG quality 1-100 (0 = library default)
}

// Validate checks that configured values are within render bounds.
// Zero values mean "use library defaults" and always pass.
func (c *Config) Validate() error {
	if err := validateDimension("viewport.width", c.Viewport.Width); err != nil {
		return err
	}
	if err := validateDimension("viewport.height", c.Viewport.Height); err != nil {
		return err
	}
	if c.Render.Quality != 0 && (c.Render.Quality < 1 || c.Render.Quality > maxQuality) {
		return fmt.Errorf("%w: render.quality must be between 1 and %d, got %d", ErrInvalidField, maxQuality, c.Render.Quality)
	}
	return nil
}

// validateDimension checks a single viewport dimension, zero allowed.
func validateDimension(field string, v int) error {
	if v == 0 {
		return nil
	}
	if v < minViewportDim || v > maxViewportDim {
		return fmt.Errorf("%w: %s must be between %d and %d, got %d", ErrInvalidField, field, minViewportDim, maxViewportDim, v)
	}
	return nil
}

// DefaultConfig returns the baseline configuration: read HTML files
// from ./diagrams and write JPEGs next to their sources.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{DefaultDir: DefaultInputDir},
		Output: OutputConfig{DefaultDir: ""},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-html2jpg/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-html2jpg", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
