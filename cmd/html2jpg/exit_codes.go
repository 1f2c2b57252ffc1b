package main

import (
	"errors"

	html2jpg "github.com/alnah/go-html2jpg"
	"github.com/alnah/go-html2jpg/internal/config"
)

// Exit codes for html2jpg CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage.
// Anything that goes wrong during a run (missing input directory, render
// failure, write failure) exits 1 so CI pipelines see a single failure code.
const (
	ExitSuccess = 0 // All files converted
	ExitGeneral = 1 // Conversion failed: missing inputs, browser, or write errors
	ExitUsage   = 2 // Invalid flags, config, or validation
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrInvalidField) ||
		errors.Is(err, html2jpg.ErrInvalidViewport) ||
		errors.Is(err, html2jpg.ErrInvalidQuality) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrInvalidExtension) {
		return ExitUsage
	}

	return ExitGeneral
}
