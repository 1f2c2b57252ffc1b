package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	html2jpg "github.com/alnah/go-html2jpg"
)

// Sentinel errors for file discovery.
var (
	ErrDirectoryNotFound  = errors.New("input directory not found")
	ErrNoInputs           = errors.New("no HTML files found")
	ErrInvalidExtension   = errors.New("file must have .html or .htm extension")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles finds the HTML files to convert. A directory yields its
// matching entries in name order (deterministic batches); a file path
// yields a single entry after extension validation.
func discoverFiles(inputPath, outputDir string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrDirectoryNotFound, inputPath)
		}
		return nil, err
	}

	if !info.IsDir() {
		if err := validateHTMLExtension(inputPath); err != nil {
			return nil, err
		}
		outPath := resolveOutputPath(inputPath, outputDir)
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	entries, err := os.ReadDir(inputPath)
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", inputPath, err)
	}

	var files []FileToConvert
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !hasHTMLExtension(entry.Name()) {
			continue
		}
		path := filepath.Join(inputPath, entry.Name())
		files = append(files, FileToConvert{
			InputPath:  path,
			OutputPath: resolveOutputPath(path, outputDir),
		})
	}

	if len(files) == 0 {
		return nil, fmt.Errorf("%w: in %s", ErrNoInputs, inputPath)
	}

	return files, nil
}

// resolveOutputPath determines the JPEG output path for an HTML file:
// same stem with a .jpg extension, next to the source unless an output
// directory (or explicit .jpg path) is given.
func resolveOutputPath(inputPath, outputDir string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base+".jpg")
	}

	if strings.HasSuffix(outputDir, ".jpg") {
		return outputDir
	}

	return filepath.Join(outputDir, base+".jpg")
}

// hasHTMLExtension reports whether the name has a recognized source extension.
func hasHTMLExtension(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		return true
	}
	return false
}

// validateHTMLExtension checks that the file has a .html or .htm extension.
func validateHTMLExtension(path string) error {
	if !hasHTMLExtension(path) {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, filepath.Ext(path))
	}
	return nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > html2jpg.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, html2jpg.MaxPoolSize)
	}
	return nil
}
