package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	html2jpg "github.com/alnah/go-html2jpg"
)

// File permission constants.
const (
	dirPermissions  = 0o750 // rwxr-x---: owner full, group read+execute
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// Sentinel errors for batch operations.
var (
	ErrNoInput    = errors.New("no input specified")
	ErrWriteImage = errors.New("failed to write JPEG file")
)

// CLIConverter is the interface for the conversion service.
type CLIConverter interface {
	Convert(ctx context.Context, input html2jpg.Input) ([]byte, error)
}

// Compile-time interface implementation check.
var _ CLIConverter = (*html2jpg.Converter)(nil)

// Pool abstracts renderer pool operations for testability.
type Pool interface {
	Acquire() CLIConverter
	Release(CLIConverter)
	Size() int
}

// renderParams groups screenshot parameters shared across the batch.
type renderParams struct {
	viewport *html2jpg.Viewport
	quality  int
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Skipped    bool // not attempted because an earlier file failed
	Duration   time.Duration
}

// convertBatch processes files through the renderer pool, fail-fast:
// the first failure cancels everything still pending. With a pool of
// one this is a strictly sequential loop in discovery order.
func convertBatch(ctx context.Context, pool Pool, files []FileToConvert, params *renderParams, env *Environment, quiet bool) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	concurrency := pool.Size()
	if concurrency > len(files) {
		concurrency = len(files)
	}

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			svc := pool.Acquire()
			defer pool.Release(svc)

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath:  files[idx].InputPath,
						OutputPath: files[idx].OutputPath,
						Skipped:    true,
					}
					continue
				}
				if !quiet {
					fmt.Fprintf(env.Stdout, "Converting %s...\n", filepath.Base(files[idx].InputPath))
				}
				results[idx] = convertFile(ctx, svc, files[idx], params)
				if results[idx].Err != nil {
					cancel()
				}
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, service CLIConverter, f FileToConvert, params *renderParams) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}

	outDir := filepath.Dir(f.OutputPath)
	if err := os.MkdirAll(outDir, dirPermissions); err != nil {
		result.Err = fmt.Errorf("creating output directory: %w", err)
		result.Duration = time.Since(start)
		return result
	}

	jpeg, err := service.Convert(ctx, html2jpg.Input{
		InputPath: f.InputPath,
		Viewport:  params.viewport,
		Quality:   params.quality,
	})
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	// #nosec G306 -- screenshots are meant to be readable
	if err := os.WriteFile(f.OutputPath, jpeg, filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %v", ErrWriteImage, err)
		result.Duration = time.Since(start)
		return result
	}

	result.Duration = time.Since(start)
	return result
}

// firstFailure returns the index of the earliest failed result in
// discovery order, if any.
func firstFailure(results []ConversionResult) (int, bool) {
	for i, r := range results {
		if r.Err != nil {
			return i, true
		}
	}
	return 0, false
}

// printResults outputs successful conversions using the provided writers.
// Failures surface once, through the error returned by runConvert.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) {
	if quiet {
		return
	}

	for _, r := range results {
		if r.Err != nil || r.Skipped {
			continue
		}
		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Created %s\n", r.OutputPath)
		}
	}
}
