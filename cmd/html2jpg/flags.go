package main

import (
	"fmt"
	"os"
	"time"

	html2jpg "github.com/alnah/go-html2jpg"
	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// renderFlags holds screenshot parameter flags. Zero means "use the
// config file value, or the library default".
type renderFlags struct {
	width   int
	height  int
	quality int
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common  commonFlags
	output  string
	workers int
	timeout string
	render  renderFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addRenderFlags adds screenshot parameter flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.IntVar(&f.width, "width", 0, fmt.Sprintf("viewport width in pixels (default %d)", html2jpg.DefaultViewportWidth))
	fs.IntVar(&f.height, "height", 0, fmt.Sprintf("viewport height in pixels (default %d)", html2jpg.DefaultViewportHeight))
	fs.IntVar(&f.quality, "quality", 0, fmt.Sprintf("JPEG quality 1-100 (default %d)", html2jpg.DefaultJPEGQuality))
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{}

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 1, "parallel workers (1 = sequential, 0 = auto)")
	fs.StringVarP(&f.timeout, "timeout", "t", "", "per-file render timeout (e.g., 30s, 2m)")

	// Flag groups
	addCommonFlags(fs, &f.common)
	addRenderFlags(fs, &f.render)

	fs.Usage = func() { printConvertUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}

// resolveTimeout determines the per-render timeout.
// Priority: flag > environment > library default.
func resolveTimeout(flagTimeout string, envTimeout time.Duration) (time.Duration, error) {
	if flagTimeout != "" {
		d, err := time.ParseDuration(flagTimeout)
		if err != nil {
			return 0, fmt.Errorf("invalid timeout %q: %w", flagTimeout, err)
		}
		if d <= 0 {
			return 0, fmt.Errorf("invalid timeout %q: must be positive", flagTimeout)
		}
		return d, nil
	}
	if envTimeout > 0 {
		return envTimeout, nil
	}
	return html2jpg.DefaultTimeout, nil
}

// resolveWorkers determines the worker count.
// The environment applies only when the flag is left at its default.
func resolveWorkers(flagWorkers, envWorkers int) int {
	if flagWorkers == 1 && envWorkers != 0 {
		return envWorkers
	}
	return flagWorkers
}
