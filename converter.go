package html2jpg

import (
	"context"
	"fmt"
	"time"

	"github.com/alnah/go-html2jpg/internal/fileutil"
)

// converterConfig holds converter-level defaults applied to every render.
type converterConfig struct {
	timeout  time.Duration
	viewport Viewport
	quality  int
}

// Converter renders HTML files to JPEG screenshots. Safe for sequential
// reuse across files; use one Converter per goroutine for parallelism.
type Converter struct {
	cfg      converterConfig
	renderer jpegRenderer
}

// Option customizes a Converter.
type Option func(*Converter)

// WithTimeout sets the per-render timeout, bounding navigation, the
// network-idle wait, and capture together.
func WithTimeout(d time.Duration) Option {
	return func(c *Converter) {
		if d > 0 {
			c.cfg.timeout = d
		}
	}
}

// WithViewport sets the default viewport for renders that do not
// specify one.
func WithViewport(v Viewport) Option {
	return func(c *Converter) {
		c.cfg.viewport = v
	}
}

// WithQuality sets the default JPEG quality for renders that do not
// specify one.
func WithQuality(q int) Option {
	return func(c *Converter) {
		if q != 0 {
			c.cfg.quality = q
		}
	}
}

// New creates a Converter with default configuration.
// Use options to customize behavior (e.g., WithTimeout).
func New(opts ...Option) *Converter {
	c := &Converter{
		cfg: converterConfig{
			timeout:  DefaultTimeout,
			viewport: DefaultViewport(),
			quality:  DefaultJPEGQuality,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	// Create renderer if not injected (e.g., by tests)
	if c.renderer == nil {
		c.renderer = newRodRenderer(c.cfg.timeout)
	}

	return c
}

// Convert renders the input HTML file and returns the JPEG bytes.
// The context is used for cancellation and timeout.
func (c *Converter) Convert(ctx context.Context, input Input) ([]byte, error) {
	opts, err := c.resolveOptions(input)
	if err != nil {
		return nil, err
	}

	jpeg, err := c.renderer.RenderFromFile(ctx, input.InputPath, opts)
	if err != nil {
		return nil, fmt.Errorf("rendering %s: %w", input.InputPath, err)
	}

	return jpeg, nil
}

// ConvertHTML renders an in-memory HTML document using the converter
// defaults. The document is staged in a temporary file so the browser
// loads it with a file:// origin, matching Convert's asset resolution.
func (c *Converter) ConvertHTML(ctx context.Context, html string) ([]byte, error) {
	if html == "" {
		return nil, ErrEmptyHTML
	}

	path, cleanup, err := fileutil.WriteTempFile(html, "html")
	if err != nil {
		return nil, fmt.Errorf("staging html: %w", err)
	}
	defer cleanup()

	opts := &renderOptions{Viewport: c.cfg.viewport, Quality: c.cfg.quality}
	jpeg, err := c.renderer.RenderFromFile(ctx, path, opts)
	if err != nil {
		return nil, fmt.Errorf("rendering html: %w", err)
	}

	return jpeg, nil
}

// Close releases resources (headless Chrome browser).
func (c *Converter) Close() error {
	if c.renderer != nil {
		return c.renderer.Close()
	}
	return nil
}

// resolveOptions validates the input and merges it with converter
// defaults into concrete render options.
func (c *Converter) resolveOptions(input Input) (*renderOptions, error) {
	if input.InputPath == "" {
		return nil, ErrEmptyInputPath
	}
	if err := input.Viewport.Validate(); err != nil {
		return nil, err
	}
	if err := validateQuality(input.Quality); err != nil {
		return nil, err
	}

	viewport := c.cfg.viewport
	if input.Viewport != nil {
		viewport = *input.Viewport
	}

	quality := c.cfg.quality
	if input.Quality != 0 {
		quality = input.Quality
	}

	return &renderOptions{Viewport: viewport, Quality: quality}, nil
}
