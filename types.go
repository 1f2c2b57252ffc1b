package html2jpg

import (
	"fmt"
	"time"
)

// Viewport defaults in logical pixels. The tall default height gives
// diagram layouts room to settle before the full-page capture; the
// capture itself extends past the viewport regardless.
const (
	DefaultViewportWidth  = 1920
	DefaultViewportHeight = 2000
)

// Viewport dimension bounds. The upper bound matches Chrome's maximum
// texture size for a single capture.
const (
	MinViewportDim = 1
	MaxViewportDim = 16384
)

// JPEG quality bounds.
const (
	MinJPEGQuality     = 1
	MaxJPEGQuality     = 100
	DefaultJPEGQuality = 90
)

// DefaultTimeout bounds a single render, including the network-idle
// wait. Without it a page that never goes idle would block forever.
const DefaultTimeout = 30 * time.Second

// MaxPoolSize caps the number of concurrent browser instances.
const MaxPoolSize = 16

// Viewport configures the rendering surface dimensions in logical pixels.
type Viewport struct {
	Width  int
	Height int
}

// DefaultViewport returns the default rendering surface dimensions.
func DefaultViewport() Viewport {
	return Viewport{Width: DefaultViewportWidth, Height: DefaultViewportHeight}
}

// Validate checks that viewport dimensions are within bounds.
// Returns nil if v is nil (nil means use defaults).
func (v *Viewport) Validate() error {
	if v == nil {
		return nil
	}
	if v.Width < MinViewportDim || v.Width > MaxViewportDim {
		return fmt.Errorf("%w: width %d (must be between %d and %d)", ErrInvalidViewport, v.Width, MinViewportDim, MaxViewportDim)
	}
	if v.Height < MinViewportDim || v.Height > MaxViewportDim {
		return fmt.Errorf("%w: height %d (must be between %d and %d)", ErrInvalidViewport, v.Height, MinViewportDim, MaxViewportDim)
	}
	return nil
}

// Input contains render parameters for a single conversion.
type Input struct {
	InputPath string    // Path to the HTML file (required)
	Viewport  *Viewport // Viewport size (optional, nil = converter default)
	Quality   int       // JPEG quality 1-100 (optional, 0 = converter default)
}

// validateQuality checks that a quality value is within JPEG bounds.
// Zero is valid and means "use the default".
func validateQuality(q int) error {
	if q == 0 {
		return nil
	}
	if q < MinJPEGQuality || q > MaxJPEGQuality {
		return fmt.Errorf("%w: %d (must be between %d and %d)", ErrInvalidQuality, q, MinJPEGQuality, MaxJPEGQuality)
	}
	return nil
}
