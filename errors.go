package html2jpg

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyInputPath = errors.New("input path cannot be empty")
	ErrEmptyHTML      = errors.New("html content cannot be empty")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")
	ErrPageIdle       = errors.New("timed out waiting for network idle")
	ErrScreenshot     = errors.New("screenshot capture failed")

	// Render parameter validation errors.
	ErrInvalidViewport = errors.New("invalid viewport dimensions")
	ErrInvalidQuality  = errors.New("invalid JPEG quality")
)
