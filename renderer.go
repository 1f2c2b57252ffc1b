package html2jpg

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/ysmood/gson"
)

// jpegRenderer abstracts screenshot rendering from an HTML file to
// enable testing without a browser.
type jpegRenderer interface {
	RenderFromFile(ctx context.Context, filePath string, opts *renderOptions) ([]byte, error)
	Close() error
}

// Compile-time interface check
var _ jpegRenderer = (*rodRenderer)(nil)

// renderOptions holds per-render parameters after defaults are applied.
type renderOptions struct {
	Viewport Viewport
	Quality  int
}

// networkIdleWindow is the trailing window with no in-flight requests
// after which the page is considered fully loaded.
const networkIdleWindow = 300 * time.Millisecond

// rodRenderer implements jpegRenderer using go-rod.
// Rod automatically downloads Chromium on first run if not found.
type rodRenderer struct {
	launcher *launcher.Launcher
	browser  *rod.Browser
	timeout  time.Duration
}

// newRodRenderer creates a rodRenderer with the given timeout.
func newRodRenderer(timeout time.Duration) *rodRenderer {
	return &rodRenderer{timeout: timeout}
}

// ensureBrowser lazily connects to the browser.
func (r *rodRenderer) ensureBrowser() error {
	if r.browser != nil {
		return nil
	}

	// Configure launcher
	l := launcher.New()

	// Use pre-installed browser if specified (Docker/containerized environments)
	if bin := os.Getenv("ROD_BROWSER_BIN"); bin != "" {
		l = l.Bin(bin)
	}

	// NoSandbox required for CI and containerized environments
	if os.Getenv("CI") == "true" || os.Getenv("ROD_BROWSER_BIN") != "" {
		l = l.NoSandbox(true)
	}
	u, err := l.Launch()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return fmt.Errorf("%w: %v", ErrBrowserConnect, err)
	}

	r.launcher = l
	r.browser = browser
	return nil
}

// Close releases browser resources, killing the process group as a
// fallback for orphaned Chrome children.
func (r *rodRenderer) Close() error {
	if r.browser == nil {
		return nil
	}

	err := r.browser.Close()
	r.browser = nil

	if r.launcher != nil {
		if pid := r.launcher.PID(); pid > 0 {
			killProcessGroup(pid)
		}
		r.launcher.Kill()
		r.launcher = nil
	}
	return err
}

// RenderFromFile opens a local HTML file in headless Chrome and captures
// a full-page JPEG screenshot. The page and its resources are released
// on every exit path; the browser stays connected for reuse.
func (r *rodRenderer) RenderFromFile(ctx context.Context, filePath string, opts *renderOptions) ([]byte, error) {
	// Check context before starting
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := r.ensureBrowser(); err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return nil, fmt.Errorf("%w: resolving path: %v", ErrPageLoad, err)
	}

	page, err := r.browser.Page(proto.TargetCreateTarget{URL: ""})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageCreate, err)
	}
	defer page.Close()

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             opts.Viewport.Width,
		Height:            opts.Viewport.Height,
		DeviceScaleFactor: 1,
	}); err != nil {
		return nil, fmt.Errorf("%w: setting viewport: %v", ErrPageCreate, err)
	}

	// Bound the render with timeout from context deadline or default
	timeout := r.timeout
	if deadline, ok := ctx.Deadline(); ok {
		timeout = time.Until(deadline)
		if timeout <= 0 {
			return nil, context.DeadlineExceeded
		}
	}

	renderCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	pg := page.Context(renderCtx)

	// Arm the idle watcher before navigating so early requests count
	waitIdle := pg.WaitRequestIdle(networkIdleWindow, nil, nil, nil)

	if err := pg.Navigate(fileURL(absPath)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	if err := pg.WaitLoad(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPageLoad, err)
	}

	// Blocks until no requests have been in flight for the trailing
	// window, or until renderCtx expires.
	waitIdle()
	if err := renderCtx.Err(); err != nil {
		return nil, fmt.Errorf("%w: after %v: %v", ErrPageIdle, timeout, err)
	}

	shot, err := pg.Screenshot(true, &proto.PageCaptureScreenshot{
		Format:  proto.PageCaptureScreenshotFormatJpeg,
		Quality: gson.Int(opts.Quality),
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScreenshot, err)
	}
	if len(shot) == 0 {
		return nil, fmt.Errorf("%w: empty image", ErrScreenshot)
	}

	return shot, nil
}

// fileURL converts an absolute filesystem path to a file:// URL.
func fileURL(absPath string) string {
	return "file://" + filepath.ToSlash(absPath)
}
