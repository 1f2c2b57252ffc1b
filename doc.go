// Package html2jpg renders HTML files to full-page JPEG screenshots
// using headless Chrome.
//
// # Quick Start
//
// Create a converter, render a file, and close when done:
//
//	conv := html2jpg.New()
//	defer conv.Close()
//
//	jpeg, err := conv.Convert(ctx, html2jpg.Input{
//	    InputPath: "diagrams/architecture.html",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("diagrams/architecture.jpg", jpeg, 0644)
//
// In-memory documents can be rendered with ConvertHTML, which stages
// the content in a temporary file so the browser sees a file:// origin.
//
// # Rendering Pipeline
//
// Each conversion follows these stages:
//
//  1. Open a headless Chrome page sized to the viewport (go-rod)
//  2. Navigate to the local file via a file:// URL
//  3. Wait for page load and a trailing network-idle window
//  4. Capture a full-page screenshot encoded as JPEG
//
// Only the page is scoped to a single render. The browser process is
// converter-scoped: launched lazily on the first render, reused for
// every subsequent file, and torn down only by Close. Callers that
// want a fresh engine per file can create and close a Converter per
// conversion.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv := html2jpg.New(
//	    html2jpg.WithTimeout(time.Minute),
//	    html2jpg.WithViewport(html2jpg.Viewport{Width: 1280, Height: 720}),
//	    html2jpg.WithQuality(80),
//	)
//
// Per-render options are passed via Input and override the converter
// defaults for that call only.
//
// # Browser Requirements
//
// Rod locates an installed Chrome/Chromium, or downloads a managed
// Chromium on first use. Set ROD_BROWSER_BIN to use a pre-installed
// browser (Docker/CI); the sandbox is disabled automatically when
// CI=true or ROD_BROWSER_BIN is set.
package html2jpg
