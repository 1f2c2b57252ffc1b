package html2jpg

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"
)

// fakeRenderer records render calls and returns canned results.
type fakeRenderer struct {
	jpeg   []byte
	err    error
	calls  []fakeRenderCall
	closed bool
}

type fakeRenderCall struct {
	path string
	opts renderOptions
}

func (f *fakeRenderer) RenderFromFile(_ context.Context, filePath string, opts *renderOptions) ([]byte, error) {
	f.calls = append(f.calls, fakeRenderCall{path: filePath, opts: *opts})
	if f.err != nil {
		return nil, f.err
	}
	return f.jpeg, nil
}

func (f *fakeRenderer) Close() error {
	f.closed = true
	return nil
}

func TestConvertSuccess(t *testing.T) {
	t.Parallel()

	fake := &fakeRenderer{jpeg: []byte("jpeg-bytes")}
	conv := New()
	conv.renderer = fake

	got, err := conv.Convert(context.Background(), Input{InputPath: "diagram.html"})
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}
	if string(got) != "jpeg-bytes" {
		t.Errorf("Convert() = %q, want %q", got, "jpeg-bytes")
	}
	if len(fake.calls) != 1 {
		t.Fatalf("renderer called %d times, want 1", len(fake.calls))
	}
	if fake.calls[0].path != "diagram.html" {
		t.Errorf("rendered path = %q, want %q", fake.calls[0].path, "diagram.html")
	}
}

func TestConvertAppliesDefaults(t *testing.T) {
	t.Parallel()

	fake := &fakeRenderer{jpeg: []byte("x")}
	conv := New()
	conv.renderer = fake

	if _, err := conv.Convert(context.Background(), Input{InputPath: "a.html"}); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	opts := fake.calls[0].opts
	if opts.Viewport != DefaultViewport() {
		t.Errorf("viewport = %+v, want %+v", opts.Viewport, DefaultViewport())
	}
	if opts.Quality != DefaultJPEGQuality {
		t.Errorf("quality = %d, want %d", opts.Quality, DefaultJPEGQuality)
	}
}

func TestConvertInputOverridesDefaults(t *testing.T) {
	t.Parallel()

	fake := &fakeRenderer{jpeg: []byte("x")}
	conv := New(WithViewport(Viewport{Width: 800, Height: 600}), WithQuality(50))
	conv.renderer = fake

	input := Input{
		InputPath: "a.html",
		Viewport:  &Viewport{Width: 1024, Height: 768},
		Quality:   75,
	}
	if _, err := conv.Convert(context.Background(), input); err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	opts := fake.calls[0].opts
	if opts.Viewport != (Viewport{Width: 1024, Height: 768}) {
		t.Errorf("viewport = %+v, want 1024x768", opts.Viewport)
	}
	if opts.Quality != 75 {
		t.Errorf("quality = %d, want 75", opts.Quality)
	}
}

func TestConvertValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   Input
		wantErr error
	}{
		{
			name:    "empty input path",
			input:   Input{},
			wantErr: ErrEmptyInputPath,
		},
		{
			name:    "invalid viewport",
			input:   Input{InputPath: "a.html", Viewport: &Viewport{Width: 0, Height: 100}},
			wantErr: ErrInvalidViewport,
		},
		{
			name:    "invalid quality",
			input:   Input{InputPath: "a.html", Quality: 101},
			wantErr: ErrInvalidQuality,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeRenderer{jpeg: []byte("x")}
			conv := New()
			conv.renderer = fake

			_, err := conv.Convert(context.Background(), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Convert() error = %v, want %v", err, tt.wantErr)
			}
			if len(fake.calls) != 0 {
				t.Errorf("renderer called %d times on invalid input, want 0", len(fake.calls))
			}
		})
	}
}

func TestConvertWrapsRenderError(t *testing.T) {
	t.Parallel()

	fake := &fakeRenderer{err: ErrPageLoad}
	conv := New()
	conv.renderer = fake

	_, err := conv.Convert(context.Background(), Input{InputPath: "broken.html"})
	if !errors.Is(err, ErrPageLoad) {
		t.Fatalf("Convert() error = %v, want wrapped ErrPageLoad", err)
	}
	if !strings.Contains(err.Error(), "broken.html") {
		t.Errorf("error %q should name the input file", err)
	}
}

func TestConvertHTML(t *testing.T) {
	t.Parallel()

	fake := &fakeRenderer{jpeg: []byte("jpeg-bytes")}
	conv := New(WithQuality(70))
	conv.renderer = fake

	got, err := conv.ConvertHTML(context.Background(), "<html><body>hi</body></html>")
	if err != nil {
		t.Fatalf("ConvertHTML() error = %v", err)
	}
	if string(got) != "jpeg-bytes" {
		t.Errorf("ConvertHTML() = %q, want %q", got, "jpeg-bytes")
	}

	if len(fake.calls) != 1 {
		t.Fatalf("renderer called %d times, want 1", len(fake.calls))
	}
	call := fake.calls[0]
	if !strings.HasSuffix(call.path, ".html") {
		t.Errorf("staged path = %q, want .html suffix", call.path)
	}
	if call.opts.Quality != 70 {
		t.Errorf("quality = %d, want converter default 70", call.opts.Quality)
	}

	// The staged file is removed after the render
	if _, err := os.Stat(call.path); !os.IsNotExist(err) {
		t.Errorf("staged file %s should be cleaned up", call.path)
	}
}

func TestConvertHTMLEmpty(t *testing.T) {
	t.Parallel()

	conv := New()
	conv.renderer = &fakeRenderer{}

	_, err := conv.ConvertHTML(context.Background(), "")
	if !errors.Is(err, ErrEmptyHTML) {
		t.Errorf("ConvertHTML() error = %v, want ErrEmptyHTML", err)
	}
}

func TestConverterClose(t *testing.T) {
	t.Parallel()

	fake := &fakeRenderer{}
	conv := New()
	conv.renderer = fake

	if err := conv.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !fake.closed {
		t.Error("Close() did not close the renderer")
	}
}

func TestNewOptions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		opts         []Option
		wantTimeout  time.Duration
		wantViewport Viewport
		wantQuality  int
	}{
		{
			name:         "defaults",
			opts:         nil,
			wantTimeout:  DefaultTimeout,
			wantViewport: DefaultViewport(),
			wantQuality:  DefaultJPEGQuality,
		},
		{
			name:         "custom timeout",
			opts:         []Option{WithTimeout(time.Minute)},
			wantTimeout:  time.Minute,
			wantViewport: DefaultViewport(),
			wantQuality:  DefaultJPEGQuality,
		},
		{
			name:         "non-positive timeout ignored",
			opts:         []Option{WithTimeout(-1)},
			wantTimeout:  DefaultTimeout,
			wantViewport: DefaultViewport(),
			wantQuality:  DefaultJPEGQuality,
		},
		{
			name:         "custom viewport and quality",
			opts:         []Option{WithViewport(Viewport{Width: 640, Height: 480}), WithQuality(10)},
			wantTimeout:  DefaultTimeout,
			wantViewport: Viewport{Width: 640, Height: 480},
			wantQuality:  10,
		},
		{
			name:         "zero quality ignored",
			opts:         []Option{WithQuality(0)},
			wantTimeout:  DefaultTimeout,
			wantViewport: DefaultViewport(),
			wantQuality:  DefaultJPEGQuality,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conv := New(tt.opts...)
			defer conv.Close()

			if conv.cfg.timeout != tt.wantTimeout {
				t.Errorf("timeout = %v, want %v", conv.cfg.timeout, tt.wantTimeout)
			}
			if conv.cfg.viewport != tt.wantViewport {
				t.Errorf("viewport = %+v, want %+v", conv.cfg.viewport, tt.wantViewport)
			}
			if conv.cfg.quality != tt.wantQuality {
				t.Errorf("quality = %d, want %d", conv.cfg.quality, tt.wantQuality)
			}
		})
	}
}

func TestConvertCancelledContext(t *testing.T) {
	t.Parallel()

	conv := New()
	conv.renderer = newRodRenderer(DefaultTimeout)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := conv.Convert(ctx, Input{InputPath: "a.html"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Convert() error = %v, want context.Canceled", err)
	}
}
