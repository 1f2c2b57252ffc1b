package main

import (
	"errors"
	"fmt"
	"testing"

	html2jpg "github.com/alnah/go-html2jpg"
	"github.com/alnah/go-html2jpg/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error", err: nil, want: ExitSuccess},
		{name: "missing directory", err: ErrDirectoryNotFound, want: ExitGeneral},
		{name: "no inputs", err: ErrNoInputs, want: ExitGeneral},
		{name: "browser connect", err: html2jpg.ErrBrowserConnect, want: ExitGeneral},
		{name: "write failure", err: ErrWriteImage, want: ExitGeneral},
		{name: "no input", err: ErrNoInput, want: ExitGeneral},
		{name: "config not found", err: config.ErrConfigNotFound, want: ExitUsage},
		{name: "config parse", err: config.ErrConfigParse, want: ExitUsage},
		{name: "invalid field", err: config.ErrInvalidField, want: ExitUsage},
		{name: "invalid viewport", err: html2jpg.ErrInvalidViewport, want: ExitUsage},
		{name: "invalid quality", err: html2jpg.ErrInvalidQuality, want: ExitUsage},
		{name: "invalid workers", err: ErrInvalidWorkerCount, want: ExitUsage},
		{name: "invalid extension", err: ErrInvalidExtension, want: ExitUsage},
		{name: "unexpected error", err: errors.New("boom"), want: ExitGeneral},
		{
			name: "wrapped error resolves",
			err:  fmt.Errorf("loading config: %w", config.ErrConfigNotFound),
			want: ExitUsage,
		},
		{
			name: "wrapped render failure",
			err:  fmt.Errorf("converting a.html: %w", html2jpg.ErrPageLoad),
			want: ExitGeneral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := exitCodeFor(tt.err)
			if got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
