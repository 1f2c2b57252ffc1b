package html2jpg

import (
	"errors"
	"testing"
)

func TestViewportValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		viewport *Viewport
		wantErr  error
	}{
		{
			name:     "nil viewport means defaults",
			viewport: nil,
			wantErr:  nil,
		},
		{
			name:     "default viewport",
			viewport: &Viewport{Width: DefaultViewportWidth, Height: DefaultViewportHeight},
			wantErr:  nil,
		},
		{
			name:     "minimum dimensions",
			viewport: &Viewport{Width: MinViewportDim, Height: MinViewportDim},
			wantErr:  nil,
		},
		{
			name:     "maximum dimensions",
			viewport: &Viewport{Width: MaxViewportDim, Height: MaxViewportDim},
			wantErr:  nil,
		},
		{
			name:     "zero width",
			viewport: &Viewport{Width: 0, Height: 1080},
			wantErr:  ErrInvalidViewport,
		},
		{
			name:     "negative height",
			viewport: &Viewport{Width: 1920, Height: -1},
			wantErr:  ErrInvalidViewport,
		},
		{
			name:     "width over maximum",
			viewport: &Viewport{Width: MaxViewportDim + 1, Height: 1080},
			wantErr:  ErrInvalidViewport,
		},
		{
			name:     "height over maximum",
			viewport: &Viewport{Width: 1920, Height: MaxViewportDim + 1},
			wantErr:  ErrInvalidViewport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.viewport.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateQuality(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		quality int
		wantErr error
	}{
		{name: "zero means default", quality: 0, wantErr: nil},
		{name: "minimum", quality: MinJPEGQuality, wantErr: nil},
		{name: "maximum", quality: MaxJPEGQuality, wantErr: nil},
		{name: "default value", quality: DefaultJPEGQuality, wantErr: nil},
		{name: "negative", quality: -1, wantErr: ErrInvalidQuality},
		{name: "over maximum", quality: 101, wantErr: ErrInvalidQuality},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateQuality(tt.quality)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("validateQuality(%d) error = %v, want %v", tt.quality, err, tt.wantErr)
			}
		})
	}
}

func TestDefaultViewport(t *testing.T) {
	t.Parallel()

	v := DefaultViewport()
	if v.Width != DefaultViewportWidth || v.Height != DefaultViewportHeight {
		t.Errorf("DefaultViewport() = %+v, want %dx%d", v, DefaultViewportWidth, DefaultViewportHeight)
	}
	if err := v.Validate(); err != nil {
		t.Errorf("default viewport should validate, got %v", err)
	}
}
