package fileutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteTempFile(t *testing.T) {
	t.Parallel()

	path, cleanup, err := WriteTempFile("<html></html>", "html")
	if err != nil {
		t.Fatalf("WriteTempFile() error = %v", err)
	}

	if !strings.Contains(filepath.Base(path), "html2jpg-") || !strings.HasSuffix(path, ".html") {
		t.Errorf("path %q does not match pattern html2jpg-*.html", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading temp file: %v", err)
	}
	if string(data) != "<html></html>" {
		t.Errorf("content = %q, want %q", data, "<html></html>")
	}

	cleanup()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("temp file still exists after cleanup at %s", path)
	}
}

func TestValidateExtension(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		extension string
		wantErr   error
	}{
		{name: "valid", extension: "html", wantErr: nil},
		{name: "empty", extension: "", wantErr: ErrExtensionEmpty},
		{name: "slash", extension: "a/b", wantErr: ErrExtensionPathTraversal},
		{name: "backslash", extension: `a\b`, wantErr: ErrExtensionPathTraversal},
		{name: "null byte", extension: "a\x00b", wantErr: ErrExtensionPathTraversal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateExtension(tt.extension); !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExtension(%q) error = %v, want %v", tt.extension, err, tt.wantErr)
			}
		})
	}
}

func TestFileExists(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "a.html")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !FileExists(file) {
		t.Errorf("FileExists(%q) = false, want true", file)
	}
	if FileExists(dir) {
		t.Error("FileExists(directory) = true, want false")
	}
	if FileExists(filepath.Join(dir, "missing")) {
		t.Error("FileExists(missing) = true, want false")
	}
}

func TestIsFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want bool
	}{
		{"default", false},
		{"./custom.yaml", true},
		{"../shared/config.yaml", true},
		{"/absolute/path.yaml", true},
		{`C:\windows\path.yaml`, true},
		{"my-config", false},
	}

	for _, tt := range tests {
		if got := IsFilePath(tt.in); got != tt.want {
			t.Errorf("IsFilePath(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
