package workspace

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
)

func writeFile(t *testing.T, root string, parts ...string) {
	t.Helper()

	path := filepath.Join(append([]string{root}, parts...)...)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
}

func TestNewProbe(t *testing.T) {
	t.Parallel()

	t.Run("should accept an existing directory", func(t *testing.T) {
		t.Parallel()

		p, err := NewProbe(t.TempDir())
		if err != nil {
			t.Fatalf("NewProbe: %v", err)
		}
		if p.Root() == "" {
			t.Error("Root() is empty")
		}
	})

	t.Run("should reject a missing path", func(t *testing.T) {
		t.Parallel()

		_, err := NewProbe(filepath.Join(t.TempDir(), "missing"))
		if !errors.Is(err, ErrInvalidRoot) {
			t.Errorf("err = %v, want ErrInvalidRoot", err)
		}
	})

	t.Run("should reject a file root", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		writeFile(t, root, "plain.txt")

		_, err := NewProbe(filepath.Join(root, "plain.txt"))
		if !errors.Is(err, ErrInvalidRoot) {
			t.Errorf("err = %v, want ErrInvalidRoot", err)
		}
	})
}

func TestProbe_Exists(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "pytest.ini")
	writeFile(t, root, "tests", "conftest.py")
	writeFile(t, root, "src", "deep", "util_test.go")
	writeFile(t, root, "node_modules", "pkg", "jest.config.js")

	p, err := NewProbe(root)
	if err != nil {
		t.Fatalf("NewProbe: %v", err)
	}
	ctx := context.Background()

	tests := []struct {
		name    string
		pattern string
		want    bool
	}{
		{"root-level file", "**/pytest.ini", true},
		{"nested file", "**/conftest.py", true},
		{"deep match", "**/*_test.go", true},
		{"no match", "**/jest.config.ts", false},
		{"skipped directory is invisible", "**/jest.config.js", false},
		{"exact relative path", "tests/conftest.py", true},
		{"wrong directory", "src/conftest.py", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := p.Exists(ctx, tt.pattern)
			if err != nil {
				t.Fatalf("Exists(%q): %v", tt.pattern, err)
			}
			if got != tt.want {
				t.Errorf("Exists(%q) = %v, want %v", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestProbe_Exists_InvalidPattern(t *testing.T) {
	t.Parallel()

	p, err := NewProbe(t.TempDir())
	if err != nil {
		t.Fatalf("NewProbe: %v", err)
	}

	_, err = p.Exists(context.Background(), "**/[bad")
	if !errors.Is(err, doublestar.ErrBadPattern) {
		t.Errorf("err = %v, want ErrBadPattern", err)
	}
}

func TestProbe_Exists_CancelledContext(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "marker.txt")

	p, err := NewProbe(root)
	if err != nil {
		t.Fatalf("NewProbe: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = p.Exists(ctx, "**/marker.txt")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestProbe_Exists_CustomSkipPatterns(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFile(t, root, "node_modules", "jest.config.js")
	writeFile(t, root, "build", "out.js")

	p, err := NewProbe(root, WithSkipPatterns([]string{"build"}))
	if err != nil {
		t.Fatalf("NewProbe: %v", err)
	}
	ctx := context.Background()

	// node_modules is visible once the default skip set is replaced.
	if got, _ := p.Exists(ctx, "**/jest.config.js"); !got {
		t.Error("Exists(jest.config.js) = false, want true with custom skip set")
	}
	if got, _ := p.Exists(ctx, "**/out.js"); got {
		t.Error("Exists(out.js) = true, want false for skipped build dir")
	}
}
