// Package workspace implements the disk-backed file existence probe used by
// framework detection. A probe answers "does any file matching this glob
// exist under the project root"; the underlying walk stops at the first
// match and never reads file contents.
package workspace

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/semaphore"
)

// DefaultMaxConcurrent bounds the number of simultaneous walks a probe runs
// when detection requests interleave.
const DefaultMaxConcurrent = 4

// DefaultSkipPatterns contains directory names that are skipped by default
// while probing.
var DefaultSkipPatterns = []string{
	"node_modules",
	".git",
	"vendor",
	"dist",
	".next",
	"__pycache__",
	"coverage",
	".cache",
}

// ErrInvalidRoot is returned when the probe root does not exist or is not a
// directory.
var ErrInvalidRoot = errors.New("workspace: root path does not exist or is not a directory")

// errFound short-circuits a walk once a match is seen.
var errFound = errors.New("workspace: match found")

// Probe is a workspace-rooted glob existence oracle. It is safe for
// concurrent use.
type Probe struct {
	root    string
	skipSet map[string]bool
	sem     *semaphore.Weighted
}

// Option is a functional option for configuring a Probe.
type Option func(*options)

type options struct {
	skipPatterns  []string
	maxConcurrent int64
}

// WithSkipPatterns replaces the directory names skipped during probing.
func WithSkipPatterns(patterns []string) Option {
	return func(o *options) {
		o.skipPatterns = patterns
	}
}

// WithMaxConcurrent sets the number of walks allowed to run at once.
// Non-positive values are ignored.
func WithMaxConcurrent(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxConcurrent = int64(n)
		}
	}
}

// NewProbe creates a probe rooted at the given directory.
func NewProbe(root string, opts ...Option) (*Probe, error) {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, ErrInvalidRoot
	}

	o := &options{
		skipPatterns:  DefaultSkipPatterns,
		maxConcurrent: DefaultMaxConcurrent,
	}
	for _, opt := range opts {
		opt(o)
	}

	skipSet := make(map[string]bool, len(o.skipPatterns))
	for _, p := range o.skipPatterns {
		skipSet[p] = true
	}

	return &Probe{
		root:    root,
		skipSet: skipSet,
		sem:     semaphore.NewWeighted(o.maxConcurrent),
	}, nil
}

// Root returns the probe's root directory.
func (p *Probe) Root() string {
	return p.root
}

// Exists reports whether any file under the root matches the glob pattern.
// The pattern is matched against root-relative, slash-separated paths. The
// walk stops at the first hit.
func (p *Probe) Exists(ctx context.Context, pattern string) (bool, error) {
	if !doublestar.ValidatePattern(pattern) {
		return false, fmt.Errorf("workspace: invalid pattern %q: %w", pattern, doublestar.ErrBadPattern)
	}

	if err := p.sem.Acquire(ctx, 1); err != nil {
		return false, err
	}
	defer p.sem.Release(1)

	err := filepath.WalkDir(p.root, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			// Unreadable entries do not abort an existence probe.
			return nil
		}

		if d.IsDir() {
			if path != p.root && p.skipSet[filepath.Base(path)] {
				return filepath.SkipDir
			}
			return nil
		}

		relPath, err := filepath.Rel(p.root, path)
		if err != nil {
			return nil
		}
		relPath = filepath.ToSlash(relPath)

		matched, err := doublestar.Match(pattern, relPath)
		if err != nil {
			return nil
		}
		if matched {
			return errFound
		}
		return nil
	})

	if errors.Is(err, errFound) {
		return true, nil
	}
	if err != nil {
		return false, err
	}
	return false, nil
}
