package discover

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/launchgen/core/pkg/domain"
	"github.com/launchgen/core/pkg/workspace"
)

// DefaultMaxFileSize is the default maximum file size for scanning (10MB).
const DefaultMaxFileSize = 10 * 1024 * 1024

// ScanError represents an error that occurred for a specific file during a
// scan. Scans collect errors instead of aborting.
type ScanError struct {
	Err  error
	Path string
	// Phase is "discovery" or "parsing".
	Phase string
}

// Error implements the error interface.
func (e ScanError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("[%s] %v", e.Phase, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %v", e.Phase, e.Path, e.Err)
}

// ScanResult contains the outcome of a directory scan.
type ScanResult struct {
	// Symbols holds every discovered symbol, ordered by file path and then
	// by start line.
	Symbols []domain.SymbolInfo

	// Errors contains non-fatal errors encountered during the scan.
	Errors []ScanError
}

// ScanOptions configures Scan behavior.
type ScanOptions struct {
	// Patterns filters candidate files by root-relative glob patterns.
	// Empty means every supported file is scanned.
	Patterns []string

	// SkipPatterns specifies directory names to skip during discovery.
	SkipPatterns []string

	// MaxFileSize is the maximum file size in bytes to parse.
	MaxFileSize int64

	// Workers specifies the number of concurrent file parsers. Zero or
	// negative values use runtime.GOMAXPROCS(0).
	Workers int
}

// ScanOption is a functional option for configuring Scan.
type ScanOption func(*ScanOptions)

// WithPatterns filters candidate files by glob patterns.
func WithPatterns(patterns []string) ScanOption {
	return func(o *ScanOptions) {
		o.Patterns = patterns
	}
}

// WithSkipPatterns replaces the directory names skipped during discovery.
func WithSkipPatterns(patterns []string) ScanOption {
	return func(o *ScanOptions) {
		o.SkipPatterns = patterns
	}
}

// WithMaxFileSize sets the maximum file size to parse.
func WithMaxFileSize(size int64) ScanOption {
	return func(o *ScanOptions) {
		if size > 0 {
			o.MaxFileSize = size
		}
	}
}

// WithWorkers sets the number of concurrent file parsers.
func WithWorkers(n int) ScanOption {
	return func(o *ScanOptions) {
		if n >= 0 {
			o.Workers = n
		}
	}
}

// Scan walks the workspace root, discovers supported source files, and
// extracts their symbols in parallel. Per-file failures are collected in
// the result; only an invalid root or a cancelled context fail the call.
func Scan(ctx context.Context, root string, opts ...ScanOption) (*ScanResult, error) {
	options := &ScanOptions{
		SkipPatterns: workspace.DefaultSkipPatterns,
		MaxFileSize:  DefaultMaxFileSize,
	}
	for _, opt := range opts {
		opt(options)
	}

	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("discover: invalid scan root %q: %w", root, workspace.ErrInvalidRoot)
	}

	result := &ScanResult{}

	files, errs := discoverFiles(ctx, root, options)
	result.Errors = append(result.Errors, errs...)
	if err := ctx.Err(); err != nil {
		return result, err
	}
	if len(files) == 0 {
		return result, nil
	}

	workers := options.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	sem := semaphore.NewWeighted(int64(workers))
	g, gCtx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	for _, file := range files {
		g.Go(func() error {
			if err := sem.Acquire(gCtx, 1); err != nil {
				return nil
			}
			defer sem.Release(1)

			symbols, err := FileSymbols(gCtx, file, root)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				result.Errors = append(result.Errors, ScanError{
					Err:   err,
					Path:  file,
					Phase: "parsing",
				})
				return nil
			}
			result.Symbols = append(result.Symbols, symbols...)
			return nil
		})
	}
	_ = g.Wait()

	// Parallel goroutines complete in variable order; sort for stable
	// output.
	sort.Slice(result.Symbols, func(i, j int) bool {
		a, b := result.Symbols[i], result.Symbols[j]
		if a.FilePath != b.FilePath {
			return a.FilePath < b.FilePath
		}
		return a.Location.StartLine < b.Location.StartLine
	})

	return result, ctx.Err()
}

func discoverFiles(ctx context.Context, root string, options *ScanOptions) ([]string, []ScanError) {
	skipSet := make(map[string]bool, len(options.SkipPatterns))
	for _, p := range options.SkipPatterns {
		skipSet[p] = true
	}

	var (
		files []string
		errs  []ScanError
	)

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if walkErr != nil {
			errs = append(errs, ScanError{
				Err:   walkErr,
				Path:  path,
				Phase: "discovery",
			})
			return nil
		}

		if d.IsDir() {
			if path != root && skipSet[filepath.Base(path)] {
				return filepath.SkipDir
			}
			return nil
		}

		if LanguageFor(path) == "" {
			return nil
		}

		if len(options.Patterns) > 0 && !matchesAnyPattern(path, root, options.Patterns) {
			return nil
		}

		if options.MaxFileSize > 0 {
			info, err := d.Info()
			if err != nil {
				errs = append(errs, ScanError{
					Err:   err,
					Path:  path,
					Phase: "discovery",
				})
				return nil
			}
			if info.Size() > options.MaxFileSize {
				return nil
			}
		}

		files = append(files, path)
		return nil
	})

	return files, errs
}

func matchesAnyPattern(path, root string, patterns []string) bool {
	relPath, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	relPath = filepath.ToSlash(relPath)

	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, relPath)
		if err != nil {
			continue
		}
		if matched {
			return true
		}
	}
	return false
}
