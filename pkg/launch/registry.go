package launch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"github.com/launchgen/core/pkg/domain"
)

// ErrUnregisteredLanguage is returned by the generators when the symbol's
// language has no registered module. It is the only hard failure the engine
// produces; every other condition resolves to a defined fallback.
var ErrUnregisteredLanguage = errors.New("launch: no module registered for language")

// Registry is the directory of language modules. It is the only stateful
// component of the engine; construct one per host and pass it to every call
// site.
type Registry struct {
	mu      sync.RWMutex
	modules map[domain.Language]*Module
	order   []domain.Language

	probe  FileProbe
	logger *slog.Logger
}

// Option is a functional option for configuring a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for recovered probe failures.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry creates an empty registry backed by the given workspace probe.
// A nil probe disables detection; every generation then uses the module
// default factories.
func NewRegistry(probe FileProbe, opts ...Option) *Registry {
	r := &Registry{
		modules: make(map[domain.Language]*Module),
		probe:   probe,
		logger:  slog.Default(),
	}
	if r.probe == nil {
		r.probe = NoProbe
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register inserts or replaces the module under its language key.
// Overwriting is intentional; it supports reloading a module in place.
func (r *Registry) Register(m *Module) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.modules[m.Language]; !exists {
		r.order = append(r.order, m.Language)
	}
	r.modules[m.Language] = m
}

// Unregister removes the module for the language if present.
func (r *Registry) Unregister(lang domain.Language) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.modules[lang]; !exists {
		return
	}
	delete(r.modules, lang)
	for i, l := range r.order {
		if l == lang {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
}

// Module returns the module registered for the language, or nil. The lookup
// key is case-sensitive.
func (r *Registry) Module(lang domain.Language) *Module {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.modules[lang]
}

// ModuleByExtension returns the first module in registration order claiming
// the extension (case-insensitive), or nil.
func (r *Registry) ModuleByExtension(ext string) *Module {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, lang := range r.order {
		if m := r.modules[lang]; m.ClaimsExtension(ext) {
			return m
		}
	}
	return nil
}

// Detection is the outcome of framework detection. Framework is nil when no
// convention matched. ProbeErrors lists pattern probes that failed and were
// recovered as "no match"; a non-empty list with a nil Framework means the
// fallback result may be degraded rather than a genuine absence.
type Detection struct {
	Module      *Module
	Framework   *Framework
	ProbeErrors []error
}

// Detect resolves the symbol's module and evaluates its frameworks against
// the workspace, highest priority first. Equal priorities keep their
// registration order. For each framework the first matching pattern makes it
// detected and stops the scan; a probe failure is recovered as a non-match
// and reported through ProbeErrors.
func (r *Registry) Detect(ctx context.Context, sym domain.SymbolInfo) Detection {
	module := r.Module(sym.Language)
	if module == nil {
		return Detection{}
	}

	// Snapshot the framework list before the first probe. A concurrent
	// Register replacing this module must not affect an in-flight detection.
	frameworks := sortedFrameworks(module.Frameworks)

	det := Detection{Module: module}
	for _, fw := range frameworks {
		for _, pattern := range fw.Patterns {
			found, err := r.probe.Exists(ctx, pattern)
			if err != nil {
				r.logger.Warn("framework probe failed",
					"language", sym.Language,
					"framework", fw.Name,
					"pattern", pattern,
					"error", err)
				det.ProbeErrors = append(det.ProbeErrors,
					fmt.Errorf("probe %s %q: %w", fw.Name, pattern, err))
				continue
			}
			if found {
				det.Framework = fw
				return det
			}
		}
	}
	return det
}

// DetectFramework returns the highest-priority framework whose marker files
// exist in the workspace, or nil when the language is unregistered or no
// convention matched.
func (r *Registry) DetectFramework(ctx context.Context, sym domain.SymbolInfo) *Framework {
	return r.Detect(ctx, sym).Framework
}

// GenerateDebugConfig synthesizes a launch configuration for the symbol.
// A detected framework's factory wins; otherwise the module default factory
// runs on the symbol's file path. Fails only with ErrUnregisteredLanguage.
func (r *Registry) GenerateDebugConfig(ctx context.Context, sym domain.SymbolInfo) (domain.DebugConfig, error) {
	det := r.Detect(ctx, sym)
	if det.Module == nil {
		return domain.DebugConfig{}, fmt.Errorf("%w: %q", ErrUnregisteredLanguage, sym.Language)
	}
	if det.Framework != nil {
		return det.Framework.DebugConfig(sym), nil
	}
	return det.Module.DefaultConfig(sym.FilePath, sym.WorkspaceRoot), nil
}

// GenerateTestConfig synthesizes a test-runner invocation for the symbol.
// It returns (nil, nil) when no framework matched or the matched framework
// defines no test factory; callers must treat absence as "no test command
// exists for this symbol", not as failure.
func (r *Registry) GenerateTestConfig(ctx context.Context, sym domain.SymbolInfo) (*domain.TestConfig, error) {
	det := r.Detect(ctx, sym)
	if det.Module == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnregisteredLanguage, sym.Language)
	}
	if det.Framework == nil || det.Framework.TestConfig == nil {
		return nil, nil
	}
	return det.Framework.TestConfig(sym), nil
}

// SupportedLanguages returns the registered language keys in registration
// order.
func (r *Registry) SupportedLanguages() []domain.Language {
	r.mu.RLock()
	defer r.mu.RUnlock()

	langs := make([]domain.Language, len(r.order))
	copy(langs, r.order)
	return langs
}

// Modules returns all registered modules in registration order.
func (r *Registry) Modules() []*Module {
	r.mu.RLock()
	defer r.mu.RUnlock()

	modules := make([]*Module, 0, len(r.order))
	for _, lang := range r.order {
		modules = append(modules, r.modules[lang])
	}
	return modules
}

// FrameworkInfo returns diagnostic projections of the language's frameworks
// in detection order. Nil when the language is unregistered.
func (r *Registry) FrameworkInfo(lang domain.Language) []FrameworkInfo {
	module := r.Module(lang)
	if module == nil {
		return nil
	}

	frameworks := sortedFrameworks(module.Frameworks)
	infos := make([]FrameworkInfo, 0, len(frameworks))
	for _, fw := range frameworks {
		patterns := make([]string, len(fw.Patterns))
		copy(patterns, fw.Patterns)
		infos = append(infos, FrameworkInfo{
			Name:     fw.Name,
			Priority: fw.Priority,
			Patterns: patterns,
			HasTest:  fw.TestConfig != nil,
			Setup:    fw.Setup,
		})
	}
	return infos
}

// sortedFrameworks returns a copy sorted by priority descending. The sort is
// stable: equal priorities keep their registration order, which is the
// documented tie-break.
func sortedFrameworks(frameworks []*Framework) []*Framework {
	sorted := make([]*Framework, len(frameworks))
	copy(sorted, frameworks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority > sorted[j].Priority
	})
	return sorted
}

func normalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
