package launch

import "github.com/launchgen/core/pkg/domain"

// Module is the catalog of framework conventions and default behavior for
// one programming language. A module is immutable once registered; the
// registry never mutates its framework list.
type Module struct {
	// Language is the registry lookup key.
	Language domain.Language

	// DisplayName is the human-readable language name.
	DisplayName string

	// Extensions are the file extensions this module claims, with leading
	// dots (".go", ".py"). Matching is case-insensitive.
	Extensions []string

	// DebugType is the debug adapter identifier used by this module's
	// generators (e.g., "go", "debugpy", "node").
	DebugType string

	// Frameworks are the module's conventions. Registration order is the
	// tie-break between equal priorities.
	Frameworks []*Framework

	// DefaultConfig is the fallback factory used when no framework is
	// detected. Required.
	DefaultConfig DefaultConfigFunc
}

// ClaimsExtension reports whether the module recognizes the extension.
// The comparison is case-insensitive and tolerates a missing leading dot.
func (m *Module) ClaimsExtension(ext string) bool {
	normalized := normalizeExt(ext)
	for _, e := range m.Extensions {
		if normalizeExt(e) == normalized {
			return true
		}
	}
	return false
}

// FrameworkByName returns the named framework, or nil.
func (m *Module) FrameworkByName(name string) *Framework {
	for _, fw := range m.Frameworks {
		if fw.Name == name {
			return fw
		}
	}
	return nil
}
