// Package launch implements the language-module registry and the debug
// configuration generation engine. Each language registers a module holding
// priority-ordered framework conventions; detection probes the workspace for
// framework marker files and the winning framework synthesizes the
// configuration for a symbol.
package launch

import "github.com/launchgen/core/pkg/domain"

// Priority constants determine the order in which frameworks are probed
// during detection. Higher priority frameworks are evaluated first.
//
// Use increments of 50 to allow for future insertions between levels.
const (
	// PriorityFallback is for loose filename conventions that many projects
	// satisfy incidentally.
	PriorityFallback = 50

	// PriorityGeneric is for common, general-purpose runner conventions.
	// Examples: unittest, mocha.
	PriorityGeneric = 100

	// PriorityPreferred is for runner conventions with dedicated marker
	// files; their presence should always outrank a loose filename match.
	// Examples: pytest, jest.
	PriorityPreferred = 150
)

// DebugConfigFunc synthesizes a launch configuration for a symbol.
type DebugConfigFunc func(sym domain.SymbolInfo) domain.DebugConfig

// TestConfigFunc synthesizes a test-runner invocation for a symbol.
type TestConfigFunc func(sym domain.SymbolInfo) *domain.TestConfig

// DefaultConfigFunc is a module's fallback configuration factory. It is a
// pure function of its arguments and must not consult the file system.
type DefaultConfigFunc func(filePath, workspaceRoot string) domain.DebugConfig

// Framework is a named testing/debugging convention owned by exactly one
// language module.
type Framework struct {
	// Name is unique within the owning module.
	Name string

	// Patterns are glob patterns probed for existence against the live
	// workspace. Any single match makes the framework detected.
	Patterns []string

	// Priority ranks this framework against its siblings; higher wins.
	Priority int

	// DebugConfig builds a launch configuration for a symbol.
	DebugConfig DebugConfigFunc

	// TestConfig builds a test-runner invocation for a symbol. Nil when the
	// framework has no test command; absence is a valid outcome, not an
	// error.
	TestConfig TestConfigFunc

	// Setup is optional human-readable installation metadata. Not part of
	// detection or generation.
	Setup *SetupInfo
}

// SetupInfo carries human-readable onboarding hints for a framework.
type SetupInfo struct {
	Description string `json:"description,omitempty"`
	InstallHint string `json:"installHint,omitempty"`
	DocsURL     string `json:"docsUrl,omitempty"`
}

// FrameworkInfo is a read-only projection of a framework for diagnostics
// and UI listings.
type FrameworkInfo struct {
	Name     string     `json:"name"`
	Priority int        `json:"priority"`
	Patterns []string   `json:"patterns"`
	HasTest  bool       `json:"hasTest"`
	Setup    *SetupInfo `json:"setup,omitempty"`
}
