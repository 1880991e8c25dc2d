// Package golang provides the Go language module: delve-based launch
// configurations and the go test runner convention.
package golang

import (
	"path/filepath"
	"strings"

	"github.com/launchgen/core/pkg/domain"
	"github.com/launchgen/core/pkg/launch"
)

const (
	debugType      = "go"
	frameworkName  = "go-test"
	testFileSuffix = "_test.go"
	entryFunction  = "main"
	entryPackage   = "main"
)

// New creates the Go language module.
func New() *launch.Module {
	return &launch.Module{
		Language:    domain.LanguageGo,
		DisplayName: "Go",
		Extensions:  []string{".go"},
		DebugType:   debugType,
		Frameworks: []*launch.Framework{
			{
				Name:        frameworkName,
				Patterns:    []string{"**/*_test.go"},
				Priority:    launch.PriorityGeneric,
				DebugConfig: debugConfig,
				TestConfig:  testConfig,
				Setup: &launch.SetupInfo{
					Description: "Standard library testing package run through go test",
					InstallHint: "go install github.com/go-delve/delve/cmd/dlv@latest",
					DocsURL:     "https://pkg.go.dev/testing",
				},
			},
		},
		DefaultConfig: defaultConfig,
	}
}

type symbolClass int

const (
	classPlain symbolClass = iota
	classTest
	classBenchmark
	classEntry
)

// classify is total: every symbol falls into exactly one class, so the
// generators below never fail.
func classify(sym domain.SymbolInfo) symbolClass {
	if strings.HasSuffix(filepath.Base(sym.FilePath), testFileSuffix) {
		switch {
		case strings.HasPrefix(sym.Name, "Benchmark"):
			return classBenchmark
		case hasTestPrefix(sym.Name):
			return classTest
		}
	}

	if sym.Name == entryFunction && pathContains(sym.Path, entryPackage) {
		return classEntry
	}
	return classPlain
}

func hasTestPrefix(name string) bool {
	for _, prefix := range []string{"Test", "Example", "Fuzz"} {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func pathContains(path []string, segment string) bool {
	for _, p := range path {
		if p == segment {
			return true
		}
	}
	return false
}

// debugConfig launches the symbol's containing package directory. Test-style
// symbols run in delve's test mode filtered to the exact symbol name; the
// entry point runs in debug mode; everything else uses auto-detect mode.
func debugConfig(sym domain.SymbolInfo) domain.DebugConfig {
	program := domain.TemplateDir(sym.FilePath, sym.WorkspaceRoot)

	cfg := domain.DebugConfig{
		Type:    debugType,
		Request: domain.RequestLaunch,
	}

	switch classify(sym) {
	case classTest:
		cfg.Name = "Debug Test " + sym.Name
		cfg.Extra = map[string]any{
			"mode":    "test",
			"program": program,
			"args":    []string{"-test.run", anchored(sym.Name), "-test.v"},
		}
	case classBenchmark:
		cfg.Name = "Debug Benchmark " + sym.Name
		cfg.Extra = map[string]any{
			"mode":    "test",
			"program": program,
			// -test.run ^$ keeps ordinary tests out of the benchmark run.
			"args": []string{"-test.bench", anchored(sym.Name), "-test.run", "^$", "-test.v"},
		}
	case classEntry:
		cfg.Name = "Debug " + filepath.Base(sym.FilePath)
		cfg.Extra = map[string]any{
			"mode":    "debug",
			"program": program,
		}
	default:
		cfg.Name = "Debug " + sym.Name
		cfg.Extra = map[string]any{
			"mode":    "auto",
			"program": program,
		}
	}
	return cfg
}

// testConfig builds a go test invocation for test-style symbols. Plain and
// entry-point symbols have no test command.
func testConfig(sym domain.SymbolInfo) *domain.TestConfig {
	class := classify(sym)
	if class != classTest && class != classBenchmark {
		return nil
	}

	pkg := packageArg(sym.FilePath, sym.WorkspaceRoot)
	args := []string{"test"}
	if class == classBenchmark {
		args = append(args, "-bench", anchored(sym.Name), "-run", "^$")
	} else {
		args = append(args, "-run", anchored(sym.Name))
	}
	args = append(args, "-v", pkg)

	return &domain.TestConfig{
		Framework: frameworkName,
		Command:   "go",
		Args:      args,
		Cwd:       domain.WorkspaceFolder,
	}
}

func defaultConfig(filePath, workspaceRoot string) domain.DebugConfig {
	return domain.DebugConfig{
		Type:    debugType,
		Name:    "Launch " + filepath.Base(filePath),
		Request: domain.RequestLaunch,
		Extra: map[string]any{
			"mode":    "auto",
			"program": domain.TemplateDir(filePath, workspaceRoot),
		},
	}
}

// packageArg renders the symbol's package directory as a go test target
// relative to the module root.
func packageArg(filePath, workspaceRoot string) string {
	dir := filepath.ToSlash(filepath.Dir(filePath))
	rel, ok := domain.WorkspaceRelative(dir, workspaceRoot)
	if !ok {
		return dir
	}
	if rel == "." {
		return "."
	}
	return "./" + rel
}

func anchored(name string) string {
	return "^" + name + "$"
}
