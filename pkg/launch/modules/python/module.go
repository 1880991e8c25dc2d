// Package python provides the Python language module: debugpy-based launch
// configurations with pytest and unittest runner conventions.
package python

import (
	"path/filepath"
	"strings"

	"github.com/launchgen/core/pkg/domain"
	"github.com/launchgen/core/pkg/launch"
)

const (
	debugType    = "debugpy"
	pytestName   = "pytest"
	unittestName = "unittest"
)

// New creates the Python language module. pytest outranks unittest: its
// marker files are an explicit opt-in, while unittest matches on loose file
// naming alone.
func New() *launch.Module {
	return &launch.Module{
		Language:    domain.LanguagePython,
		DisplayName: "Python",
		Extensions:  []string{".py"},
		DebugType:   debugType,
		Frameworks: []*launch.Framework{
			{
				Name:        pytestName,
				Patterns:    []string{"**/pytest.ini", "**/conftest.py"},
				Priority:    launch.PriorityPreferred,
				DebugConfig: pytestDebugConfig,
				TestConfig:  pytestTestConfig,
				Setup: &launch.SetupInfo{
					Description: "pytest test runner",
					InstallHint: "pip install pytest",
					DocsURL:     "https://docs.pytest.org/",
				},
			},
			{
				Name:        unittestName,
				Patterns:    []string{"**/test_*.py", "**/*_test.py"},
				Priority:    launch.PriorityGeneric,
				DebugConfig: unittestDebugConfig,
				TestConfig:  unittestTestConfig,
				Setup: &launch.SetupInfo{
					Description: "Standard library unittest runner",
					DocsURL:     "https://docs.python.org/3/library/unittest.html",
				},
			},
		},
		DefaultConfig: defaultConfig,
	}
}

// nodeID builds the pytest selection reference: the root-relative file path
// followed by the symbol's qualified scopes, joined with "::"
// (e.g., "tests/test_user.py::TestUser::test_login").
func nodeID(sym domain.SymbolInfo) string {
	file, ok := domain.WorkspaceRelative(sym.FilePath, sym.WorkspaceRoot)
	if !ok {
		file = filepath.ToSlash(sym.FilePath)
	}

	parts := append([]string{file}, sym.Path...)
	return strings.Join(parts, "::")
}

// dottedTarget builds the unittest selection reference: the module path from
// the extension-stripped relative file plus the symbol's qualified scopes,
// joined with "." (e.g., "tests.test_user.TestUser.test_login").
func dottedTarget(sym domain.SymbolInfo) string {
	file, ok := domain.WorkspaceRelative(sym.FilePath, sym.WorkspaceRoot)
	if !ok {
		file = filepath.Base(sym.FilePath)
	}

	module := strings.TrimSuffix(file, ".py")
	module = strings.ReplaceAll(module, "/", ".")

	parts := append([]string{module}, sym.Path...)
	return strings.Join(parts, ".")
}

func pytestDebugConfig(sym domain.SymbolInfo) domain.DebugConfig {
	return domain.DebugConfig{
		Type:    debugType,
		Name:    "Debug pytest: " + sym.Name,
		Request: domain.RequestLaunch,
		Extra: map[string]any{
			"module":     pytestName,
			"args":       []string{nodeID(sym), "-v"},
			"cwd":        domain.WorkspaceFolder,
			"env":        map[string]string{"PYTHONPATH": domain.WorkspaceFolder},
			"console":    "integratedTerminal",
			"justMyCode": true,
		},
	}
}

func pytestTestConfig(sym domain.SymbolInfo) *domain.TestConfig {
	return &domain.TestConfig{
		Framework: pytestName,
		Command:   "python",
		Args:      []string{"-m", "pytest", nodeID(sym), "-v"},
		Env:       map[string]string{"PYTHONPATH": domain.WorkspaceFolder},
		Cwd:       domain.WorkspaceFolder,
	}
}

func unittestDebugConfig(sym domain.SymbolInfo) domain.DebugConfig {
	return domain.DebugConfig{
		Type:    debugType,
		Name:    "Debug unittest: " + sym.Name,
		Request: domain.RequestLaunch,
		Extra: map[string]any{
			"module":     unittestName,
			"args":       []string{dottedTarget(sym), "-v"},
			"cwd":        domain.WorkspaceFolder,
			"env":        map[string]string{"PYTHONPATH": domain.WorkspaceFolder},
			"console":    "integratedTerminal",
			"justMyCode": true,
		},
	}
}

func unittestTestConfig(sym domain.SymbolInfo) *domain.TestConfig {
	return &domain.TestConfig{
		Framework: unittestName,
		Command:   "python",
		Args:      []string{"-m", "unittest", dottedTarget(sym), "-v"},
		Env:       map[string]string{"PYTHONPATH": domain.WorkspaceFolder},
		Cwd:       domain.WorkspaceFolder,
	}
}

func defaultConfig(filePath, workspaceRoot string) domain.DebugConfig {
	return domain.DebugConfig{
		Type:    debugType,
		Name:    "Launch " + filepath.Base(filePath),
		Request: domain.RequestLaunch,
		Extra: map[string]any{
			"program":    domain.TemplatePath(filePath, workspaceRoot),
			"cwd":        domain.WorkspaceFolder,
			"console":    "integratedTerminal",
			"justMyCode": true,
		},
	}
}
