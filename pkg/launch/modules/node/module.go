// Package node provides the JavaScript/TypeScript language module: Node.js
// launch configurations with jest and mocha runner conventions. TypeScript
// symbols get the ts-node loader and a TS_NODE_PROJECT hint.
package node

import (
	"path/filepath"
	"regexp"
	"strings"

	"github.com/launchgen/core/pkg/domain"
	"github.com/launchgen/core/pkg/launch"
)

const (
	debugType = "node"
	jestName  = "jest"
	mochaName = "mocha"
)

// New creates the language module registered under the JavaScript key.
func New() *launch.Module {
	return newModule(domain.LanguageJavaScript, "JavaScript",
		[]string{".js", ".jsx", ".mjs", ".cjs"})
}

// NewTypeScript creates the same runner catalog keyed for TypeScript
// symbols.
func NewTypeScript() *launch.Module {
	return newModule(domain.LanguageTypeScript, "TypeScript",
		[]string{".ts", ".tsx", ".mts", ".cts"})
}

// newModule builds the shared catalog. The two runner conventions differ
// only in binary and filter argument style: jest filters by test-name
// pattern, mocha by grep.
func newModule(lang domain.Language, displayName string, extensions []string) *launch.Module {
	return &launch.Module{
		Language:    lang,
		DisplayName: displayName,
		Extensions:  extensions,
		DebugType:   debugType,
		Frameworks: []*launch.Framework{
			{
				Name:        jestName,
				Patterns:    []string{"**/jest.config.*"},
				Priority:    launch.PriorityPreferred,
				DebugConfig: jestDebugConfig,
				TestConfig:  jestTestConfig,
				Setup: &launch.SetupInfo{
					Description: "Jest test runner",
					InstallHint: "npm install --save-dev jest",
					DocsURL:     "https://jestjs.io/",
				},
			},
			{
				Name:        mochaName,
				Patterns:    []string{"**/.mocharc.*", "**/mocha.opts"},
				Priority:    launch.PriorityGeneric,
				DebugConfig: mochaDebugConfig,
				TestConfig:  mochaTestConfig,
				Setup: &launch.SetupInfo{
					Description: "Mocha test runner",
					InstallHint: "npm install --save-dev mocha",
					DocsURL:     "https://mochajs.org/",
				},
			},
		},
		DefaultConfig: defaultConfig,
	}
}

func isTypeScript(filePath string) bool {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".ts", ".tsx", ".mts", ".cts":
		return true
	}
	return false
}

// relFile renders the symbol's file for runner arguments: root-relative when
// possible, absolute otherwise.
func relFile(sym domain.SymbolInfo) string {
	rel, ok := domain.WorkspaceRelative(sym.FilePath, sym.WorkspaceRoot)
	if !ok {
		return filepath.ToSlash(sym.FilePath)
	}
	return rel
}

// namePattern anchors the symbol's full title (describe blocks joined with
// spaces) as a jest test-name pattern.
func namePattern(sym domain.SymbolInfo) string {
	return "^" + regexp.QuoteMeta(sym.QualifiedName(" ")) + "$"
}

func jestDebugConfig(sym domain.SymbolInfo) domain.DebugConfig {
	extra := map[string]any{
		"program": domain.WorkspaceFolder + "/node_modules/.bin/jest",
		"args":    []string{relFile(sym), "--testNamePattern", namePattern(sym), "--runInBand"},
		"cwd":     domain.WorkspaceFolder,
		"console": "integratedTerminal",
	}
	applyTypeScript(sym, extra)

	return domain.DebugConfig{
		Type:    debugType,
		Name:    "Debug jest: " + sym.Name,
		Request: domain.RequestLaunch,
		Extra:   extra,
	}
}

func jestTestConfig(sym domain.SymbolInfo) *domain.TestConfig {
	return &domain.TestConfig{
		Framework: jestName,
		Command:   "npx",
		Args:      []string{"jest", relFile(sym), "--testNamePattern", namePattern(sym)},
		Cwd:       domain.WorkspaceFolder,
	}
}

func mochaDebugConfig(sym domain.SymbolInfo) domain.DebugConfig {
	args := []string{relFile(sym), "--grep", sym.QualifiedName(" ")}
	if isTypeScript(sym.FilePath) {
		args = append(args, "--require", "ts-node/register")
	}

	extra := map[string]any{
		"program": domain.WorkspaceFolder + "/node_modules/.bin/mocha",
		"args":    args,
		"cwd":     domain.WorkspaceFolder,
		"console": "integratedTerminal",
	}
	if isTypeScript(sym.FilePath) {
		extra["env"] = map[string]string{"TS_NODE_PROJECT": tsconfigPath()}
	}

	return domain.DebugConfig{
		Type:    debugType,
		Name:    "Debug mocha: " + sym.Name,
		Request: domain.RequestLaunch,
		Extra:   extra,
	}
}

func mochaTestConfig(sym domain.SymbolInfo) *domain.TestConfig {
	args := []string{mochaName, relFile(sym), "--grep", sym.QualifiedName(" ")}
	if isTypeScript(sym.FilePath) {
		args = append(args, "--require", "ts-node/register")
	}

	return &domain.TestConfig{
		Framework: mochaName,
		Command:   "npx",
		Args:      args,
		Cwd:       domain.WorkspaceFolder,
	}
}

func defaultConfig(filePath, workspaceRoot string) domain.DebugConfig {
	extra := map[string]any{
		"program": domain.TemplatePath(filePath, workspaceRoot),
		"cwd":     domain.WorkspaceFolder,
	}
	if isTypeScript(filePath) {
		extra["runtimeArgs"] = []string{"-r", "ts-node/register"}
		extra["env"] = map[string]string{"TS_NODE_PROJECT": tsconfigPath()}
	}

	return domain.DebugConfig{
		Type:    debugType,
		Name:    "Launch " + filepath.Base(filePath),
		Request: domain.RequestLaunch,
		Extra:   extra,
	}
}

// applyTypeScript toggles the ts-node loader and the project file hint for
// TypeScript symbols.
func applyTypeScript(sym domain.SymbolInfo, extra map[string]any) {
	if !isTypeScript(sym.FilePath) {
		return
	}
	extra["runtimeArgs"] = []string{"-r", "ts-node/register"}
	extra["env"] = map[string]string{"TS_NODE_PROJECT": tsconfigPath()}
}

func tsconfigPath() string {
	return domain.WorkspaceFolder + "/tsconfig.json"
}
