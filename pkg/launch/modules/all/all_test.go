package all

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchgen/core/pkg/domain"
	"github.com/launchgen/core/pkg/launch"
	"github.com/launchgen/core/pkg/workspace"
)

func TestRegister(t *testing.T) {
	t.Parallel()

	r := launch.NewRegistry(launch.NoProbe)
	Register(r)

	langs := r.SupportedLanguages()
	assert.ElementsMatch(t, []domain.Language{
		domain.LanguageGo,
		domain.LanguagePython,
		domain.LanguageJavaScript,
		domain.LanguageTypeScript,
	}, langs)

	assert.Equal(t, domain.LanguageGo, r.ModuleByExtension(".go").Language)
	assert.Equal(t, domain.LanguagePython, r.ModuleByExtension(".py").Language)
	assert.Equal(t, domain.LanguageJavaScript, r.ModuleByExtension(".jsx").Language)
	assert.Equal(t, domain.LanguageTypeScript, r.ModuleByExtension(".tsx").Language)
}

// TestGenerateAgainstWorkspace drives the whole pipeline against a real
// on-disk project layout: pytest markers on disk promote pytest over
// unittest, and a workspace without runner markers falls back to the module
// default.
func TestGenerateAgainstWorkspace(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "tests"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "pytest.ini"), []byte("[pytest]\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "tests", "test_user.py"), []byte("def test_login():\n    pass\n"), 0o644))

	probe, err := workspace.NewProbe(root)
	require.NoError(t, err)

	r := launch.NewRegistry(probe)
	Register(r)

	sym := domain.SymbolInfo{
		Name:          "test_login",
		Path:          []string{"test_login"},
		Kind:          domain.SymbolKindFunction,
		Language:      domain.LanguagePython,
		FilePath:      filepath.Join(root, "tests", "test_user.py"),
		WorkspaceRoot: root,
	}

	fw := r.DetectFramework(context.Background(), sym)
	require.NotNil(t, fw)
	assert.Equal(t, "pytest", fw.Name)

	cfg, err := r.GenerateDebugConfig(context.Background(), sym)
	require.NoError(t, err)
	assert.Equal(t, "debugpy", cfg.Type)
	assert.Equal(t, "pytest", cfg.Extra["module"])

	testCfg, err := r.GenerateTestConfig(context.Background(), sym)
	require.NoError(t, err)
	require.NotNil(t, testCfg)
	assert.Equal(t, []string{"-m", "pytest", "tests/test_user.py::test_login", "-v"}, testCfg.Args)
}

func TestGenerateFallsBackWithoutMarkers(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "main.go"), []byte("package main\n"), 0o644))

	probe, err := workspace.NewProbe(root)
	require.NoError(t, err)

	r := launch.NewRegistry(probe)
	Register(r)

	sym := domain.SymbolInfo{
		Name:          "main",
		Path:          []string{"main", "main"},
		Kind:          domain.SymbolKindFunction,
		Language:      domain.LanguageGo,
		FilePath:      filepath.Join(root, "main.go"),
		WorkspaceRoot: root,
	}

	// No *_test.go in the workspace, so go-test does not match and the
	// framework factory never runs.
	assert.Nil(t, r.DetectFramework(context.Background(), sym))

	cfg, err := r.GenerateDebugConfig(context.Background(), sym)
	require.NoError(t, err)
	assert.Equal(t, "go", cfg.Type)
	assert.Equal(t, "Launch main.go", cfg.Name)
	assert.Equal(t, "auto", cfg.Extra["mode"])

	testCfg, err := r.GenerateTestConfig(context.Background(), sym)
	require.NoError(t, err)
	assert.Nil(t, testCfg)
}
