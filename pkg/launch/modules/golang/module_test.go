package golang

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/launchgen/core/pkg/domain"
)

func goSymbol(name, filePath string, path ...string) domain.SymbolInfo {
	if len(path) == 0 {
		path = []string{name}
	}
	return domain.SymbolInfo{
		Name:          name,
		Path:          path,
		Kind:          domain.SymbolKindFunction,
		Language:      domain.LanguageGo,
		FilePath:      filePath,
		WorkspaceRoot: "/workspace",
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	m := New()

	assert.Equal(t, domain.LanguageGo, m.Language)
	assert.Equal(t, "go", m.DebugType)
	assert.True(t, m.ClaimsExtension(".go"))
	require.Len(t, m.Frameworks, 1)
	assert.Equal(t, "go-test", m.Frameworks[0].Name)
	assert.NotNil(t, m.DefaultConfig)
}

func TestDebugConfig_TestFunction(t *testing.T) {
	t.Parallel()

	sym := goSymbol("TestAddition", "/workspace/calc/calc_test.go")

	cfg := debugConfig(sym)

	assert.Equal(t, "go", cfg.Type)
	assert.Equal(t, domain.RequestLaunch, cfg.Request)
	assert.Equal(t, "Debug Test TestAddition", cfg.Name)
	assert.Equal(t, "test", cfg.Extra["mode"])
	assert.Equal(t, "${workspaceFolder}/calc", cfg.Extra["program"])
	assert.Equal(t, []string{"-test.run", "^TestAddition$", "-test.v"}, cfg.Extra["args"])
}

func TestDebugConfig_Benchmark(t *testing.T) {
	t.Parallel()

	sym := goSymbol("BenchmarkSort", "/workspace/sort/sort_test.go")

	cfg := debugConfig(sym)

	assert.Equal(t, "Debug Benchmark BenchmarkSort", cfg.Name)
	assert.Equal(t, "test", cfg.Extra["mode"])
	assert.Equal(t,
		[]string{"-test.bench", "^BenchmarkSort$", "-test.run", "^$", "-test.v"},
		cfg.Extra["args"])
}

func TestDebugConfig_EntryPoint(t *testing.T) {
	t.Parallel()

	sym := goSymbol("main", "/workspace/cmd/tool/main.go", "main", "main")

	cfg := debugConfig(sym)

	assert.Equal(t, "Debug main.go", cfg.Name)
	assert.Equal(t, "debug", cfg.Extra["mode"])
	assert.Equal(t, "${workspaceFolder}/cmd/tool", cfg.Extra["program"])
}

func TestDebugConfig_PlainFunction(t *testing.T) {
	t.Parallel()

	sym := goSymbol("Parse", "/workspace/internal/parser/parser.go")

	cfg := debugConfig(sym)

	assert.Equal(t, "Debug Parse", cfg.Name)
	assert.Equal(t, "auto", cfg.Extra["mode"])
	assert.NotContains(t, cfg.Extra, "args")
}

func TestDebugConfig_TestPrefixOutsideTestFile(t *testing.T) {
	t.Parallel()

	// A Test-prefixed name in a non-test file is an ordinary function.
	sym := goSymbol("TestHelper", "/workspace/internal/helper.go")

	cfg := debugConfig(sym)

	assert.Equal(t, "auto", cfg.Extra["mode"])
}

func TestDebugConfig_ProgramNeverContainsRoot(t *testing.T) {
	t.Parallel()

	for _, sym := range []domain.SymbolInfo{
		goSymbol("TestX", "/workspace/pkg/x/x_test.go"),
		goSymbol("Run", "/workspace/run.go"),
		goSymbol("main", "/workspace/cmd/app/main.go", "main", "main"),
	} {
		cfg := debugConfig(sym)
		program, ok := cfg.Extra["program"].(string)
		require.True(t, ok)
		assert.False(t, strings.Contains(program, sym.WorkspaceRoot),
			"program %q leaks the workspace root", program)
	}
}

func TestTestConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		sym      domain.SymbolInfo
		wantArgs []string
	}{
		{
			name:     "test function",
			sym:      goSymbol("TestAddition", "/workspace/calc/calc_test.go"),
			wantArgs: []string{"test", "-run", "^TestAddition$", "-v", "./calc"},
		},
		{
			name:     "fuzz target",
			sym:      goSymbol("FuzzParse", "/workspace/parser_test.go"),
			wantArgs: []string{"test", "-run", "^FuzzParse$", "-v", "."},
		},
		{
			name:     "benchmark",
			sym:      goSymbol("BenchmarkSort", "/workspace/sort/sort_test.go"),
			wantArgs: []string{"test", "-bench", "^BenchmarkSort$", "-run", "^$", "-v", "./sort"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := testConfig(tt.sym)

			require.NotNil(t, cfg)
			assert.Equal(t, "go-test", cfg.Framework)
			assert.Equal(t, "go", cfg.Command)
			assert.Equal(t, tt.wantArgs, cfg.Args)
			assert.Equal(t, domain.WorkspaceFolder, cfg.Cwd)
		})
	}
}

func TestTestConfig_NoCommandForPlainSymbols(t *testing.T) {
	t.Parallel()

	assert.Nil(t, testConfig(goSymbol("Parse", "/workspace/parser.go")))
	assert.Nil(t, testConfig(goSymbol("main", "/workspace/main.go", "main", "main")))
}

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig("/workspace/tool/main.go", "/workspace")

	assert.Equal(t, "go", cfg.Type)
	assert.Equal(t, "Launch main.go", cfg.Name)
	assert.Equal(t, "auto", cfg.Extra["mode"])
	assert.Equal(t, "${workspaceFolder}/tool", cfg.Extra["program"])
}

func TestPackageArg(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		file string
		root string
		want string
	}{
		{"nested package", "/workspace/internal/calc/calc.go", "/workspace", "./internal/calc"},
		{"root package", "/workspace/main.go", "/workspace", "."},
		{"outside workspace", "/elsewhere/pkg/x.go", "/workspace", "/elsewhere/pkg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, packageArg(tt.file, tt.root))
		})
	}
}
