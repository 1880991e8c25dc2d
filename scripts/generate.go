//go:build ignore

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/launchgen/core/pkg/discover"
	"github.com/launchgen/core/pkg/domain"
	"github.com/launchgen/core/pkg/launch"
	"github.com/launchgen/core/pkg/launch/modules/all"
	"github.com/launchgen/core/pkg/workspace"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: go run scripts/generate.go <workspace> [file]\n")
		os.Exit(1)
	}

	root := os.Args[1]

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	probe, err := workspace.NewProbe(root)
	if err != nil {
		fmt.Fprintf(os.Stderr, "probe error: %v\n", err)
		os.Exit(1)
	}

	registry := launch.NewRegistry(probe)
	all.Register(registry)

	var symbols []domain.SymbolInfo
	if len(os.Args) > 2 {
		symbols, err = discover.FileSymbols(ctx, os.Args[2], root)
	} else {
		var result *discover.ScanResult
		result, err = discover.Scan(ctx, root)
		if result != nil {
			symbols = result.Symbols
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "discover error: %v\n", err)
		os.Exit(1)
	}

	type entry struct {
		Symbol string              `json:"symbol"`
		File   string              `json:"file"`
		Debug  domain.DebugConfig  `json:"debug"`
		Test   *domain.TestConfig  `json:"test,omitempty"`
	}

	entries := make([]entry, 0, len(symbols))
	for _, sym := range symbols {
		debugCfg, err := registry.GenerateDebugConfig(ctx, sym)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skip %s: %v\n", sym.Name, err)
			continue
		}
		testCfg, _ := registry.GenerateTestConfig(ctx, sym)
		entries = append(entries, entry{
			Symbol: sym.QualifiedName("."),
			File:   sym.FilePath,
			Debug:  debugCfg,
			Test:   testCfg,
		})
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.Encode(entries)
}
