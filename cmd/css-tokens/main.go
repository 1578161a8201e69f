// Package main provides a tool that dead-code-eliminates and constant-folds
// CSS custom properties declared in @layer tokens blocks of a bundled output
// directory.
// Run: go run ./cmd/css-tokens -dir dist
package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"csstokens/internal/assets"
	"csstokens/internal/config"
	"csstokens/internal/report"
	"csstokens/internal/tokens"
)

func main() {
	var (
		configPath = flag.String("config", "css-tokens.toml", "Path to the options file")
		dir        = flag.String("dir", "", "Bundled output directory (overrides config)")
		prefix     = flag.String("prefix", "", "Synthetic name prefix (overrides config)")
		verbose    = flag.Bool("verbose", false, "Report per-file size deltas")
		check      = flag.Bool("check", false, "Exit non-zero if any file would change, without writing")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *dir != "" {
		cfg.Dir = *dir
	}
	if *prefix != "" {
		cfg.Prefix = *prefix
	}
	if *verbose {
		cfg.Verbose = true
	}

	list, err := assets.Load(cfg.Dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	changed, stats := tokens.Run(list, tokens.Options{Prefix: cfg.Prefix})
	rep := report.New(os.Stdout, cfg.Verbose)

	if len(changed) == 0 {
		rep.Unchanged()
		return
	}

	ids := make([]string, 0, len(changed))
	for id := range changed {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	if *check {
		rep.CheckFailed(ids)
		os.Exit(1)
	}

	before := make(map[string]string, len(list))
	for _, asset := range list {
		before[asset.ID] = asset.Text
	}
	for _, id := range ids {
		if err := assets.Write(cfg.Dir, id, changed[id]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		rep.AssetChanged(id, before[id], changed[id])
	}
	rep.Summary(len(ids), stats)
}
