package tokens

import "fmt"

// DefaultPrefix is the synthetic-name prefix used when none is configured.
const DefaultPrefix = "--_"

// Asset is one style-sheet produced by a completed bundling step.
type Asset struct {
	ID   string
	Text string
}

// Options configures one pass.
type Options struct {
	// Prefix is prepended to the base-36 counter when forming synthetic names.
	// Defaults to DefaultPrefix.
	Prefix string
}

// Stats summarizes what one pass did with the registered variables.
type Stats struct {
	Dropped       int // unused, deleted everywhere
	Inlined       int // declaration removed, literal substituted at use sites
	Mangled       int // renamed to a shared synthetic name
	MangledValues int // distinct values behind the mangled names
	Kept          int // set elsewhere, passed through untouched
}

func (s Stats) String() string {
	return fmt.Sprintf("dropped %d, inlined %d, mangled %d (%d values), kept %d",
		s.Dropped, s.Inlined, s.Mangled, s.MangledValues, s.Kept)
}

// Run executes the full analysis and rewrite over one build's assets. It
// returns the replacement text for each asset whose content changed, keyed by
// asset ID, plus summary statistics. With no assets or no tokens-layer
// variables the pass is a no-op.
//
// The registry is created here and discarded on return; nothing is shared
// between invocations.
func Run(assets []Asset, opts Options) (map[string]string, Stats) {
	changed := make(map[string]string)
	var stats Stats
	if len(assets) == 0 {
		return changed, stats
	}

	reg := NewRegistry()
	for _, asset := range assets {
		ExtractDeclarations(reg, asset.Text)
	}
	if reg.Len() == 0 {
		return changed, stats
	}

	reg.ResetUsage()
	texts := make([]string, len(assets))
	for i, asset := range assets {
		texts[i] = asset.Text
	}
	MarkSetElsewhere(reg, texts)
	CountUsages(reg, texts)
	Decide(reg, prefixOrDefault(opts.Prefix))
	stats = summarize(reg)

	for _, asset := range assets {
		if out := TransformAsset(reg, asset.Text); out != asset.Text {
			changed[asset.ID] = out
		}
	}
	return changed, stats
}

func prefixOrDefault(prefix string) string {
	if prefix == "" {
		return DefaultPrefix
	}
	return prefix
}

func summarize(reg *Registry) Stats {
	var stats Stats
	for _, name := range reg.Names() {
		tok, _ := reg.Lookup(name)
		switch {
		case tok.SetElsewhere:
			stats.Kept++
		case tok.UsageCount == 0:
			stats.Dropped++
		case tok.MangledName != "":
			stats.Mangled++
			if tok.EmitDeclaration {
				stats.MangledValues++
			}
		default:
			stats.Inlined++
		}
	}
	return stats
}
