package tokens

import "regexp"

// MarkSetElsewhere flags every registered variable that is also assigned by a
// declaration outside any tokens layer, anywhere in the asset set. Each text
// is scanned with its tokens layers blanked out (equal-length whitespace, so
// offsets are preserved) to keep the layer's own declarations from matching.
// The flag is sticky for the rest of the pass.
func MarkSetElsewhere(reg *Registry, texts []string) {
	blanked := make([]string, len(texts))
	for i, text := range texts {
		blanked[i] = blankTokenLayers(text)
	}
	for _, name := range reg.Names() {
		tok, _ := reg.Lookup(name)
		if tok.SetElsewhere {
			continue
		}
		assign := regexp.MustCompile(`--` + regexp.QuoteMeta(name) + `\s*:`)
		for _, text := range blanked {
			if assign.MatchString(text) {
				tok.SetElsewhere = true
				break
			}
		}
	}
}

// CountUsages scans every asset's full original text (tokens layers included)
// for var() references and bumps the usage count of each registered name. A
// reference to a variable whose own value references further variables counts
// as a use of those too, recursively.
//
// The visited set guarding the nested recursion is shared across the whole
// counting pass rather than reset per top-level reference, so in diamond-shaped
// reference graphs nested uses are credited only on the first expansion.
// Known asymmetry; downstream decisions depend on the resulting counts.
func CountUsages(reg *Registry, texts []string) {
	visited := make(map[string]bool)
	for _, text := range texts {
		for _, m := range refRegex.FindAllStringSubmatch(text, -1) {
			tok, ok := reg.Lookup(m[1])
			if !ok {
				continue
			}
			tok.UsageCount++
			countNested(reg, m[1], visited)
		}
	}
}

func countNested(reg *Registry, name string, visited map[string]bool) {
	if visited[name] {
		return
	}
	visited[name] = true
	tok, _ := reg.Lookup(name)
	for _, m := range refRegex.FindAllStringSubmatch(tok.Value, -1) {
		inner, ok := reg.Lookup(m[1])
		if !ok {
			continue
		}
		inner.UsageCount++
		countNested(reg, m[1], visited)
	}
}
