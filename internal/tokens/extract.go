package tokens

import "strings"

// ExtractDeclarations scans every tokens layer of one asset and registers the
// custom properties declared there. The first declaration seen for a name wins
// across the whole asset set; later duplicates never overwrite the value and
// only backfill the alias flag. Conflicting duplicate values are silently
// shadowed.
func ExtractDeclarations(reg *Registry, text string) {
	for _, span := range FindTokenLayers(text) {
		for _, m := range declRegex.FindAllStringSubmatch(span.Content, -1) {
			name, value := m[1], strings.TrimSpace(m[2])
			tok, ok := reg.Lookup(name)
			if !ok {
				reg.insert(name, &Token{
					Value:   value,
					IsAlias: aliasRegex.MatchString(value),
				})
				continue
			}
			if !tok.IsAlias && aliasRegex.MatchString(value) {
				tok.IsAlias = true
			}
		}
	}
}
