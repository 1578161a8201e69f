package tokens

import "strings"

// TransformAsset rewrites one asset's text according to the registry's
// decisions and returns the result, which may equal the input.
//
// Declarations first: tokens layers are rewritten last-to-first so earlier
// span offsets stay valid. Within a layer, each declaration is dropped
// (unused), kept verbatim (set elsewhere), or replaced by the canonical
// mangled declaration; non-canonical group members and inlined variables emit
// nothing. A per-asset set of already-emitted resolved values keeps an asset
// from declaring the same value twice no matter how many original names map
// to it. Surviving declarations are re-emitted as one collapsed layer block.
//
// References second, over the already-rewritten text: mangled variables are
// re-pointed at their synthetic name (fallback clause preserved), variables
// not set elsewhere are replaced by their resolved literal value, and
// everything else is left alone.
func TransformAsset(reg *Registry, text string) string {
	spans := FindTokenLayers(text)
	emittedValues := make(map[string]bool)
	for i := len(spans) - 1; i >= 0; i-- {
		span := spans[i]
		var kept []string
		for _, m := range declRegex.FindAllStringSubmatch(span.Content, -1) {
			name, rawValue := m[1], strings.TrimSpace(m[2])
			tok, ok := reg.Lookup(name)
			if !ok {
				continue
			}
			switch {
			case tok.SetElsewhere:
				// An outside assignment may override this at runtime;
				// pass it through untouched.
				kept = append(kept, "--"+name+":"+rawValue+";")
			case tok.UsageCount == 0:
				// Dropped.
			case tok.MangledName != "" && tok.EmitDeclaration:
				value := reg.Resolve(name)
				if !emittedValues[value] {
					emittedValues[value] = true
					kept = append(kept, tok.MangledName+":"+value+";")
				}
			}
		}
		replacement := ""
		if len(kept) > 0 {
			replacement = "@layer tokens{:root{" + strings.Join(kept, "") + "}}"
		}
		text = text[:span.Start] + replacement + text[span.End:]
	}

	return refRegex.ReplaceAllStringFunc(text, func(match string) string {
		sub := refRegex.FindStringSubmatch(match)
		name, fallback := sub[1], sub[2]
		tok, ok := reg.Lookup(name)
		if !ok {
			return match
		}
		if tok.MangledName != "" {
			return "var(" + tok.MangledName + fallback + ")"
		}
		if !tok.SetElsewhere {
			return reg.Resolve(name)
		}
		return match
	})
}
