package tokens

// LayerSpan is the byte range of one @layer tokens block in an asset's text,
// plus the inner text between its braces. Purely a scanning artifact.
type LayerSpan struct {
	Start   int // offset of "@layer"
	End     int // offset one past the closing brace
	Content string
}

// FindTokenLayers returns every top-level @layer tokens block in text.
// Nested braces inside the block are matched by depth counting; a block with
// unbalanced braces extends to the end of the text.
func FindTokenLayers(text string) []LayerSpan {
	var spans []LayerSpan
	prevEnd := 0
	for _, loc := range layerOpenRegex.FindAllStringIndex(text, -1) {
		if loc[0] < prevEnd {
			// Opening inside an already-claimed block; not top-level.
			continue
		}
		contentStart := loc[1]
		contentEnd := len(text)
		end := len(text)
		depth := 1
		for i := contentStart; i < len(text); i++ {
			switch text[i] {
			case '{':
				depth++
			case '}':
				depth--
			}
			if depth == 0 {
				contentEnd = i
				end = i + 1
				break
			}
		}
		spans = append(spans, LayerSpan{
			Start:   loc[0],
			End:     end,
			Content: text[contentStart:contentEnd],
		})
		prevEnd = end
	}
	return spans
}

// blankTokenLayers replaces every tokens layer block in text with equal-length
// whitespace, so byte offsets of the surrounding text stay put.
func blankTokenLayers(text string) string {
	spans := FindTokenLayers(text)
	if len(spans) == 0 {
		return text
	}
	b := []byte(text)
	for _, span := range spans {
		for i := span.Start; i < span.End; i++ {
			b[i] = ' '
		}
	}
	return string(b)
}
