package tokens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extractAll(texts ...string) *Registry {
	reg := NewRegistry()
	for _, text := range texts {
		ExtractDeclarations(reg, text)
	}
	return reg
}

func TestMarkSetElsewhere_OutsideAssignment(t *testing.T) {
	a := `@layer tokens { :root { --accent: #f00; --safe: 1px; } }`
	b := `.theme-dark { --accent: #a00; }`
	reg := extractAll(a, b)
	MarkSetElsewhere(reg, []string{a, b})

	tok, _ := reg.Lookup("accent")
	assert.True(t, tok.SetElsewhere)
	tok, _ = reg.Lookup("safe")
	assert.False(t, tok.SetElsewhere)
}

func TestMarkSetElsewhere_TokensLayerDoesNotCount(t *testing.T) {
	// The same name declared in two tokens layers is a duplicate, not an
	// outside assignment: the layers are blanked before matching.
	a := `@layer tokens { :root { --accent: #f00; } }`
	b := `@layer tokens { :root { --accent: #0f0; } }`
	reg := extractAll(a, b)
	MarkSetElsewhere(reg, []string{a, b})

	tok, _ := reg.Lookup("accent")
	assert.False(t, tok.SetElsewhere)
}

func TestMarkSetElsewhere_NoPartialNameMatch(t *testing.T) {
	a := `@layer tokens { :root { --color: #f00; } }`
	b := `.x { --color-hover: #a00; }`
	reg := extractAll(a, b)
	MarkSetElsewhere(reg, []string{a, b})

	tok, _ := reg.Lookup("color")
	assert.False(t, tok.SetElsewhere)
}

func TestCountUsages_Direct(t *testing.T) {
	decl := `@layer tokens { :root { --a: #f00; --b: 8px; } }`
	use := `.x { color: var(--a); padding: var(--a) var(--b, 4px); outline: var(--unknown); }`
	reg := extractAll(decl)
	CountUsages(reg, []string{decl, use})

	tok, _ := reg.Lookup("a")
	assert.Equal(t, 2, tok.UsageCount)
	tok, _ = reg.Lookup("b")
	assert.Equal(t, 1, tok.UsageCount)
	assert.Equal(t, 2, reg.Len(), "unknown references register nothing")
}

func TestCountUsages_IncludesTokensLayerReferences(t *testing.T) {
	// An alias declaration inside the tokens layer is itself a reference site.
	decl := `@layer tokens { :root { --base: #f00; --alias: var(--base); } }`
	use := `.x { color: var(--alias); }`
	reg := extractAll(decl)
	CountUsages(reg, []string{decl, use})

	tok, _ := reg.Lookup("base")
	// Once from the alias declaration text, once nested under the
	// var(--alias) use site.
	assert.Equal(t, 2, tok.UsageCount)
	tok, _ = reg.Lookup("alias")
	assert.Equal(t, 1, tok.UsageCount)
}

func TestCountUsages_NestedCountedOncePerName(t *testing.T) {
	// The visited set persists across the whole pass: nested uses under a
	// repeated parent are credited only on the parent's first expansion.
	decl := `@layer tokens { :root { --a: var(--c); --c: #fff; } }`
	use := `.x { color: var(--a); } .y { background: var(--a); }`
	reg := NewRegistry()
	ExtractDeclarations(reg, decl)
	reg.ResetUsage()
	CountUsages(reg, []string{use})

	tok, _ := reg.Lookup("a")
	assert.Equal(t, 2, tok.UsageCount, "direct counts are unaffected")
	tok, _ = reg.Lookup("c")
	assert.Equal(t, 1, tok.UsageCount, "nested count credited once")
}

func TestCountUsages_DiamondCountsBothParents(t *testing.T) {
	decl := `@layer tokens { :root { --a: var(--c); --b: var(--c); --c: #fff; } }`
	use := `.x { color: var(--a); background: var(--b); }`
	reg := NewRegistry()
	ExtractDeclarations(reg, decl)
	reg.ResetUsage()
	CountUsages(reg, []string{use})

	tok, _ := reg.Lookup("c")
	assert.Equal(t, 2, tok.UsageCount, "each distinct parent expands once")
}

func TestCountUsages_CycleSafe(t *testing.T) {
	decl := `@layer tokens { :root { --a: var(--b); --b: var(--a); } }`
	use := `.x { color: var(--a); }`
	reg := NewRegistry()
	ExtractDeclarations(reg, decl)
	reg.ResetUsage()
	CountUsages(reg, []string{use})

	tokA, _ := reg.Lookup("a")
	tokB, _ := reg.Lookup("b")
	require.Equal(t, 2, tokA.UsageCount, "one direct use plus one nested under b")
	require.Equal(t, 1, tokB.UsageCount)
}
