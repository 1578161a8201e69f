// Package tokens implements whole-build dead-code elimination and constant
// folding for CSS custom properties declared in @layer tokens blocks.
//
// Variables declared in a tokens layer are compile-time constants: each one is
// dropped (unused), kept verbatim (also assigned outside the layer), renamed to
// a short synthetic name shared by all variables with the same resolved value
// ("mangled"), or replaced by its literal value at every use site ("inlined").
// A byte-cost model picks between the last two.
package tokens

// maxResolveDepth bounds recursive value resolution so cyclic or pathologically
// deep reference chains terminate instead of exhausting the stack.
const maxResolveDepth = 10

// Token is the per-variable record tracked across one build.
type Token struct {
	// Value is the raw declared value text as first encountered in any tokens
	// layer. It may itself contain var() references. Immutable once observed.
	Value string

	// UsageCount is the number of direct plus transitively nested reference
	// sites found across all assets in the current pass.
	UsageCount int

	// SetElsewhere is true when the name is also assigned by a declaration
	// outside any tokens layer. Such a variable is never dropped, mangled or
	// inlined: the outside assignment may override it at runtime.
	SetElsewhere bool

	// IsAlias is true when Value is exactly one var() reference, i.e. the
	// variable is a pure rename of another variable.
	IsAlias bool

	// MangledName is the synthetic name assigned by the decision step, set only
	// when the variable's value group was chosen for mangling. All members of a
	// group share the same MangledName.
	MangledName string

	// EmitDeclaration marks the single canonical member of a mangled group
	// whose declaration is physically written out.
	EmitDeclaration bool
}

// Registry maps variable names (without the leading "--") to their records for
// one build. It keeps first-seen insertion order so grouping, canonical
// selection and synthetic-name assignment are deterministic across runs.
//
// A Registry lives for exactly one pass: construct, populate, analyze, decide,
// transform, discard.
type Registry struct {
	tokens map[string]*Token
	names  []string
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{tokens: make(map[string]*Token)}
}

// Lookup returns the record for name, if registered.
func (r *Registry) Lookup(name string) (*Token, bool) {
	tok, ok := r.tokens[name]
	return tok, ok
}

// Names returns all registered names in first-seen order.
func (r *Registry) Names() []string {
	return r.names
}

// Len reports the number of registered variables.
func (r *Registry) Len() int {
	return len(r.names)
}

func (r *Registry) insert(name string, tok *Token) {
	r.tokens[name] = tok
	r.names = append(r.names, name)
}

// ResetUsage clears all per-analysis state (usage counts and mangle decisions)
// so a registry can be analyzed again without stale results. Values, alias
// flags and set-elsewhere marks are observations, not decisions, and stay.
func (r *Registry) ResetUsage() {
	for _, tok := range r.tokens {
		tok.UsageCount = 0
		tok.MangledName = ""
		tok.EmitDeclaration = false
	}
}

// Resolve expands name's value to a fully literal string by recursively
// substituting nested var() references. References to unregistered names stay
// as unexpanded var() expressions, as do references past the depth ceiling;
// an unregistered name itself resolves to its own reference expression.
func (r *Registry) Resolve(name string) string {
	tok, ok := r.tokens[name]
	if !ok {
		return "var(--" + name + ")"
	}
	return r.resolveValue(tok.Value, 0)
}

func (r *Registry) resolveValue(value string, depth int) string {
	return refRegex.ReplaceAllStringFunc(value, func(match string) string {
		sub := refRegex.FindStringSubmatch(match)
		inner, ok := r.tokens[sub[1]]
		if !ok || depth+1 >= maxResolveDepth {
			return match
		}
		return r.resolveValue(inner.Value, depth+1)
	})
}
