package tokens

import "strconv"

// valueGroup collects the variables that share one fully resolved value.
// Members are interchangeable for emission purposes regardless of how their
// declarations were spelled.
type valueGroup struct {
	value   string
	members []string
}

// Decide groups every live variable (used at least once, not set elsewhere) by
// resolved value and chooses per group between mangling and inlining.
//
// Mangled groups get prefix + base-36 counter as their shared synthetic name;
// the counter only advances for groups that actually mangle, and group order
// follows registry insertion order, so names are stable across runs. The cost
// model counts emitted characters: a declaration costs len(name)+2+len(value)+1
// and each reference costs 5+len(name)+1. Mangling wins only on strictly lower
// cost; ties inline.
func Decide(reg *Registry, prefix string) {
	var order []*valueGroup
	byValue := make(map[string]*valueGroup)
	for _, name := range reg.Names() {
		tok, _ := reg.Lookup(name)
		if tok.SetElsewhere || tok.UsageCount == 0 {
			continue
		}
		value := reg.Resolve(name)
		g, ok := byValue[value]
		if !ok {
			g = &valueGroup{value: value}
			byValue[value] = g
			order = append(order, g)
		}
		g.members = append(g.members, name)
	}

	counter := 0
	for _, g := range order {
		// Prefer a non-alias member as the canonical declaration; if every
		// member is a pure alias, the first one will do.
		canonical := g.members[0]
		for _, name := range g.members {
			if tok, _ := reg.Lookup(name); !tok.IsAlias {
				canonical = name
				break
			}
		}

		totalUsage := 0
		for _, name := range g.members {
			tok, _ := reg.Lookup(name)
			totalUsage += tok.UsageCount
		}

		synthetic := prefix + strconv.FormatInt(int64(counter), 36)
		declarationCost := len(synthetic) + 2 + len(g.value) + 1
		referenceCost := 5 + len(synthetic) + 1
		mangleCost := declarationCost + totalUsage*referenceCost
		inlineCost := totalUsage * len(g.value)
		if mangleCost >= inlineCost {
			continue
		}

		counter++
		for _, name := range g.members {
			tok, _ := reg.Lookup(name)
			tok.MangledName = synthetic
		}
		tok, _ := reg.Lookup(canonical)
		tok.EmitDeclaration = true
	}
}
