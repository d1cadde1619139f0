package sets

import "github.com/shadowCow/sebnf-go/internal/grammar"

// FirstTable maps nonterminal name to its FIRST set.
type FirstTable map[string]Set

// FirstOfSequence computes (FIRST(seq) without ε, seq is nullable) against
// a partially or fully computed FirstTable.
func FirstOfSequence(seq grammar.Production, first FirstTable) (Set, bool) {
	firsts := NewSet()
	nullable := true

	for _, item := range seq {
		if nt, ok := item.(grammar.NonTerminal); ok {
			ntFirsts := first[nt.Name]
			hasEpsilon := ntFirsts.Contains(Epsilon)
			for _, f := range ntFirsts.Items() {
				if f.Kind != KindEpsilon {
					firsts.Add(f)
				}
			}
			if !hasEpsilon {
				nullable = false
				break
			}
			continue
		}
		firsts.Add(FromBNFItem(item))
		nullable = false
		break
	}

	return firsts, nullable
}

// ComputeFirstTable runs the FIRST fixed-point iteration of section 4.2.2
// over g, returning a fully populated table (every nonterminal present,
// possibly with an empty set).
func ComputeFirstTable(g *grammar.BNFGrammar) FirstTable {
	first := make(FirstTable, g.Len())
	for _, name := range g.Order() {
		first[name] = NewSet()
	}

	changed := true
	for changed {
		changed = false
		for _, name := range g.Order() {
			for _, prod := range g.Productions(name) {
				f, nullable := FirstOfSequence(prod, first)
				if first[name].Union(f) {
					changed = true
				}
				if nullable && first[name].Add(Epsilon) {
					changed = true
				}
			}
		}
	}

	return first
}
