package sets

import "github.com/shadowCow/sebnf-go/internal/grammar"

// FollowTable maps nonterminal name to its FOLLOW set.
type FollowTable map[string]Set

// ComputeFollowTable runs the FOLLOW fixed-point iteration of section 4.2.3
// over g, given its already-computed FirstTable. FOLLOW(start) is seeded
// with EndOfInput, where start is the first nonterminal in insertion order.
func ComputeFollowTable(g *grammar.BNFGrammar, first FirstTable) FollowTable {
	follow := make(FollowTable, g.Len())
	for _, name := range g.Order() {
		follow[name] = NewSet()
	}

	if start := g.StartSymbol(); start != "" {
		follow[start].Add(EndOfInput)
	}

	changed := true
	for changed {
		changed = false
		for _, lhs := range g.Order() {
			for _, prod := range g.Productions(lhs) {
				for i, item := range prod {
					nt, ok := item.(grammar.NonTerminal)
					if !ok {
						continue
					}
					if _, ok := follow[nt.Name]; !ok {
						continue
					}

					beta := prod[i+1:]
					betaFirsts, betaNullable := FirstOfSequence(beta, first)

					if follow[nt.Name].Union(betaFirsts) {
						changed = true
					}
					if betaNullable {
						if follow[nt.Name].Union(follow[lhs]) {
							changed = true
						}
					}
				}
			}
		}
	}

	return follow
}
