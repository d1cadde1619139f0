// Package ll1 is the LL(1) driver: given a desugared grammar and its FIRST
// and FOLLOW tables, it enumerates production pairs per nonterminal for
// FIRST/FIRST and FIRST/FOLLOW conflicts.
package ll1

import (
	"fmt"

	"github.com/shadowCow/sebnf-go/internal/grammar"
	"github.com/shadowCow/sebnf-go/internal/sets"
)

// ConflictKind distinguishes the two ways a nonterminal can fail LL(1).
type ConflictKind int

const (
	// FirstFirst marks two alternatives whose FIRST sets overlap.
	FirstFirst ConflictKind = iota
	// FirstFollow marks a nullable alternative whose FOLLOW(N) overlaps
	// another alternative's FIRST set.
	FirstFollow
)

// Conflict reports one LL(1) violation on a nonterminal.
type Conflict struct {
	NonTerminal string
	Kind        ConflictKind
	Production1 grammar.Production
	Production2 grammar.Production
	Items       []sets.ItemConflict
}

// Result is the output of Analyze.
type Result struct {
	Conflicts []Conflict
}

// IsLL1 reports whether the analyzed grammar has no conflicts.
func (r Result) IsLL1() bool {
	return len(r.Conflicts) == 0
}

// Analyze runs the LL(1) driver over an already-desugared grammar, given
// its FIRST and FOLLOW tables. It returns every conflict found; a grammar
// is LL(1) iff the result's Conflicts list is empty. An invalid regex
// pattern aborts the analysis when a conflict check compiles it; patterns
// that are never compared, such as those of single-production
// nonterminals, are not checked.
func Analyze(g *grammar.BNFGrammar, first sets.FirstTable, follow sets.FollowTable) (Result, error) {
	var result Result

	for _, name := range g.Order() {
		prods := g.Productions(name)
		if len(prods) < 2 {
			continue
		}

		type alt struct {
			prod     grammar.Production
			first    sets.Set
			nullable bool
		}
		alts := make([]alt, len(prods))
		for i, prod := range prods {
			f, nullable := sets.FirstOfSequence(prod, first)
			alts[i] = alt{prod: prod, first: f, nullable: nullable}
		}

		for i := 0; i < len(alts); i++ {
			for j := i + 1; j < len(alts); j++ {
				items, err := sets.FindSetConflicts(alts[i].first, alts[j].first)
				if err != nil {
					return Result{}, fmt.Errorf("nonterminal %q: %w", name, err)
				}
				if len(items) > 0 {
					result.Conflicts = append(result.Conflicts, Conflict{
						NonTerminal: name,
						Kind:        FirstFirst,
						Production1: alts[i].prod,
						Production2: alts[j].prod,
						Items:       items,
					})
				}
			}
		}

		for i := range alts {
			if !alts[i].nullable {
				continue
			}
			for j := range alts {
				if i == j {
					continue
				}
				items, err := sets.FindSetConflicts(alts[j].first, follow[name])
				if err != nil {
					return Result{}, fmt.Errorf("nonterminal %q: %w", name, err)
				}
				if len(items) > 0 {
					result.Conflicts = append(result.Conflicts, Conflict{
						NonTerminal: name,
						Kind:        FirstFollow,
						Production1: alts[i].prod,
						Production2: alts[j].prod,
						Items:       items,
					})
				}
			}
		}
	}

	return result, nil
}
