package grammar

import "fmt"

// BNFItem is a marker interface for the flat, already-desugared alphabet:
// no Optional/Repetition/Choice survive past the desugarer.
type BNFItem interface {
	isBNFItem()
}

// NonTerminal references another rule by name.
type NonTerminal struct {
	Name string
}

func (NonTerminal) isBNFItem() {}

// Literal is an exact-match terminal. Quoted keeps its surrounding quotes
// intact; only the equality check and the oracle call strip them.
type Literal struct {
	Quoted string
}

func (Literal) isBNFItem() {}

// Regex is a pattern terminal. Delimited keeps its surrounding `/.../`
// intact; only the regex engine call strips them.
type Regex struct {
	Delimited string
}

func (Regex) isBNFItem() {}

// Production is an ordered, possibly-empty sequence of BNFItem. An empty
// Production denotes epsilon.
type Production []BNFItem

// BNFGrammar is an insertion-ordered mapping from nonterminal name to its
// list of alternative productions. Order is load-bearing: the first rule
// inserted is the start symbol, and iteration must reproduce insertion
// order (invariant 4 of the data model).
//
// A plain Go map cannot satisfy this, so BNFGrammar keeps an explicit key
// order alongside the lookup table rather than relying on map iteration.
type BNFGrammar struct {
	order   []string
	rules   map[string][]Production
}

// NewBNFGrammar returns an empty grammar ready for insertion.
func NewBNFGrammar() *BNFGrammar {
	return &BNFGrammar{rules: make(map[string][]Production)}
}

// Define appends prods as the alternatives for name. If name was already
// defined its alternatives are replaced in place, preserving its original
// position in the order; otherwise name is appended at the end.
func (g *BNFGrammar) Define(name string, prods []Production) {
	if _, ok := g.rules[name]; !ok {
		g.order = append(g.order, name)
	}
	g.rules[name] = prods
}

// Has reports whether name is defined.
func (g *BNFGrammar) Has(name string) bool {
	_, ok := g.rules[name]
	return ok
}

// Productions returns the alternatives defined for name, or nil if name is
// not defined.
func (g *BNFGrammar) Productions(name string) []Production {
	return g.rules[name]
}

// Order returns the nonterminal names in insertion order. The returned
// slice must not be mutated by the caller.
func (g *BNFGrammar) Order() []string {
	return g.order
}

// StartSymbol returns the first nonterminal inserted, or "" for an empty
// grammar.
func (g *BNFGrammar) StartSymbol() string {
	if len(g.order) == 0 {
		return ""
	}
	return g.order[0]
}

// Len returns the number of defined nonterminals.
func (g *BNFGrammar) Len() int {
	return len(g.order)
}

// Validate checks invariant 1: every NonTerminal referenced by any
// Production must be a defined key. It returns the name of the first
// dangling reference found, wrapped as an error, or nil if the grammar is
// well-formed.
func (g *BNFGrammar) Validate() error {
	for _, name := range g.order {
		for _, prod := range g.rules[name] {
			for _, item := range prod {
				nt, ok := item.(NonTerminal)
				if !ok {
					continue
				}
				if !g.Has(nt.Name) {
					return fmt.Errorf("rule %q references undefined nonterminal %q", name, nt.Name)
				}
			}
		}
	}
	return nil
}
