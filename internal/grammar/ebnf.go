// Package grammar defines the data model the analytical core operates over:
// the EBNF syntax tree handed in by the parser, and the pure BNF grammar the
// desugarer produces from it.
package grammar

// EBNFItem is a marker interface for every node the EBNF parser can produce.
// Only the desugarer consumes these; nothing downstream of it ever sees one.
type EBNFItem interface {
	isEBNFItem()
}

// EBNFNonTerminal references another rule by name.
type EBNFNonTerminal struct {
	Name string
}

func (EBNFNonTerminal) isEBNFItem() {}

// EBNFLiteral is an exact-match terminal, quotes intact.
type EBNFLiteral struct {
	Quoted string
}

func (EBNFLiteral) isEBNFItem() {}

// EBNFRegex is a pattern terminal, delimiters intact.
type EBNFRegex struct {
	Delimited string
}

func (EBNFRegex) isEBNFItem() {}

// EBNFOptional is `[ Items ]`: zero or one occurrence of the sequence.
type EBNFOptional struct {
	Items []EBNFItem
}

func (EBNFOptional) isEBNFItem() {}

// EBNFRepetition is `{ Items }`: zero or more occurrences of the sequence.
type EBNFRepetition struct {
	Items []EBNFItem
}

func (EBNFRepetition) isEBNFItem() {}

// EBNFChoice is `( Alt1 | Alt2 | ... )`: exactly one of several sequences.
type EBNFChoice struct {
	Alternatives [][]EBNFItem
}

func (EBNFChoice) isEBNFItem() {}

// EBNFRule is one named rule: a nonterminal and its alternative sequences.
type EBNFRule struct {
	Name         string
	Alternatives [][]EBNFItem
}

// EBNFGrammar is the parser's output: an ordered list of rules. The first
// rule's name is the start symbol.
type EBNFGrammar struct {
	Rules []EBNFRule
}

// StartSymbol returns the name of the first rule, or "" for an empty grammar.
func (g *EBNFGrammar) StartSymbol() string {
	if len(g.Rules) == 0 {
		return ""
	}
	return g.Rules[0].Name
}
