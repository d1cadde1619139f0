// Package prettyprint renders BNF grammars, FIRST/FOLLOW tables and LL(1)
// conflict reports to an io.Writer, honoring the rendering contract named
// in the external-interfaces section: insertion order preserved, one-line
// form for single-alternative rules, aligned multi-line form terminated by
// a `.` for the rest, FIRST/FOLLOW sorted by nonterminal then item string.
package prettyprint

import (
	"fmt"
	"io"
	"strings"

	"github.com/shadowCow/sebnf-go/internal/grammar"
)

// Grammar writes g to out in the teacher's aligned-column rule format.
func Grammar(g *grammar.BNFGrammar, out io.Writer) error {
	maxLen := 0
	for _, name := range g.Order() {
		if len(name) > maxLen {
			maxLen = len(name)
		}
	}

	for _, name := range g.Order() {
		alts := g.Productions(name)
		if len(alts) == 0 {
			continue
		}
		if len(alts) == 1 {
			if _, err := fmt.Fprintf(out, "%-*s := %s.\n", maxLen, name, formatProduction(alts[0])); err != nil {
				return err
			}
			continue
		}

		indent := strings.Repeat(" ", maxLen+2)
		if _, err := fmt.Fprintf(out, "%-*s := %s\n", maxLen, name, formatProduction(alts[0])); err != nil {
			return err
		}
		for _, alt := range alts[1:] {
			if _, err := fmt.Fprintf(out, "%s| %s\n", indent, formatProduction(alt)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(out, "%s.\n", indent); err != nil {
			return err
		}
	}

	return nil
}

func formatProduction(prod grammar.Production) string {
	if len(prod) == 0 {
		return "ε"
	}
	parts := make([]string, len(prod))
	for i, item := range prod {
		parts[i] = formatBNFItem(item)
	}
	return strings.Join(parts, " ")
}

func formatBNFItem(item grammar.BNFItem) string {
	switch v := item.(type) {
	case grammar.NonTerminal:
		return v.Name
	case grammar.Literal:
		return v.Quoted
	case grammar.Regex:
		return v.Delimited
	}
	return ""
}
