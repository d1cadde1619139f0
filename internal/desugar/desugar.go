// Package desugar translates an EBNF syntax tree into pure BNF by
// introducing fresh nonterminals for Optional, Repetition and Choice,
// deduplicating structurally identical subtrees.
package desugar

import (
	"fmt"
	"strings"

	"github.com/shadowCow/sebnf-go/internal/grammar"
)

type context struct {
	helpers []string
	bodies  map[string][]grammar.Production
	ruleKey map[string]string // Optional/Choice cache
	repKey  map[string]string // Repetition cache, keyed pre-self-reference
	counter int
}

func newContext() *context {
	return &context{
		bodies:  make(map[string][]grammar.Production),
		ruleKey: make(map[string]string),
		repKey:  make(map[string]string),
	}
}

func (c *context) nextName(prefix string) string {
	name := fmt.Sprintf("___%s_%d", prefix, c.counter)
	c.counter++
	return name
}

func (c *context) define(name string, body []grammar.Production) {
	c.helpers = append(c.helpers, name)
	c.bodies[name] = body
}

// Desugar converts g into a pure BNF grammar. Original nonterminals keep
// their input order and are listed first; helper nonterminals follow in
// the order they were created, satisfying invariant 4 of the data model.
func Desugar(g *grammar.EBNFGrammar) *grammar.BNFGrammar {
	c := newContext()

	originalNames := make([]string, len(g.Rules))
	originalBodies := make([][]grammar.Production, len(g.Rules))
	for i, rule := range g.Rules {
		originalNames[i] = rule.Name
		bodies := make([]grammar.Production, len(rule.Alternatives))
		for j, alt := range rule.Alternatives {
			bodies[j] = c.convertSequence(alt)
		}
		originalBodies[i] = bodies
	}

	out := grammar.NewBNFGrammar()
	for i, name := range originalNames {
		out.Define(name, originalBodies[i])
	}
	for _, name := range c.helpers {
		out.Define(name, c.bodies[name])
	}
	return out
}

func (c *context) convertSequence(items []grammar.EBNFItem) grammar.Production {
	prod := make(grammar.Production, len(items))
	for i, item := range items {
		prod[i] = c.convertItem(item)
	}
	return prod
}

func (c *context) convertItem(item grammar.EBNFItem) grammar.BNFItem {
	switch v := item.(type) {
	case grammar.EBNFNonTerminal:
		return grammar.NonTerminal{Name: v.Name}

	case grammar.EBNFLiteral:
		return grammar.Literal{Quoted: v.Quoted}

	case grammar.EBNFRegex:
		return grammar.Regex{Delimited: v.Delimited}

	case grammar.EBNFOptional:
		converted := c.convertSequence(v.Items)
		body := []grammar.Production{converted, {}}
		key := canonicalBody(body)
		name, ok := c.ruleKey[key]
		if !ok {
			name = c.nextName("opt")
			c.ruleKey[key] = name
			c.define(name, body)
		}
		return grammar.NonTerminal{Name: name}

	case grammar.EBNFChoice:
		body := make([]grammar.Production, len(v.Alternatives))
		for i, alt := range v.Alternatives {
			body[i] = c.convertSequence(alt)
		}
		key := canonicalBody(body)
		name, ok := c.ruleKey[key]
		if !ok {
			name = c.nextName("choice")
			c.ruleKey[key] = name
			c.define(name, body)
		}
		return grammar.NonTerminal{Name: name}

	case grammar.EBNFRepetition:
		converted := c.convertSequence(v.Items)
		key := canonicalProduction(converted)
		name, ok := c.repKey[key]
		if !ok {
			name = c.nextName("rep")
			c.repKey[key] = name

			recursive := make(grammar.Production, len(converted)+1)
			copy(recursive, converted)
			recursive[len(converted)] = grammar.NonTerminal{Name: name}

			body := []grammar.Production{recursive, {}}
			c.define(name, body)
		}
		return grammar.NonTerminal{Name: name}
	}

	panic(fmt.Sprintf("desugar: unhandled EBNF item %T", item))
}

// canonicalBody and canonicalProduction render a rewrite body to a string
// that compares equal for structurally identical subtrees and differs
// otherwise. Any canonical form works per the spec's design notes; this one
// is a straightforward textual rendering of the tagged BNFItem tree.
func canonicalBody(body []grammar.Production) string {
	var b strings.Builder
	for i, prod := range body {
		if i > 0 {
			b.WriteByte('|')
		}
		b.WriteString(canonicalProduction(prod))
	}
	return b.String()
}

func canonicalProduction(prod grammar.Production) string {
	var b strings.Builder
	for i, item := range prod {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch v := item.(type) {
		case grammar.NonTerminal:
			b.WriteString("N:")
			b.WriteString(v.Name)
		case grammar.Literal:
			b.WriteString("L:")
			b.WriteString(v.Quoted)
		case grammar.Regex:
			b.WriteString("R:")
			b.WriteString(v.Delimited)
		}
	}
	return b.String()
}
