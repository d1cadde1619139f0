package prettyprint

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowCow/sebnf-go/internal/grammar"
	"github.com/shadowCow/sebnf-go/internal/ll1"
	"github.com/shadowCow/sebnf-go/internal/sets"
)

func TestGrammarSingleAlternativeOneLine(t *testing.T) {
	g := grammar.NewBNFGrammar()
	g.Define("E", []grammar.Production{{grammar.NonTerminal{Name: "T"}}})

	var buf bytes.Buffer
	require.NoError(t, Grammar(g, &buf))
	assert.Equal(t, "E := T.\n", buf.String())
}

func TestGrammarMultiAlternativeAlignedForm(t *testing.T) {
	g := grammar.NewBNFGrammar()
	g.Define("E'", []grammar.Production{
		{grammar.Literal{Quoted: `"+"`}, grammar.NonTerminal{Name: "T"}, grammar.NonTerminal{Name: "E'"}},
		{},
	})

	var buf bytes.Buffer
	require.NoError(t, Grammar(g, &buf))
	expected := "E' := \"+\" T E'\n" +
		"    | ε\n" +
		"    .\n"
	assert.Equal(t, expected, buf.String())
}

func TestGrammarPreservesInsertionOrder(t *testing.T) {
	g := grammar.NewBNFGrammar()
	g.Define("B", []grammar.Production{{grammar.Literal{Quoted: `"b"`}}})
	g.Define("A", []grammar.Production{{grammar.Literal{Quoted: `"a"`}}})

	var buf bytes.Buffer
	require.NoError(t, Grammar(g, &buf))
	assert.Equal(t, "B := \"b\".\nA := \"a\".\n", buf.String())
}

func TestFirstSetsSortedOutput(t *testing.T) {
	table := sets.FirstTable{
		"B": func() sets.Set {
			s := sets.NewSet()
			s.Add(sets.SetItem{Kind: sets.KindLiteral, Text: `"b"`})
			return s
		}(),
		"A": func() sets.Set {
			s := sets.NewSet()
			s.Add(sets.SetItem{Kind: sets.KindLiteral, Text: `"a"`})
			s.Add(sets.Epsilon)
			return s
		}(),
	}

	var buf bytes.Buffer
	require.NoError(t, FirstSets(table, &buf))
	expected := "FIRST Sets:\n" +
		"  A:\n" +
		"    a\n" +
		"    ε\n" +
		"  B:\n" +
		"    b\n"
	assert.Equal(t, expected, buf.String())
}

func TestLL1ResultNoConflicts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, LL1Result(ll1.Result{}, &buf))
	assert.Equal(t, "Grammar is LL(1)\n", buf.String())
}

func TestLL1ResultWithConflictIncludesWitness(t *testing.T) {
	witness := "a"
	result := ll1.Result{Conflicts: []ll1.Conflict{
		{
			NonTerminal: "S",
			Kind:        ll1.FirstFirst,
			Production1: grammar.Production{grammar.Literal{Quoted: `"a"`}, grammar.NonTerminal{Name: "B"}},
			Production2: grammar.Production{grammar.Literal{Quoted: `"a"`}, grammar.NonTerminal{Name: "C"}},
			Items: []sets.ItemConflict{{
				Item1:   sets.SetItem{Kind: sets.KindLiteral, Text: `"a"`},
				Item2:   sets.SetItem{Kind: sets.KindLiteral, Text: `"a"`},
				Witness: &witness,
			}},
		},
	}}

	var buf bytes.Buffer
	require.NoError(t, LL1Result(result, &buf))
	out := buf.String()
	assert.Contains(t, out, "NOT LL(1)")
	assert.Contains(t, out, `Non-terminal "S"`)
	assert.Contains(t, out, "FIRST/FIRST conflict")
	assert.Contains(t, out, `(e.g., "a")`)
}

func TestGrammarJSONPreservesOrderAndAlternatives(t *testing.T) {
	g := grammar.NewBNFGrammar()
	g.Define("S", []grammar.Production{
		{grammar.Literal{Quoted: `"a"`}, grammar.NonTerminal{Name: "B"}},
		{},
	})
	g.Define("B", []grammar.Production{{grammar.Literal{Quoted: `"b"`}}})

	var buf bytes.Buffer
	require.NoError(t, GrammarJSON(g, &buf))

	var rules []ruleJSON
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rules))
	require.Len(t, rules, 2)
	assert.Equal(t, "S", rules[0].Name)
	assert.Equal(t, "B", rules[1].Name)
	require.Len(t, rules[0].Alternatives, 2)
	assert.Equal(t, []string{`"a"`, "B"}, rules[0].Alternatives[0])
	assert.Empty(t, rules[0].Alternatives[1])
}

func TestLL1ResultJSONRoundTrips(t *testing.T) {
	witness := "a"
	result := ll1.Result{Conflicts: []ll1.Conflict{{
		NonTerminal: "S",
		Kind:        ll1.FirstFirst,
		Production1: grammar.Production{grammar.Literal{Quoted: `"a"`}},
		Production2: grammar.Production{grammar.Literal{Quoted: `"a"`}},
		Items: []sets.ItemConflict{{
			Item1:   sets.SetItem{Kind: sets.KindLiteral, Text: `"a"`},
			Item2:   sets.SetItem{Kind: sets.KindLiteral, Text: `"a"`},
			Witness: &witness,
		}},
	}}}

	var buf bytes.Buffer
	require.NoError(t, LL1ResultJSON(result, &buf))

	var decoded struct {
		IsLL1     bool `json:"isLL1"`
		Conflicts []struct {
			NonTerminal string `json:"nonTerminal"`
			Kind        string `json:"kind"`
			Items       []struct {
				Witness *string `json:"witness"`
			} `json:"items"`
		} `json:"conflicts"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.False(t, decoded.IsLL1)
	require.Len(t, decoded.Conflicts, 1)
	assert.Equal(t, "S", decoded.Conflicts[0].NonTerminal)
	assert.Equal(t, "first-first", decoded.Conflicts[0].Kind)
	require.Len(t, decoded.Conflicts[0].Items, 1)
	require.NotNil(t, decoded.Conflicts[0].Items[0].Witness)
	assert.Equal(t, "a", *decoded.Conflicts[0].Items[0].Witness)
}

func TestLL1ResultJSONNoConflicts(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, LL1ResultJSON(ll1.Result{}, &buf))
	var decoded struct {
		IsLL1     bool          `json:"isLL1"`
		Conflicts []interface{} `json:"conflicts"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.True(t, decoded.IsLL1)
	assert.Empty(t, decoded.Conflicts)
}
