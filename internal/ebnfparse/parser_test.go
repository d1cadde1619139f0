package ebnfparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowCow/sebnf-go/internal/grammar"
)

const classicExprSource = `
E := T E'.
E' := "+" T E' | .
T := F T'.
T' := "*" F T' | .
F := "(" E ")" | /[0-9]+/.
`

func TestParseClassicExpressionGrammar(t *testing.T) {
	g, err := Parse(classicExprSource)
	require.NoError(t, err)
	require.Len(t, g.Rules, 5)
	assert.Equal(t, "E", g.StartSymbol())

	f := g.Rules[4]
	assert.Equal(t, "F", f.Name)
	require.Len(t, f.Alternatives, 2)
	require.Len(t, f.Alternatives[0], 3)
	require.Len(t, f.Alternatives[1], 1)
	_, ok := f.Alternatives[1][0].(grammar.EBNFRegex)
	assert.True(t, ok)
}

func TestParseOptionalBracket(t *testing.T) {
	g, err := Parse(`S := [ "a" ] "b".`)
	require.NoError(t, err)
	require.Len(t, g.Rules, 1)
	items := g.Rules[0].Alternatives[0]
	require.Len(t, items, 2)
	opt, ok := items[0].(grammar.EBNFOptional)
	require.True(t, ok)
	require.Len(t, opt.Items, 1)
}

func TestParseRepetitionBrace(t *testing.T) {
	g, err := Parse(`S := "(" { Item } ")".`)
	require.NoError(t, err)
	items := g.Rules[0].Alternatives[0]
	require.Len(t, items, 3)
	_, ok := items[1].(grammar.EBNFRepetition)
	assert.True(t, ok)
}

func TestParseParenthesizedSingleItemCollapses(t *testing.T) {
	g, err := Parse(`S := ("a").`)
	require.NoError(t, err)
	items := g.Rules[0].Alternatives[0]
	require.Len(t, items, 1)
	_, isLiteral := items[0].(grammar.EBNFLiteral)
	assert.True(t, isLiteral, "single-alternative single-item parens should collapse, not wrap in Choice")
}

func TestParseParenthesizedChoiceDoesNotCollapse(t *testing.T) {
	g, err := Parse(`S := ("a" | "b").`)
	require.NoError(t, err)
	items := g.Rules[0].Alternatives[0]
	require.Len(t, items, 1)
	choice, ok := items[0].(grammar.EBNFChoice)
	require.True(t, ok)
	assert.Len(t, choice.Alternatives, 2)
}

func TestParseRejectsReservedHelperPrefix(t *testing.T) {
	_, err := Parse(`___rep_0 := "a".`)
	require.Error(t, err)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestParseMissingDotErrors(t *testing.T) {
	_, err := Parse(`S := "a"`)
	require.Error(t, err)
}

func TestParseMissingAssignErrors(t *testing.T) {
	_, err := Parse(`S "a".`)
	require.Error(t, err)
}

func TestParseLexErrorWrapsAsParseError(t *testing.T) {
	_, err := Parse(`S := @.`)
	require.Error(t, err)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
}
