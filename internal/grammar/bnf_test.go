package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBNFGrammarOrdering(t *testing.T) {
	g := NewBNFGrammar()
	g.Define("E", []Production{{NonTerminal{Name: "T"}}})
	g.Define("T", []Production{{Literal{Quoted: `"x"`}}})

	require.Equal(t, []string{"E", "T"}, g.Order())
	assert.Equal(t, "E", g.StartSymbol())
}

func TestBNFGrammarRedefinePreservesPosition(t *testing.T) {
	g := NewBNFGrammar()
	g.Define("E", []Production{{NonTerminal{Name: "T"}}})
	g.Define("T", []Production{{Literal{Quoted: `"x"`}}})
	g.Define("E", []Production{{Literal{Quoted: `"y"`}}})

	assert.Equal(t, []string{"E", "T"}, g.Order())
	assert.Equal(t, "E", g.StartSymbol())
}

func TestBNFGrammarValidate(t *testing.T) {
	t.Run("dangling reference is rejected", func(t *testing.T) {
		g := NewBNFGrammar()
		g.Define("E", []Production{{NonTerminal{Name: "Missing"}}})
		assert.Error(t, g.Validate())
	})

	t.Run("well formed grammar passes", func(t *testing.T) {
		g := NewBNFGrammar()
		g.Define("E", []Production{{NonTerminal{Name: "T"}}})
		g.Define("T", []Production{{Literal{Quoted: `"x"`}}})
		assert.NoError(t, g.Validate())
	})
}
