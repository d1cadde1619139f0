// Package regexoracle decides whether two regular expressions can match
// the same full string, returning a shortest common witness when they can.
package regexoracle

import (
	"fmt"
	"regexp"
	"sort"

	"github.com/shadowCow/sebnf-go/internal/automata"
)

// Side identifies which of the two patterns handed to Intersect failed to
// compile.
type Side int

const (
	// SideA is the first argument to Intersect.
	SideA Side = iota
	// SideB is the second argument to Intersect.
	SideB
)

func (s Side) String() string {
	if s == SideA {
		return "a"
	}
	return "b"
}

// InvalidRegexError reports that a pattern failed to compile.
type InvalidRegexError struct {
	Pattern string
	Which   Side
	Cause   error
}

func (e *InvalidRegexError) Error() string {
	return fmt.Sprintf("invalid regex pattern on side %s: %q: %v", e.Which, e.Pattern, e.Cause)
}

func (e *InvalidRegexError) Unwrap() error {
	return e.Cause
}

// MatchesEmpty reports whether pattern's language contains the empty
// string. An invalid pattern is treated as "definitely does not match
// empty" rather than as an error, per the conservative contract this
// predicate carries: it is a question about the language, not an
// assertion that pattern compiles.
func MatchesEmpty(pattern string) bool {
	dfa, err := compile(pattern)
	if err != nil {
		return false
	}
	return dfa.States[dfa.Start].Accept
}

// statePair is a node in the product automaton's state space.
type statePair struct{ a, b int }

// parentEdge records the byte/rune consumed to reach a statePair during
// BFS, so a shortest witness can be reconstructed by walking parents back
// to the start.
type parentEdge struct {
	prev statePair
	r    rune
}

// Intersect returns a shortest string matched by both a and b under
// full-string anchored semantics, or nil if no such string exists. If
// either pattern fails to compile, it returns an *InvalidRegexError naming
// the offending side.
func Intersect(a, b string) (*string, error) {
	dfaA, err := compile(a)
	if err != nil {
		return nil, &InvalidRegexError{Pattern: a, Which: SideA, Cause: err}
	}
	dfaB, err := compile(b)
	if err != nil {
		return nil, &InvalidRegexError{Pattern: b, Which: SideB, Cause: err}
	}

	start := statePair{dfaA.Start, dfaB.Start}
	parents := map[statePair]parentEdge{start: {}}
	visited := map[statePair]bool{start: true}
	queue := []statePair{start}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if dfaA.States[cur.a].Accept && dfaB.States[cur.b].Accept {
			witness := reconstruct(parents, start, cur)
			return &witness, nil
		}

		for _, lo := range jointAlphabet(dfaA.States[cur.a].Edges, dfaB.States[cur.b].Edges) {
			nextA := dfaA.Step(cur.a, lo)
			nextB := dfaB.Step(cur.b, lo)
			if dfaA.IsDead(nextA) || dfaB.IsDead(nextB) {
				continue
			}
			next := statePair{nextA, nextB}
			if visited[next] {
				continue
			}
			visited[next] = true
			parents[next] = parentEdge{prev: cur, r: lo}
			queue = append(queue, next)
		}
	}

	return nil, nil
}

func compile(pattern string) (*automata.DFA, error) {
	nfa, err := automata.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return automata.Determinize(nfa), nil
}

// jointAlphabet returns one representative rune per elementary interval of
// the common refinement of edgesA and edgesB's ranges: every rune within
// one such interval drives an identical successor pair, so BFS need only
// explore representatives instead of iterating every rune.
func jointAlphabet(edgesA, edgesB []automata.DFAEdge) []rune {
	boundarySet := map[rune]bool{}
	for _, e := range edgesA {
		addBounds(boundarySet, e.Range)
	}
	for _, e := range edgesB {
		addBounds(boundarySet, e.Range)
	}
	bounds := make([]rune, 0, len(boundarySet))
	for b := range boundarySet {
		bounds = append(bounds, b)
	}
	sort.Slice(bounds, func(i, j int) bool { return bounds[i] < bounds[j] })
	return bounds
}

const maxRune = 0x10FFFF

func addBounds(set map[rune]bool, r automata.RuneRange) {
	set[r.Lo] = true
	if r.Hi < maxRune {
		set[r.Hi+1] = true
	}
}

func reconstruct(parents map[statePair]parentEdge, start, end statePair) string {
	var runes []rune
	for cur := end; cur != start; {
		edge := parents[cur]
		runes = append(runes, edge.r)
		cur = edge.prev
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// EscapeLiteral regex-escapes s so it can be handed to Intersect as a
// pattern matching exactly the string s, mirroring regex_syntax::escape.
func EscapeLiteral(s string) string {
	return regexp.QuoteMeta(s)
}
