// Package sets computes FIRST and FOLLOW tables over a BNF grammar by
// fixed-point iteration, and exposes the semantic set-conflict predicate
// the LL(1) driver builds on.
package sets

import (
	"sort"
	"strings"

	"github.com/shadowCow/sebnf-go/internal/grammar"
)

// Kind distinguishes the four shapes a SetItem can take.
type Kind int

const (
	// KindLiteral is an exact-match terminal.
	KindLiteral Kind = iota
	// KindRegex is a pattern terminal.
	KindRegex
	// KindEpsilon only ever appears in FIRST sets.
	KindEpsilon
	// KindEndOfInput only ever appears in FOLLOW sets.
	KindEndOfInput
)

// SetItem is the alphabet FIRST and FOLLOW tables are built from.
type SetItem struct {
	Kind Kind
	// Text holds the quoted literal or delimited pattern for
	// KindLiteral/KindRegex, and is empty otherwise.
	Text string
}

// Epsilon is the sole KindEpsilon value.
var Epsilon = SetItem{Kind: KindEpsilon}

// EndOfInput is the sole KindEndOfInput value.
var EndOfInput = SetItem{Kind: KindEndOfInput}

// FromBNFItem converts a terminal BNFItem to a SetItem. It panics on a
// NonTerminal, matching the core's invariant that only terminals ever
// populate a SetItem set.
func FromBNFItem(item grammar.BNFItem) SetItem {
	switch v := item.(type) {
	case grammar.Literal:
		return SetItem{Kind: KindLiteral, Text: v.Quoted}
	case grammar.Regex:
		return SetItem{Kind: KindRegex, Text: v.Delimited}
	default:
		panic("sets: NonTerminal cannot be converted to SetItem")
	}
}

// String renders the item the way prettyprint's set output does: quotes
// stripped from literals, ε and $ for the two marker kinds.
func (s SetItem) String() string {
	switch s.Kind {
	case KindLiteral:
		return stripTerminalQuotes(s.Text)
	case KindRegex:
		return s.Text
	case KindEpsilon:
		return "ε"
	case KindEndOfInput:
		return "$"
	}
	return ""
}

func stripTerminalQuotes(s string) string {
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	return s
}

func stripRegexDelimiters(s string) string {
	s = strings.TrimPrefix(s, "/")
	s = strings.TrimSuffix(s, "/")
	return s
}

// Set is an unordered collection of SetItem, deduplicated by value.
type Set map[SetItem]struct{}

// NewSet returns an empty Set.
func NewSet() Set {
	return make(Set)
}

// Add inserts item, reporting whether the set changed.
func (s Set) Add(item SetItem) bool {
	if _, ok := s[item]; ok {
		return false
	}
	s[item] = struct{}{}
	return true
}

// Contains reports whether item is in the set.
func (s Set) Contains(item SetItem) bool {
	_, ok := s[item]
	return ok
}

// Union adds every item of other into s, reporting whether s changed.
func (s Set) Union(other Set) bool {
	changed := false
	for item := range other {
		if s.Add(item) {
			changed = true
		}
	}
	return changed
}

// Items returns the set's members sorted by their String form, the order
// prettyprint's FIRST/FOLLOW renderer requires.
func (s Set) Items() []SetItem {
	out := make([]SetItem, 0, len(s))
	for item := range s {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

// WithoutEpsilon returns a copy of s with the Epsilon marker removed.
func (s Set) WithoutEpsilon() Set {
	out := NewSet()
	for item := range s {
		if item.Kind != KindEpsilon {
			out.Add(item)
		}
	}
	return out
}
