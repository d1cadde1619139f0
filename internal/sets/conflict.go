package sets

import (
	"fmt"

	"github.com/shadowCow/sebnf-go/internal/regexoracle"
)

// ItemConflict is one pair of SetItems proven to conflict, with a witness
// string when the oracle produced one.
type ItemConflict struct {
	Item1, Item2 SetItem
	Witness      *string
}

// FindSetConflicts runs the semantic conflict predicate on the Cartesian
// product of set1 and set2, returning every hit. An invalid regex pattern
// aborts immediately with the wrapping error as soon as it is paired with a
// literal or another regex; a pattern paired only with ε or $ is never
// compiled.
func FindSetConflicts(set1, set2 Set) ([]ItemConflict, error) {
	var conflicts []ItemConflict
	for _, item1 := range set1.Items() {
		for _, item2 := range set2.Items() {
			conflict, err := checkItemConflict(item1, item2)
			if err != nil {
				return nil, err
			}
			if conflict != nil {
				conflicts = append(conflicts, *conflict)
			}
		}
	}
	return conflicts, nil
}

func checkItemConflict(item1, item2 SetItem) (*ItemConflict, error) {
	switch {
	case item1.Kind == KindLiteral && item2.Kind == KindLiteral:
		s1 := stripTerminalQuotes(item1.Text)
		s2 := stripTerminalQuotes(item2.Text)
		if s1 == s2 {
			w := s1
			return &ItemConflict{Item1: item1, Item2: item2, Witness: &w}, nil
		}
		return nil, nil

	case item1.Kind == KindRegex && item2.Kind == KindRegex:
		p1 := stripRegexDelimiters(item1.Text)
		p2 := stripRegexDelimiters(item2.Text)
		witness, err := regexoracle.Intersect(p1, p2)
		if err != nil {
			return nil, fmt.Errorf("invalid regex pattern %q or %q: %w", item1.Text, item2.Text, err)
		}
		if witness == nil {
			return nil, nil
		}
		return &ItemConflict{Item1: item1, Item2: item2, Witness: witness}, nil

	case item1.Kind == KindRegex && item2.Kind == KindLiteral:
		return checkRegexLiteral(item1, item2, item1.Text, item2.Text)

	case item1.Kind == KindLiteral && item2.Kind == KindRegex:
		return checkRegexLiteral(item1, item2, item2.Text, item1.Text)

	case item1.Kind == KindEpsilon && item2.Kind == KindEpsilon:
		return &ItemConflict{Item1: item1, Item2: item2}, nil

	case item1.Kind == KindEndOfInput && item2.Kind == KindEndOfInput:
		return &ItemConflict{Item1: item1, Item2: item2}, nil

	default:
		return nil, nil
	}
}

func checkRegexLiteral(item1, item2 SetItem, regexText, literalText string) (*ItemConflict, error) {
	pattern := stripRegexDelimiters(regexText)
	literal := stripTerminalQuotes(literalText)
	escaped := regexoracle.EscapeLiteral(literal)
	witness, err := regexoracle.Intersect(pattern, escaped)
	if err != nil {
		return nil, fmt.Errorf("invalid regex pattern %q: %w", regexText, err)
	}
	if witness == nil {
		return nil, nil
	}
	return &ItemConflict{Item1: item1, Item2: item2, Witness: witness}, nil
}
