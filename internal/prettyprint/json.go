package prettyprint

import (
	"encoding/json"
	"io"
	"sort"

	"github.com/shadowCow/sebnf-go/internal/grammar"
	"github.com/shadowCow/sebnf-go/internal/ll1"
	"github.com/shadowCow/sebnf-go/internal/sets"
)

// ruleJSON is one nonterminal's alternatives in insertion order.
type ruleJSON struct {
	Name         string     `json:"name"`
	Alternatives [][]string `json:"alternatives"`
}

// GrammarJSON writes g to out as a JSON array of rules, preserving
// insertion order, for callers of `-o json` that want to consume the BNF
// grammar programmatically instead of parsing the aligned-column text form.
func GrammarJSON(g *grammar.BNFGrammar, out io.Writer) error {
	rules := make([]ruleJSON, 0, g.Len())
	for _, name := range g.Order() {
		alts := make([][]string, 0, len(g.Productions(name)))
		for _, prod := range g.Productions(name) {
			items := make([]string, 0, len(prod))
			for _, item := range prod {
				items = append(items, formatBNFItem(item))
			}
			alts = append(alts, items)
		}
		rules = append(rules, ruleJSON{Name: name, Alternatives: alts})
	}
	return json.NewEncoder(out).Encode(rules)
}

type setEntryJSON struct {
	NonTerminal string   `json:"nonTerminal"`
	Items       []string `json:"items"`
}

func tableToJSON(table map[string]sets.Set) []setEntryJSON {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]setEntryJSON, 0, len(names))
	for _, name := range names {
		items := table[name].Items()
		texts := make([]string, 0, len(items))
		for _, item := range items {
			texts = append(texts, item.String())
		}
		out = append(out, setEntryJSON{NonTerminal: name, Items: texts})
	}
	return out
}

// SetsJSON writes both FIRST and FOLLOW tables to out as a single JSON
// object, sorted the same way the plain-text renderer sorts them.
func SetsJSON(first sets.FirstTable, follow sets.FollowTable, out io.Writer) error {
	payload := struct {
		First  []setEntryJSON `json:"first"`
		Follow []setEntryJSON `json:"follow"`
	}{
		First:  tableToJSON(first),
		Follow: tableToJSON(follow),
	}
	return json.NewEncoder(out).Encode(payload)
}

type itemConflictJSON struct {
	Item1   string  `json:"item1"`
	Item2   string  `json:"item2"`
	Witness *string `json:"witness,omitempty"`
}

type conflictJSON struct {
	NonTerminal string             `json:"nonTerminal"`
	Kind        string             `json:"kind"`
	Production1 []string           `json:"production1"`
	Production2 []string           `json:"production2"`
	Items       []itemConflictJSON `json:"items"`
}

func kindString(k ll1.ConflictKind) string {
	if k == ll1.FirstFollow {
		return "first-follow"
	}
	return "first-first"
}

func productionStrings(prod grammar.Production) []string {
	out := make([]string, 0, len(prod))
	for _, item := range prod {
		out = append(out, formatBNFItem(item))
	}
	return out
}

// LL1ResultJSON writes result to out as a JSON object: { isLL1, conflicts }.
func LL1ResultJSON(result ll1.Result, out io.Writer) error {
	conflicts := make([]conflictJSON, 0, len(result.Conflicts))
	for _, c := range result.Conflicts {
		items := make([]itemConflictJSON, 0, len(c.Items))
		for _, item := range c.Items {
			items = append(items, itemConflictJSON{
				Item1:   item.Item1.String(),
				Item2:   item.Item2.String(),
				Witness: item.Witness,
			})
		}
		conflicts = append(conflicts, conflictJSON{
			NonTerminal: c.NonTerminal,
			Kind:        kindString(c.Kind),
			Production1: productionStrings(c.Production1),
			Production2: productionStrings(c.Production2),
			Items:       items,
		})
	}

	payload := struct {
		IsLL1     bool           `json:"isLL1"`
		Conflicts []conflictJSON `json:"conflicts"`
	}{
		IsLL1:     result.IsLL1(),
		Conflicts: conflicts,
	}
	return json.NewEncoder(out).Encode(payload)
}
