package prettyprint

import (
	"fmt"
	"io"
	"sort"

	"github.com/shadowCow/sebnf-go/internal/sets"
)

// FirstSets writes the FIRST table to out, sorted by nonterminal name then
// item string, the same shape as the teacher's PrintFirstSets.
func FirstSets(table sets.FirstTable, out io.Writer) error {
	return printTable("FIRST", table, out)
}

// FollowSets writes the FOLLOW table to out, sorted the same way.
func FollowSets(table sets.FollowTable, out io.Writer) error {
	return printTable("FOLLOW", table, out)
}

func printTable(label string, table map[string]sets.Set, out io.Writer) error {
	if _, err := fmt.Fprintf(out, "%s Sets:\n", label); err != nil {
		return err
	}

	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if _, err := fmt.Fprintf(out, "  %s:\n", name); err != nil {
			return err
		}
		for _, item := range table[name].Items() {
			if _, err := fmt.Fprintf(out, "    %s\n", item.String()); err != nil {
				return err
			}
		}
	}

	return nil
}
