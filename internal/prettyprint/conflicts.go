package prettyprint

import (
	"fmt"
	"io"

	"github.com/shadowCow/sebnf-go/internal/ll1"
)

// LL1Result writes a human-readable conflict report to out, mirroring the
// original tool's "Grammar is LL(1)" / numbered-conflict-list output.
func LL1Result(result ll1.Result, out io.Writer) error {
	if result.IsLL1() {
		_, err := fmt.Fprintln(out, "Grammar is LL(1)")
		return err
	}

	if _, err := fmt.Fprintf(out, "Grammar is NOT LL(1). Found %d conflict(s):\n", len(result.Conflicts)); err != nil {
		return err
	}

	for i, c := range result.Conflicts {
		if _, err := fmt.Fprintf(out, "\n%d. Non-terminal %q: ", i+1, c.NonTerminal); err != nil {
			return err
		}
		switch c.Kind {
		case ll1.FirstFirst:
			if _, err := fmt.Fprintln(out, "FIRST/FIRST conflict"); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(out, "   Production 1: %s\n", formatProduction(c.Production1)); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(out, "   Production 2: %s\n", formatProduction(c.Production2)); err != nil {
				return err
			}
		case ll1.FirstFollow:
			if _, err := fmt.Fprintln(out, "FIRST/FOLLOW conflict"); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(out, "   Nullable production: %s\n", formatProduction(c.Production1)); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(out, "   Other production: %s\n", formatProduction(c.Production2)); err != nil {
				return err
			}
		}

		if _, err := fmt.Fprintln(out, "   Conflicts:"); err != nil {
			return err
		}
		for _, item := range c.Items {
			if item.Witness != nil {
				if _, err := fmt.Fprintf(out, "     - %s ∩ %s (e.g., %q)\n", item.Item1.String(), item.Item2.String(), *item.Witness); err != nil {
					return err
				}
			} else {
				if _, err := fmt.Fprintf(out, "     - %s ∩ %s\n", item.Item1.String(), item.Item2.String()); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
