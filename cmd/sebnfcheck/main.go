// Command sebnfcheck reads an SEBNF grammar from stdin and validates it,
// converts it to BNF, extracts its FIRST/FOLLOW sets, or checks whether it
// is LL(1).
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/shadowCow/sebnf-go/internal/cli"
	"github.com/shadowCow/sebnf-go/internal/desugar"
	"github.com/shadowCow/sebnf-go/internal/ebnfparse"
	"github.com/shadowCow/sebnf-go/internal/grammar"
	"github.com/shadowCow/sebnf-go/internal/ll1"
	"github.com/shadowCow/sebnf-go/internal/prettyprint"
	"github.com/shadowCow/sebnf-go/internal/sets"
)

var (
	verbose bool
	output  string
	log     zerolog.Logger
)

func wantsJSON() (bool, error) {
	switch output {
	case "", "text":
		return false, nil
	case "json":
		return true, nil
	default:
		return false, fmt.Errorf("unknown output format %q: want \"text\" or \"json\"", output)
	}
}

func main() {
	root := &cobra.Command{
		Use:   "sebnfcheck",
		Short: "Analyze an EBNF grammar for LL(1)-ness",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log = cli.NewLogger(verbose)
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(validateCmd(), toBNFCmd(), extractSetsCmd(), isLL1Cmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func parseSEBNF() (*grammar.EBNFGrammar, error) {
	src, err := cli.ReadStdin()
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	g, err := ebnfparse.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parsing SEBNF: %w", err)
	}
	log.Debug().Int("rules", len(g.Rules)).Msg("parsed SEBNF grammar")
	return g, nil
}

func toBNF(ebnf *grammar.EBNFGrammar) (*grammar.BNFGrammar, error) {
	bnf := desugar.Desugar(ebnf)
	if err := bnf.Validate(); err != nil {
		return nil, fmt.Errorf("desugared grammar is malformed: %w", err)
	}
	log.Debug().Int("rules", bnf.Len()).Msg("desugared to BNF")
	return bnf, nil
}

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate SEBNF syntax",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := parseSEBNF(); err != nil {
				return err
			}
			fmt.Println("Valid SEBNF")
			return nil
		},
	}
}

func toBNFCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "to-bnf",
		Short: "Convert SEBNF to BNF",
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, err := wantsJSON()
			if err != nil {
				return err
			}
			ebnf, err := parseSEBNF()
			if err != nil {
				return err
			}
			bnf, err := toBNF(ebnf)
			if err != nil {
				return err
			}
			if asJSON {
				return prettyprint.GrammarJSON(bnf, os.Stdout)
			}
			return prettyprint.Grammar(bnf, os.Stdout)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text or json")
	return cmd
}

func extractSetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract-sets",
		Short: "Extract FIRST and FOLLOW sets",
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, err := wantsJSON()
			if err != nil {
				return err
			}
			ebnf, err := parseSEBNF()
			if err != nil {
				return err
			}
			bnf, err := toBNF(ebnf)
			if err != nil {
				return err
			}
			first := sets.ComputeFirstTable(bnf)
			follow := sets.ComputeFollowTable(bnf, first)
			if asJSON {
				return prettyprint.SetsJSON(first, follow, os.Stdout)
			}
			if err := prettyprint.FirstSets(first, os.Stdout); err != nil {
				return err
			}
			fmt.Println()
			return prettyprint.FollowSets(follow, os.Stdout)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text or json")
	return cmd
}

func isLL1Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "is-ll1",
		Short: "Check if the grammar is LL(1)",
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, err := wantsJSON()
			if err != nil {
				return err
			}
			ebnf, err := parseSEBNF()
			if err != nil {
				return err
			}
			bnf, err := toBNF(ebnf)
			if err != nil {
				return err
			}
			first := sets.ComputeFirstTable(bnf)
			follow := sets.ComputeFollowTable(bnf, first)
			result, err := ll1.Analyze(bnf, first, follow)
			if err != nil {
				return fmt.Errorf("invalid regex pattern in grammar: %w", err)
			}
			if asJSON {
				if err := prettyprint.LL1ResultJSON(result, os.Stdout); err != nil {
					return err
				}
			} else if err := prettyprint.LL1Result(result, os.Stdout); err != nil {
				return err
			}
			if !result.IsLL1() {
				os.Exit(1)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "text", "output format: text or json")
	return cmd
}
