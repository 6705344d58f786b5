package main

import (
	"fmt"
	"io"

	"github.com/cato-001/snacks"
	"github.com/cato-001/snacks/ebnflex"
	"github.com/cato-001/snacks/parse"
	"github.com/spf13/cobra"
)

type S = parse.String

type matchOptions struct {
	positions bool
	color     bool
}

func (o *matchOptions) register(cmd *cobra.Command) {
	cmd.Flags().BoolVarP(&o.positions, "positions", "p", false, "prefix each match with its line and column")
	cmd.Flags().BoolVar(&o.color, "color", false, "print the matching lines with highlighted matches")
}

func (o *matchOptions) print(w io.Writer, src string, matches []S) {
	if o.color {
		markLines(w, src, locations(matches), colorMark)
		return
	}
	printMatches(w, src, matches, o.positions)
}

func newFindCmd() *cobra.Command {
	var marker string
	var grammarFile string
	var production string
	var first bool
	var opts matchOptions

	cmd := &cobra.Command{
		Use:   "find [file]",
		Short: "Find items at every occurrence of a marker",
		Long: `Find items at every occurrence of a marker.

The item is a brace-delimited word by default. With --grammar and
--production the item is the named production of an EBNF grammar.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			item, err := findItem(grammarFile, production)
			if err != nil {
				return err
			}

			src, name, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			in := parse.NewString(src)
			if first {
				match, err := snacks.Run(snacks.FindFirst(marker, item), in)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				opts.print(cmd.OutOrStdout(), src, []S{match})
				return nil
			}

			_, matches, err := snacks.FindAll(marker, item)(in)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			log.Debugf("%s: %d matches for marker %q", name, len(matches), marker)
			opts.print(cmd.OutOrStdout(), src, matches)
			return nil
		},
	}

	cmd.Flags().StringVarP(&marker, "marker", "m", "{", "literal marking where an item may start")
	cmd.Flags().StringVarP(&grammarFile, "grammar", "g", "", "EBNF grammar file defining the item")
	cmd.Flags().StringVar(&production, "production", "", "grammar production to use as the item")
	cmd.Flags().BoolVar(&first, "first", false, "stop at the first item and fail if there is none")
	opts.register(cmd)

	return cmd
}

func findItem(grammarFile, production string) (parse.Parser[S, S], error) {
	if grammarFile == "" {
		if production != "" {
			return nil, fmt.Errorf("--production requires --grammar")
		}
		return parse.Recognize(parse.Delimited(parse.Char[S]('{'), parse.IsNot[S]("{}\n"), parse.Char[S]('}'))), nil
	}
	if production == "" {
		return nil, fmt.Errorf("--grammar requires --production")
	}

	grammar, err := ebnflex.LoadGrammar(grammarFile)
	if err != nil {
		return nil, err
	}
	item, err := ebnflex.Production[S](grammar, production)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", grammarFile, err)
	}
	return item, nil
}
