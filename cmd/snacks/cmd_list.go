package main

import (
	"fmt"
	"strings"

	"github.com/cato-001/snacks"
	"github.com/cato-001/snacks/parse"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	var separators string
	var require bool

	cmd := &cobra.Command{
		Use:   "list [file]",
		Short: "Recognize the separated list at the start of each line",
		Long: `Recognize the separated list at the start of each line.

Each output line holds the recognized list and the rest of the input line,
separated by a tab. With --require, lines that do not start with an item
are reported as errors.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if separators == "" {
				return fmt.Errorf("--separators must not be empty")
			}

			src, name, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if src == "" {
				return nil
			}

			item := parse.Alphanumeric1[S]()
			separator := parse.IsA[S](separators)
			recognize := snacks.RecognizeSeparated0(item, separator)
			if require {
				recognize = snacks.RecognizeSeparated1(item, separator)
			}

			failed := 0
			for ln, line := range strings.Split(strings.TrimSuffix(src, "\n"), "\n") {
				in := parse.NewString(line)
				rest, span, err := recognize(in)
				if err != nil {
					_, err = snacks.Run(recognize, in)
					fmt.Fprintf(cmd.ErrOrStderr(), "%s:%d: %v\n", name, ln+1, err)
					failed++
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", span, rest)
			}

			if failed > 0 {
				return fmt.Errorf("%d lines without a list", failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&separators, "separators", "s", ",; ", "characters separating the items")
	cmd.Flags().BoolVar(&require, "require", false, "require at least one item per line")

	return cmd
}
