package main

import (
	"github.com/cato-001/snacks"
	"github.com/cato-001/snacks/parse"
	"github.com/spf13/cobra"
)

func newTagsCmd() *cobra.Command {
	var opts matchOptions

	cmd := &cobra.Command{
		Use:   "tags [file]",
		Short: "Take the #hashtags of the text",
		Long: `Take the #hashtags of the text.

Text before each tag is skipped. Collection stops at the first '#' that
does not start a tag.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, name, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			rest, tags, err := snacks.TakeAll(parse.IsNot[S]("#"), snacks.Hashtag[S])(parse.NewString(src))
			if err != nil {
				return err
			}
			if rest.Len() > 0 {
				log.Debugf("%s: stopped at %s", name, parse.PositionOf(src, rest.Offset()))
			}
			opts.print(cmd.OutOrStdout(), src, tags)
			return nil
		},
	}

	opts.register(cmd)

	return cmd
}
