package main

import (
	"github.com/cato-001/snacks"
	"github.com/cato-001/snacks/parse"
	"github.com/spf13/cobra"
)

func newLinksCmd() *cobra.Command {
	var opts matchOptions

	cmd := &cobra.Command{
		Use:   "links [file]",
		Short: "Find the http and https links in the text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, name, err := readInput(cmd, args)
			if err != nil {
				return err
			}

			_, links, err := snacks.FindAll("http", snacks.Weblink[S])(parse.NewString(src))
			if err != nil {
				return err
			}
			log.Debugf("%s: %d links", name, len(links))
			opts.print(cmd.OutOrStdout(), src, links)
			return nil
		},
	}

	opts.register(cmd)

	return cmd
}
