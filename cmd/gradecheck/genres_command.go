package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGenresCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "genres <transcript.csv|->",
		Aliases: []string{"categories"},
		Short:   "List the categories and subcategories present in a transcript",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := ctx.loadSession(cmd, args[0])
			if err != nil {
				return err
			}
			groups, err := sess.Genres()
			if err != nil {
				return err
			}
			if ctx.jsonOutput(asJSON) {
				return writeJSON(cmd, groups)
			}
			out := cmd.OutOrStdout()
			if len(groups) == 0 {
				fmt.Fprintln(out, "No subjects in transcript")
				return nil
			}
			fmt.Fprintln(out, genresTable(groups))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}
