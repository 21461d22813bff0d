package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gradecheck/internal/listing"
)

// listingFlags select the order of a subject list.
type listingFlags struct {
	sort       string
	order      string
	hideFailed bool
}

func (f *listingFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.sort, "sort", "date", "Sort key (date, category, grade, name)")
	cmd.Flags().StringVar(&f.order, "order", "desc", "Sort order (asc, desc)")
	cmd.Flags().BoolVar(&f.hideFailed, "hide-failed", false, "Hide Ｆ and 否 subjects")
}

func (f *listingFlags) options() (listing.Options, error) {
	key, err := listing.ParseSortKey(f.sort)
	if err != nil {
		return listing.Options{}, err
	}
	order, err := listing.ParseOrder(f.order)
	if err != nil {
		return listing.Options{}, err
	}
	return listing.Options{Key: key, Order: order, HideFailed: f.hideFailed}, nil
}

func newSubjectsCommand(ctx *commandContext) *cobra.Command {
	var sel selectionFlags
	var list listingFlags
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "subjects <transcript.csv|->",
		Short: "List the subjects in the selection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := list.options()
			if err != nil {
				return err
			}
			sess, err := sel.load(ctx, cmd, args[0])
			if err != nil {
				return err
			}
			records, err := sess.Subjects(opts)
			if err != nil {
				return err
			}
			if ctx.jsonOutput(asJSON) {
				return writeJSON(cmd, records)
			}
			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No subjects match the selection")
				return nil
			}
			fmt.Fprintln(out, subjectsTable(records))
			return nil
		},
	}

	sel.register(cmd)
	list.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}
