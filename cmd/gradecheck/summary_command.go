package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func newSummaryCommand(ctx *commandContext) *cobra.Command {
	var sel selectionFlags
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "summary <transcript.csv|->",
		Short: "Show GPA, credit totals, and the per-category breakdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := sel.load(ctx, cmd, args[0])
			if err != nil {
				return err
			}
			report, err := sess.Evaluate()
			if err != nil {
				return err
			}
			if ctx.jsonOutput(asJSON) {
				return writeJSON(cmd, report)
			}

			out := cmd.OutOrStdout()
			colorize := ctx.colorize(out)
			writeReportHeader(out, report, colorize)
			fmt.Fprintln(out)
			writeLines(out, renderSectionHeader("Totals", colorize)...)
			writeLines(out,
				gpaStatusLine(report.Summary, colorize),
				renderStatusLine("Earned credits", statusInfo, strconv.Itoa(report.Summary.EarnedCredits), colorize),
				renderStatusLine("Attempted credits", statusInfo, strconv.Itoa(report.Summary.AttemptedCredits), colorize),
			)
			fmt.Fprintln(out)
			writeLines(out, renderSectionHeader("Credits by category", colorize)...)
			fmt.Fprintln(out, breakdownTable(report.Breakdown))
			return nil
		},
	}

	sel.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}
