package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"gradecheck/internal/stats"
)

type creditsPayload struct {
	Credits     int                     `json:"credits"`
	AllAttempts bool                    `json:"all_attempts"`
	Window      string                  `json:"window"`
	Breakdown   []stats.CategoryCredits `json:"breakdown"`
}

func newCreditsCommand(ctx *commandContext) *cobra.Command {
	var sel selectionFlags
	var asJSON bool
	var allAttempts bool

	cmd := &cobra.Command{
		Use:   "credits <transcript.csv|->",
		Short: "Total credits for the selection",
		Long: "Total earned credits (合 or 認) for the selection, with a per-category breakdown.\n" +
			"--all-attempts counts every matching record regardless of outcome.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := sel.load(ctx, cmd, args[0])
			if err != nil {
				return err
			}
			total, err := sess.Credits(allAttempts)
			if err != nil {
				return err
			}
			report, err := sess.Evaluate()
			if err != nil {
				return err
			}
			if ctx.jsonOutput(asJSON) {
				return writeJSON(cmd, creditsPayload{
					Credits:     total,
					AllAttempts: allAttempts,
					Window:      report.Window,
					Breakdown:   report.Breakdown,
				})
			}

			out := cmd.OutOrStdout()
			colorize := ctx.colorize(out)
			label := "Earned credits"
			if allAttempts {
				label = "Attempted credits"
			}
			fmt.Fprintln(out, renderStatusLine(label, statusInfo, strconv.Itoa(total), colorize))
			fmt.Fprintln(out, breakdownTable(report.Breakdown))
			return nil
		},
	}

	sel.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&allAttempts, "all-attempts", false, "Count failed and unrecognized attempts too")
	return cmd
}
