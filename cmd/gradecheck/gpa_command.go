package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"gradecheck/internal/stats"
)

type gpaPayload struct {
	GPA           *float64 `json:"gpa"`
	GradePoints   float64  `json:"grade_points"`
	GradedCredits int      `json:"graded_credits"`
	Window        string   `json:"window"`
}

func newGPACommand(ctx *commandContext) *cobra.Command {
	var sel selectionFlags
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "gpa <transcript.csv|->",
		Short: "Print the grade-point average for the selection",
		Long: "Print the credit-weighted grade-point average, truncated to two decimals.\n" +
			"Pass/fail subjects and " + stats.CrossDepartmentSubcategory + " never count; failed letter grades do.",
		Args: cobra.ExactArgs(1),
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
				payload := gpaPayload{
					GradePoints:   report.Summary.GradePoints,
					GradedCredits: report.Summary.GradedCredits,
					Window:        report.Window,
				}
				if !math.IsNaN(report.Summary.GPA) {
					gpa := report.Summary.GPA
					payload.GPA = &gpa
				}
				return writeJSON(cmd, payload)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, gpaStatusLine(report.Summary, ctx.colorize(out)))
			return nil
		},
	}

	sel.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}
