package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"gradecheck/internal/config"
	"gradecheck/internal/export"
)

func newExportCommand(ctx *commandContext) *cobra.Command {
	var sel selectionFlags
	var list listingFlags
	var outPath string

	cmd := &cobra.Command{
		Use:   "export <transcript.csv|->",
		Short: "Write the report and subject list to an XLSX workbook",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			opts, err := list.options()
			if err != nil {
				return err
			}
			sess, err := sel.load(ctx, cmd, args[0])
			if err != nil {
				return err
			}
			report, err := sess.Evaluate()
			if err != nil {
				return err
			}
			subjects, err := sess.Subjects(opts)
			if err != nil {
				return err
			}

			target := strings.TrimSpace(outPath)
			if target == stdioPath {
				return export.Write(cmd.OutOrStdout(), report, subjects)
			}
			if target == "" {
				name := "gradecheck-" + report.SnapshotID.String()[:8] + ".xlsx"
				target = filepath.Join(cfg.Output.ExportDir, name)
			} else if target, err = config.ExpandPath(target); err != nil {
				return fmt.Errorf("resolve output path: %w", err)
			}
			if err := export.WriteFile(target, report, subjects); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote workbook to %s\n", target)
			return nil
		},
	}

	sel.register(cmd)
	list.register(cmd)
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Workbook path (\"-\" for stdout; defaults to output.export_dir)")
	return cmd
}
