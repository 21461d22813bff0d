// Package export writes a session report to an XLSX workbook with Summary,
// Credits, and Subjects sheets.
package export

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"gradecheck/internal/session"
	"gradecheck/internal/stats"
	"gradecheck/internal/transcript"
)

// Sheet names in workbook order.
const (
	SheetSummary  = "Summary"
	SheetCredits  = "Credits"
	SheetSubjects = "Subjects"
)

var subjectHeader = []any{"No.", "Year", "Semester", "Category", "Subcategory", "Subject", "Credit", "Grade", "Status"}

// Build assembles the workbook. The caller owns the returned file and must
// close it.
func Build(report session.Report, subjects []transcript.Record) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName(f.GetSheetName(0), SheetSummary); err != nil {
		f.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("create style: %w", err)
	}

	w := &sheetWriter{f: f, bold: bold}
	w.summary(report)
	w.credits(report.Breakdown)
	w.subjects(subjects)
	if w.err != nil {
		f.Close()
		return nil, w.err
	}
	f.SetActiveSheet(0)
	return f, nil
}

// Write streams the workbook to out.
func Write(out io.Writer, report session.Report, subjects []transcript.Record) error {
	f, err := Build(report, subjects)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := f.WriteTo(out); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// WriteFile saves the workbook to path, creating parent directories.
func WriteFile(path string, report session.Report, subjects []transcript.Record) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}
	f, err := Build(report, subjects)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook %s: %w", path, err)
	}
	return nil
}

// sheetWriter keeps the first error so callers check once.
type sheetWriter struct {
	f    *excelize.File
	bold int
	err  error
}

func (w *sheetWriter) row(sheet string, idx int, values []any) {
	if w.err != nil {
		return
	}
	cell, err := excelize.CoordinatesToCellName(1, idx)
	if err != nil {
		w.err = err
		return
	}
	if err := w.f.SetSheetRow(sheet, cell, &values); err != nil {
		w.err = fmt.Errorf("%s row %d: %w", sheet, idx, err)
	}
}

func (w *sheetWriter) header(sheet string, values []any) {
	w.row(sheet, 1, values)
	if w.err != nil {
		return
	}
	last, err := excelize.CoordinatesToCellName(len(values), 1)
	if err != nil {
		w.err = err
		return
	}
	if err := w.f.SetCellStyle(sheet, "A1", last, w.bold); err != nil {
		w.err = err
	}
}

func (w *sheetWriter) newSheet(name string) {
	if w.err != nil {
		return
	}
	if _, err := w.f.NewSheet(name); err != nil {
		w.err = fmt.Errorf("create sheet %s: %w", name, err)
	}
}

func (w *sheetWriter) summary(report session.Report) {
	var gpa any = stats.NoGPA
	if !math.IsNaN(report.Summary.GPA) {
		gpa = report.Summary.GPA
	}
	w.header(SheetSummary, []any{"Metric", "Value"})
	rows := [][]any{
		{"Source", report.Source},
		{"Encoding", report.Encoding},
		{"Snapshot", report.SnapshotID.String()},
		{"Window", report.Window},
		{"GPA", gpa},
		{"Grade points", report.Summary.GradePoints},
		{"Graded credits", report.Summary.GradedCredits},
		{"Earned credits", report.Summary.EarnedCredits},
		{"Attempted credits", report.Summary.AttemptedCredits},
		{"Records", report.Summary.Records},
		{"Parse warnings", report.Warnings},
	}
	for i, r := range rows {
		w.row(SheetSummary, i+2, r)
	}
	if w.err == nil {
		w.err = w.f.SetColWidth(SheetSummary, "A", "B", 24)
	}
}

func (w *sheetWriter) credits(breakdown []stats.CategoryCredits) {
	w.newSheet(SheetCredits)
	w.header(SheetCredits, []any{"Category", "Subcategory", "Credits"})
	idx := 2
	for _, c := range breakdown {
		w.row(SheetCredits, idx, []any{c.Category, "", c.Credits})
		idx++
		for _, sub := range c.Subcategories {
			w.row(SheetCredits, idx, []any{c.Category, sub.Subcategory, sub.Credits})
			idx++
		}
	}
	if w.err == nil {
		w.err = w.f.SetColWidth(SheetCredits, "A", "B", 28)
	}
}

func (w *sheetWriter) subjects(records []transcript.Record) {
	w.newSheet(SheetSubjects)
	w.header(SheetSubjects, subjectHeader)
	for i, r := range records {
		w.row(SheetSubjects, i+2, []any{
			r.No, r.Year, r.Semester, r.Category, r.Subcategory,
			r.Subject, r.Credit, r.Grade, r.Status,
		})
	}
	if w.err == nil {
		w.err = w.f.SetColWidth(SheetSubjects, "D", "F", 28)
	}
}
