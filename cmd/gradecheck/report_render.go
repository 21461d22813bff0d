package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gradecheck/internal/session"
	"gradecheck/internal/stats"
	"gradecheck/internal/transcript"
)

const uncategorized = "(uncategorized)"

func categoryLabel(value string) string {
	if value == "" {
		return uncategorized
	}
	return value
}

func gpaStatusLine(summary stats.Summary, colorize bool) string {
	if !summary.HasGPA() {
		return renderStatusLine("GPA", statusWarn, stats.NoGPA+" no graded credit in selection", colorize)
	}
	return renderStatusLine("GPA", statusOK, stats.FormatGPA(summary.GPA), colorize)
}

func writeLines(out io.Writer, lines ...string) {
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
}

func writeReportHeader(out io.Writer, report session.Report, colorize bool) {
	writeLines(out, renderSectionHeader("Transcript", colorize)...)
	writeLines(out,
		renderStatusLine("Source", statusInfo, report.Source, colorize),
		renderStatusLine("Encoding", statusInfo, report.Encoding, colorize),
		renderStatusLine("Window", statusInfo, report.Window, colorize),
		renderStatusLine("Transcript span", statusInfo, report.Span.String(), colorize),
		renderStatusLine("Records", statusInfo, strconv.Itoa(report.Summary.Records), colorize),
	)
	if report.Warnings > 0 {
		msg := fmt.Sprintf("%d fields coerced to 0 (see log)", report.Warnings)
		writeLines(out, renderStatusLine("Parse warnings", statusWarn, msg, colorize))
	}
}

func breakdownTable(breakdown []stats.CategoryCredits) string {
	rows := make([][]string, 0, len(breakdown)*2)
	total := 0
	for _, c := range breakdown {
		rows = append(rows, []string{categoryLabel(c.Category), "", strconv.Itoa(c.Credits)})
		for _, sub := range c.Subcategories {
			rows = append(rows, []string{"", categoryLabel(sub.Subcategory), strconv.Itoa(sub.Credits)})
		}
		total += c.Credits
	}
	return tableSpec{
		headers: []string{"Category", "Subcategory", "Credits"},
		rows:    rows,
		aligns:  []columnAlignment{alignLeft, alignLeft, alignRight},
		footer:  []string{"Total", "", strconv.Itoa(total)},
	}.render()
}

func genresTable(groups []stats.CategoryGroup) string {
	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		subs := make([]string, len(g.Subcategories))
		for i, s := range g.Subcategories {
			subs[i] = categoryLabel(s)
		}
		rows = append(rows, []string{categoryLabel(g.Category), strings.Join(subs, ", ")})
	}
	return renderTable([]string{"Category", "Subcategories"}, rows, nil)
}

func subjectsTable(records []transcript.Record) string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			strconv.Itoa(r.No),
			strconv.Itoa(r.Year),
			r.Semester,
			categoryLabel(r.Category),
			r.Subcategory,
			r.Subject,
			strconv.Itoa(r.Credit),
			r.Grade,
			r.Status,
		})
	}
	return tableSpec{
		headers: []string{"No.", "Year", "Semester", "Category", "Subcategory", "Subject", "Credit", "Grade", "Status"},
		rows:    rows,
		aligns: []columnAlignment{
			alignRight, alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft, alignLeft,
		},
		footer: []string{"", "", "", "", "", fmt.Sprintf("%d subjects", len(records))},
	}.render()
}
