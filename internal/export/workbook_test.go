package export_test

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"gradecheck/internal/export"
	"gradecheck/internal/filter"
	"gradecheck/internal/ingest"
	"gradecheck/internal/listing"
	"gradecheck/internal/session"
	"gradecheck/internal/stats"
)

func row(fields ...string) string {
	return `"` + strings.Join(fields, `","`) + `"`
}

func loadedSession(t *testing.T) *session.Session {
	t.Helper()
	data := strings.Join([]string{
		ingest.HeaderSignature,
		row("01", "1", "2023", "春学期", "1", "教養教育系科目", "基盤教養教育科目", "情報社会と倫理", "", "", "2", "2020", "春学期", "Ｓ", "合"),
		row("01", "1", "2023", "春学期", "2", "専門教育系科目", "専門基礎教育科目", "線形代数学", "", "", "3", "2020", "秋学期", "Ｂ", "合"),
	}, "\n")
	s := session.New(nil, session.Options{})
	if _, err := s.Load(context.Background(), "transcript.csv", []byte(data)); err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	return s
}

func evaluate(t *testing.T, s *session.Session) session.Report {
	t.Helper()
	report, err := s.Evaluate()
	if err != nil {
		t.Fatalf("Evaluate returned error: %v", err)
	}
	return report
}

func TestWriteFileSheets(t *testing.T) {
	s := loadedSession(t)
	report := evaluate(t, s)
	subjects, err := s.Subjects(listing.Options{Key: listing.SortName, Order: listing.Ascending})
	if err != nil {
		t.Fatalf("Subjects returned error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out", "grades.xlsx")
	if err := export.WriteFile(path, report, subjects); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	want := []string{export.SheetSummary, export.SheetCredits, export.SheetSubjects}
	if len(sheets) != len(want) {
		t.Fatalf("sheets = %v, want %v", sheets, want)
	}
	for i := range want {
		if sheets[i] != want[i] {
			t.Fatalf("sheets = %v, want %v", sheets, want)
		}
	}

	gpa, err := f.GetCellValue(export.SheetSummary, "B6")
	if err != nil {
		t.Fatalf("read GPA cell: %v", err)
	}
	if gpa != "2.8" {
		t.Fatalf("GPA cell = %q, want 2.8", gpa)
	}

	rows, err := f.GetRows(export.SheetSubjects)
	if err != nil {
		t.Fatalf("read subjects: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus 2 subjects, got %d rows", len(rows))
	}
	if rows[1][5] != "情報社会と倫理" || rows[2][5] != "線形代数学" {
		t.Fatalf("unexpected subject order: %v", rows)
	}

	credits, err := f.GetRows(export.SheetCredits)
	if err != nil {
		t.Fatalf("read credits: %v", err)
	}
	// header, then category and subcategory rows for two categories
	if len(credits) != 5 {
		t.Fatalf("expected 5 credit rows, got %d: %v", len(credits), credits)
	}
	if credits[1][0] != "教養教育系科目" || credits[1][2] != "2" {
		t.Fatalf("unexpected first category row: %v", credits[1])
	}
}

func TestWriteUndefinedGPA(t *testing.T) {
	s := loadedSession(t)
	s.Select(session.Selection{Include: filter.Constraints{filter.AttrCategory: {"none"}}})
	report := evaluate(t, s)

	var buf bytes.Buffer
	if err := export.Write(&buf, report, nil); err != nil {
		t.Fatalf("Write returned error: %v", err)
	}
	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()
	gpa, err := f.GetCellValue(export.SheetSummary, "B6")
	if err != nil {
		t.Fatalf("read GPA cell: %v", err)
	}
	if gpa != stats.NoGPA {
		t.Fatalf("GPA cell = %q, want %q", gpa, stats.NoGPA)
	}
	rows, err := f.GetRows(export.SheetSubjects)
	if err != nil {
		t.Fatalf("read subjects: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected header only, got %d rows", len(rows))
	}
}
