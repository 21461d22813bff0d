package listing

import (
	"testing"

	"gradecheck/internal/transcript"
)

func subjects() []transcript.Record {
	return []transcript.Record{
		{No: 1, Subject: "Calculus", Category: "B", Year: 2020, Semester: transcript.Fall, Grade: transcript.GradeA},
		{No: 2, Subject: "Algebra", Category: "A", Year: 2021, Semester: transcript.Spring, Grade: transcript.GradeS},
		{No: 3, Subject: "Biology", Category: "A", Year: 2020, Semester: transcript.Spring, Grade: transcript.GradeF},
		{No: 4, Subject: "Drawing", Category: "A", Year: 2020, Semester: transcript.Fall, Grade: transcript.StatusFail},
	}
}

func numbers(records []transcript.Record) []int {
	out := make([]int, len(records))
	for i, r := range records {
		out[i] = r.No
	}
	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestListOrders(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want []int
	}{
		{"date asc cascades to category", Options{Key: SortDate, Order: Ascending}, []int{3, 4, 1, 2}},
		{"date desc", Options{Key: SortDate, Order: Descending}, []int{2, 1, 4, 3}},
		{"category asc then grade", Options{Key: SortCategory, Order: Ascending}, []int{3, 4, 2, 1}},
		{"grade desc then name desc", Options{Key: SortGrade, Order: Descending}, []int{2, 1, 4, 3}},
		{"name asc", Options{Key: SortName, Order: Ascending}, []int{2, 3, 1, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := numbers(List(subjects(), tt.opts))
			if !equalInts(got, tt.want) {
				t.Fatalf("order = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestListHideFailed(t *testing.T) {
	got := numbers(List(subjects(), Options{Key: SortName, Order: Ascending, HideFailed: true}))
	if !equalInts(got, []int{2, 1}) {
		t.Fatalf("expected failed subjects hidden, got %v", got)
	}
}

func TestListDoesNotMutateInput(t *testing.T) {
	input := subjects()
	_ = List(input, DefaultOptions())
	if !equalInts(numbers(input), []int{1, 2, 3, 4}) {
		t.Fatalf("input reordered: %v", numbers(input))
	}
}

func TestParseSortKeyAndOrder(t *testing.T) {
	if key, err := ParseSortKey("genre"); err != nil || key != SortCategory {
		t.Fatalf("ParseSortKey(genre) = %q, %v", key, err)
	}
	if key, err := ParseSortKey(""); err != nil || key != SortDate {
		t.Fatalf("ParseSortKey(\"\") = %q, %v", key, err)
	}
	if _, err := ParseSortKey("credits"); err == nil {
		t.Fatal("expected error for unknown key")
	}
	if order, err := ParseOrder("ASC"); err != nil || order != Ascending {
		t.Fatalf("ParseOrder(ASC) = %q, %v", order, err)
	}
	if _, err := ParseOrder("sideways"); err == nil {
		t.Fatal("expected error for unknown order")
	}
}

func TestListDateOrderPlacesUnknownSemesterAfterWinter(t *testing.T) {
	records := []transcript.Record{
		{No: 1, Subject: "Intensive", Year: 2020, Semester: "集中講義"},
		{No: 2, Subject: "Seminar", Year: 2021, Semester: transcript.Spring},
		{No: 3, Subject: "Skiing", Year: 2020, Semester: transcript.Winter},
		{No: 4, Subject: "Reading", Year: 2020, Semester: transcript.Spring},
	}
	got := numbers(List(records, Options{Key: SortDate, Order: Ascending}))
	if !equalInts(got, []int{4, 3, 1, 2}) {
		t.Fatalf("order = %v, want [4 3 1 2]", got)
	}
}

func TestListGradeTieFallsThroughToName(t *testing.T) {
	records := []transcript.Record{
		{No: 1, Subject: "Zoology", Grade: transcript.GradeF},
		{No: 2, Subject: "Archery", Grade: transcript.StatusPass},
	}
	for _, order := range []Order{Ascending, Descending} {
		got := numbers(List(records, Options{Key: SortGrade, Order: order}))
		want := []int{2, 1}
		if order == Descending {
			want = []int{1, 2}
		}
		if !equalInts(got, want) {
			t.Fatalf("%s: order = %v, want %v", order, got, want)
		}
	}
}
