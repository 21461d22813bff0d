package transcript

import (
	"testing"
)

func TestSemesterRankOrder(t *testing.T) {
	tokens := []string{Spring, Summer, Fall, Winter, "通年"}
	prev := 0
	for _, token := range tokens {
		rank := SemesterRank(token)
		if rank <= prev {
			t.Fatalf("rank of %q = %d, want > %d", token, rank, prev)
		}
		prev = rank
	}
}

func TestSemesterRankTotal(t *testing.T) {
	tests := []struct {
		token string
		want  int
	}{
		{Spring, 1},
		{Summer, 2},
		{Fall, 3},
		{Winter, 4},
		{"", OtherRank},
		{"前期", OtherRank},
		{"spring", OtherRank},
	}
	for _, tt := range tests {
		if got := SemesterRank(tt.token); got != tt.want {
			t.Errorf("SemesterRank(%q) = %d, want %d", tt.token, got, tt.want)
		}
	}
}

func TestParseSemester(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"spring", Spring, false},
		{" Autumn ", Fall, false},
		{"WINTER", Winter, false},
		{Summer, Summer, false},
		{"3", Fall, false},
		{"冬", Winter, false},
		{"monsoon", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseSemester(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseSemester(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseSemester(%q) error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSemester(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("2021:fall", Spring)
	if err != nil {
		t.Fatalf("ParsePeriod: %v", err)
	}
	if p.Year != 2021 || p.Semester != Fall {
		t.Fatalf("unexpected period %+v", p)
	}

	p, err = ParsePeriod("2020", Winter)
	if err != nil {
		t.Fatalf("ParsePeriod: %v", err)
	}
	if p.Year != 2020 || p.Semester != Winter {
		t.Fatalf("expected fallback semester, got %+v", p)
	}

	if _, err := ParsePeriod("twenty:spring", Spring); err == nil {
		t.Fatal("expected error for non-numeric year")
	}
	if _, err := ParsePeriod("2020:rainy", Spring); err == nil {
		t.Fatal("expected error for unknown semester")
	}
}

func TestPeriodCompareAndKey(t *testing.T) {
	a := Period{Year: 2020, Semester: Winter}
	b := Period{Year: 2021, Semester: Spring}
	other := Period{Year: 2020, Semester: "集中"}

	if a.Compare(b) != -1 || b.Compare(a) != 1 {
		t.Fatal("expected 2020 winter before 2021 spring")
	}
	if a.Compare(other) != -1 {
		t.Fatal("expected unknown semester after winter")
	}
	if a.Compare(a) != 0 {
		t.Fatal("expected equal periods to compare 0")
	}
	if a.Key() != 20204 || other.Key() != 20210 {
		t.Fatalf("unexpected keys %d %d", a.Key(), other.Key())
	}
}

func TestGradePoint(t *testing.T) {
	tests := []struct {
		grade string
		want  float64
	}{
		{GradeS, 4},
		{GradeA, 3},
		{GradeB, 2},
		{GradeC, 1},
		{GradeF, 0},
		{StatusPass, 0},
		{StatusFail, 0},
		{StatusRecognized, 0},
		{"S", 4},
		{"a", 0},
		{"", 0},
		{"優", 0},
	}
	for _, tt := range tests {
		if got := GradePoint(tt.grade); got != tt.want {
			t.Errorf("GradePoint(%q) = %v, want %v", tt.grade, got, tt.want)
		}
	}
}

func TestLetterGradeAndEarned(t *testing.T) {
	for _, token := range PassFailTokens() {
		if IsLetterGrade(token) {
			t.Errorf("expected %q to be pass/fail only", token)
		}
	}
	if !IsLetterGrade(GradeF) {
		t.Error("expected F to be a letter grade")
	}
	if !IsEarnedStatus(StatusPass) || !IsEarnedStatus(StatusRecognized) {
		t.Error("expected pass and recognized to be earned")
	}
	if IsEarnedStatus(StatusFail) || IsEarnedStatus("") {
		t.Error("expected fail and empty status to be unearned")
	}
}

func TestRecordFailed(t *testing.T) {
	if !(Record{Grade: GradeF}).Failed() {
		t.Error("expected F to be failed")
	}
	if !(Record{Grade: StatusFail}).Failed() {
		t.Error("expected fail token to be failed")
	}
	if !(Record{Grade: "F"}).Failed() {
		t.Error("expected half-width F to be failed")
	}
	if (Record{Grade: GradeC}).Failed() {
		t.Error("expected C to pass")
	}
}
