package transcript

// FieldCount is the number of columns in one export row.
const FieldCount = 15

// Record is one parsed transcript line: a single subject attempt in one
// academic period. Records are values and are never mutated after ingest.
type Record struct {
	StudentCode     string `json:"student_code"`
	StudentID       string `json:"student_id"`
	DisplayYear     string `json:"display_year"`
	DisplaySemester string `json:"display_semester"`
	No              int    `json:"no"`
	Category        string `json:"category"`
	Subcategory     string `json:"subcategory"`
	Subject         string `json:"subject"`
	ReadingProgram  string `json:"reading_program"`
	Gymnastics      string `json:"gymnastics"`
	Credit          int    `json:"credit"`
	Year            int    `json:"year"`
	Semester        string `json:"semester"`
	Grade           string `json:"grade"`
	Status          string `json:"status"`
}

// Period returns the acquisition period of the record.
func (r Record) Period() Period {
	return Period{Year: r.Year, Semester: r.Semester}
}

// Earned reports whether the record's status counts toward earned credit.
func (r Record) Earned() bool {
	return IsEarnedStatus(r.Status)
}

// GradePoint returns the grade point of the record's grade.
func (r Record) GradePoint() float64 {
	return GradePoint(r.Grade)
}

// Failed reports whether the subject was not passed: an F letter grade or a
// fail status token in the grade column.
func (r Record) Failed() bool {
	switch NormalizeGrade(r.Grade) {
	case GradeF, StatusFail:
		return true
	default:
		return false
	}
}
