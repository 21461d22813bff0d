package filter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gradecheck/internal/transcript"
)

// Attribute names one record field that constraints can match on.
type Attribute string

const (
	AttrStudentCode     Attribute = "student_code"
	AttrStudentID       Attribute = "student_id"
	AttrDisplayYear     Attribute = "display_year"
	AttrDisplaySemester Attribute = "display_semester"
	AttrNo              Attribute = "no"
	AttrCategory        Attribute = "category"
	AttrSubcategory     Attribute = "subcategory"
	AttrSubject         Attribute = "subject"
	AttrReadingProgram  Attribute = "reading_program"
	AttrGymnastics      Attribute = "gymnastics"
	AttrCredit          Attribute = "credit"
	AttrYear            Attribute = "year"
	AttrSemester        Attribute = "semester"
	AttrGrade           Attribute = "grade"
	AttrStatus          Attribute = "status"
)

var attributes = []Attribute{
	AttrStudentCode, AttrStudentID, AttrDisplayYear, AttrDisplaySemester,
	AttrNo, AttrCategory, AttrSubcategory, AttrSubject, AttrReadingProgram,
	AttrGymnastics, AttrCredit, AttrYear, AttrSemester, AttrGrade, AttrStatus,
}

// Attributes lists every attribute in export column order.
func Attributes() []Attribute {
	out := make([]Attribute, len(attributes))
	copy(out, attributes)
	return out
}

// ParseAttribute validates an attribute name.
func ParseAttribute(name string) (Attribute, error) {
	candidate := Attribute(strings.ToLower(strings.TrimSpace(name)))
	for _, attr := range attributes {
		if attr == candidate {
			return attr, nil
		}
	}
	return "", fmt.Errorf("unknown attribute %q", name)
}

// Value returns the record's value for the attribute. Numeric fields are
// rendered in base 10. Unknown attributes yield "" and false.
func (a Attribute) Value(r transcript.Record) (string, bool) {
	switch a {
	case AttrStudentCode:
		return r.StudentCode, true
	case AttrStudentID:
		return r.StudentID, true
	case AttrDisplayYear:
		return r.DisplayYear, true
	case AttrDisplaySemester:
		return r.DisplaySemester, true
	case AttrNo:
		return strconv.Itoa(r.No), true
	case AttrCategory:
		return r.Category, true
	case AttrSubcategory:
		return r.Subcategory, true
	case AttrSubject:
		return r.Subject, true
	case AttrReadingProgram:
		return r.ReadingProgram, true
	case AttrGymnastics:
		return r.Gymnastics, true
	case AttrCredit:
		return strconv.Itoa(r.Credit), true
	case AttrYear:
		return strconv.Itoa(r.Year), true
	case AttrSemester:
		return r.Semester, true
	case AttrGrade:
		return r.Grade, true
	case AttrStatus:
		return r.Status, true
	default:
		return "", false
	}
}

// Constraints maps attributes to value sets. Used as a whitelist it requires
// membership for every key; used as a blacklist it forbids membership for
// every key.
type Constraints map[Attribute][]string

// Allows applies whitelist semantics. A nil or empty map passes every record.
// A key present with no values passes nothing.
func (c Constraints) Allows(r transcript.Record) bool {
	for attr, values := range c {
		value, ok := attr.Value(r)
		if !ok || !contains(values, value) {
			return false
		}
	}
	return true
}

// Rejects applies blacklist semantics: it reports whether any constrained
// attribute of the record holds a forbidden value.
func (c Constraints) Rejects(r transcript.Record) bool {
	for attr, values := range c {
		value, ok := attr.Value(r)
		if ok && contains(values, value) {
			return true
		}
	}
	return false
}

// Merge returns a new map holding the union of both constraint sets.
func (c Constraints) Merge(other Constraints) Constraints {
	out := make(Constraints, len(c)+len(other))
	for _, src := range []Constraints{c, other} {
		for attr, values := range src {
			merged := out[attr]
			if merged == nil {
				merged = make([]string, 0, len(values))
			}
			for _, v := range values {
				if !contains(merged, v) {
					merged = append(merged, v)
				}
			}
			out[attr] = merged
		}
	}
	return out
}

// With returns a copy of c with values added under attr.
func (c Constraints) With(attr Attribute, values ...string) Constraints {
	return c.Merge(Constraints{attr: values})
}

// Keys returns the constrained attributes in sorted order.
func (c Constraints) Keys() []Attribute {
	keys := make([]Attribute, 0, len(c))
	for attr := range c {
		keys = append(keys, attr)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}

// Criteria is the full selection applied before aggregation.
type Criteria struct {
	// Window limits the acquisition period; nil selects Unbounded.
	Window  *Window
	Include Constraints
	Exclude Constraints
}

// EffectiveWindow returns the selected window or the unbounded default.
func (c Criteria) EffectiveWindow() Window {
	if c.Window == nil {
		return Unbounded()
	}
	return *c.Window
}

// Match reports whether the record passes the window, whitelist, and
// blacklist stages.
func (c Criteria) Match(r transcript.Record) bool {
	return c.EffectiveWindow().Contains(r) && c.Include.Allows(r) && !c.Exclude.Rejects(r)
}

// Apply returns the records that match, preserving order.
func (c Criteria) Apply(records []transcript.Record) []transcript.Record {
	out := make([]transcript.Record, 0, len(records))
	for _, r := range records {
		if c.Match(r) {
			out = append(out, r)
		}
	}
	return out
}
