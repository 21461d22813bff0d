package ingest

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gradecheck/internal/transcript"
)

// HeaderSignature is the header line that precedes the data block. The
// trailing space inside the subject-name column is part of the export format.
const HeaderSignature = `"学生所属コード","学籍番号","画面指定年度","画面指定学期","No.","科目詳細区分","科目小区分","開講科目名 ","リーディングプログラム科目","知のジムナスティックス科目","単位数","修得年度","修得学期","評語","合否"`

// Options tunes parsing.
type Options struct {
	// Encoding forces a named encoding ("shift_jis", "euc-jp", "utf-8", ...).
	// Empty or "auto" detects it.
	Encoding string
}

// Result is the outcome of a successful parse.
type Result struct {
	Records  []transcript.Record
	Encoding string
	Warnings []ParseWarning
}

// ParseFile reads path and parses its contents.
func ParseFile(path string, opts Options) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read transcript %s: %w", path, err)
	}
	return Parse(data, opts)
}

// Parse decodes data and maps every line after the last header signature to a
// record. It fails only when decoding fails or no header line is present.
func Parse(data []byte, opts Options) (*Result, error) {
	text, encName, err := Decode(data, opts.Encoding)
	if err != nil {
		return nil, err
	}

	lines := splitLines(text)
	start := lastHeaderIndex(lines)
	if start < 0 {
		return nil, newError(ErrHeaderNotFound, fmt.Sprintf("decoded as %s", encName), nil)
	}

	result := &Result{
		Records:  make([]transcript.Record, 0, len(lines)-start-1),
		Encoding: encName,
	}
	for i, line := range lines[start+1:] {
		// 1-based position among non-empty lines.
		lineNo := start + i + 2
		record, warnings := parseRow(line, lineNo)
		result.Records = append(result.Records, record)
		result.Warnings = append(result.Warnings, warnings...)
	}
	return result, nil
}

func splitLines(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	lines := raw[:0]
	for _, line := range raw {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func lastHeaderIndex(lines []string) int {
	for i := len(lines) - 1; i >= 0; i-- {
		if lines[i] == HeaderSignature {
			return i
		}
	}
	return -1
}

func parseRow(line string, lineNo int) (transcript.Record, []ParseWarning) {
	fields := strings.Split(line, ",")
	var warnings []ParseWarning
	if len(fields) < transcript.FieldCount {
		warnings = append(warnings, ParseWarning{
			Line:   lineNo,
			Field:  "row",
			Value:  fmt.Sprintf("%d fields", len(fields)),
			Reason: fmt.Sprintf("padded to %d fields", transcript.FieldCount),
		})
		for len(fields) < transcript.FieldCount {
			fields = append(fields, "")
		}
	}
	for i := range fields {
		fields[i] = unquote(fields[i])
	}

	number := func(idx int, name string) int {
		value, err := parseLeadingInt(fields[idx])
		if err != nil {
			reason := "not a number, using 0"
			if errors.Is(err, strconv.ErrRange) {
				reason = "out of range, using 0"
			}
			warnings = append(warnings, ParseWarning{Line: lineNo, Field: name, Value: fields[idx], Reason: reason})
			return 0
		}
		return value
	}

	record := transcript.Record{
		StudentCode:     fields[0],
		StudentID:       fields[1],
		DisplayYear:     fields[2],
		DisplaySemester: fields[3],
		No:              number(4, "no"),
		Category:        fields[5],
		Subcategory:     fields[6],
		Subject:         fields[7],
		ReadingProgram:  fields[8],
		Gymnastics:      fields[9],
		Credit:          number(10, "credit"),
		Year:            number(11, "year"),
		Semester:        fields[12],
		Grade:           fields[13],
		Status:          fields[14],
	}
	if record.Credit < 0 {
		warnings = append(warnings, ParseWarning{Line: lineNo, Field: "credit", Value: fields[10], Reason: "negative, using 0"})
		record.Credit = 0
	}
	return record, warnings
}

// unquote strips one leading and one trailing double quote. Embedded quotes
// and commas are not unescaped.
func unquote(field string) string {
	field = strings.TrimPrefix(field, `"`)
	field = strings.TrimSuffix(field, `"`)
	return field
}

var errNoDigits = errors.New("no leading digits")

// parseLeadingInt parses an optional sign followed by the leading run of
// digits, ignoring surrounding whitespace and any trailing text. A run that
// does not fit in an int reports strconv.ErrRange.
func parseLeadingInt(value string) (int, error) {
	s := strings.TrimSpace(value)
	sign := ""
	if s != "" && (s[0] == '-' || s[0] == '+') {
		sign, s = s[:1], s[1:]
	}
	digits := 0
	for digits < len(s) && s[digits] >= '0' && s[digits] <= '9' {
		digits++
	}
	if digits == 0 {
		return 0, errNoDigits
	}
	return strconv.Atoi(sign + s[:digits])
}
