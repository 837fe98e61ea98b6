// Package transcript provides types and a parser for course result files.
//
// A transcript file is UTF-8 text with one record per line:
//
//	COURSE_CODE,CREDITS,GRADE
//
// Example: SCS1201,3,B-
//
// Parsing is a pure transform from already-read text to records; reading
// the file itself is the caller's concern.
package transcript

import (
	"fmt"
	"strings"
)

// CourseRecord is a single course result. Records are immutable once parsed.
type CourseRecord struct {
	// Code is the course identifier (non-empty; uniqueness not required).
	Code string `json:"code"`

	// Credits is the credit weight of the course (positive integer).
	Credits int `json:"credits"`

	// Grade is the letter result.
	Grade Grade `json:"grade"`
}

func (r CourseRecord) String() string {
	return fmt.Sprintf("%s,%d,%s", r.Code, r.Credits, r.Grade)
}

// Transcript is an ordered sequence of course records. Order follows the
// input file and is preserved for reporting; it is irrelevant to GPA
// arithmetic.
type Transcript []CourseRecord

// Format re-serializes the transcript in the input file format, one
// record per line. Parsing the output yields an equal transcript.
func (t Transcript) Format() string {
	var sb strings.Builder
	for _, r := range t {
		sb.WriteString(r.String())
		sb.WriteString("\n")
	}
	return sb.String()
}

// TotalCredits sums credits over all records, scoring or not.
func (t Transcript) TotalCredits() int {
	total := 0
	for _, r := range t {
		total += r.Credits
	}
	return total
}
