// Package gpa computes grade-point averages, retake classifications, and
// retake projections over a parsed transcript.
//
// The engine is a stateless pure function over its inputs: the grade-point
// table and retake policy are immutable configuration passed in at
// construction, never mutable globals. Concurrent use over independent
// transcripts is safe by construction.
package gpa

import (
	"fmt"

	"github.com/wkdkavishka/gpa-calculator/transcript"
)

// PointTable maps scoring-eligible grades to point values on the 4.0
// scale. Non-scoring grades (WH, NC, CM) never appear in the table.
type PointTable map[transcript.Grade]float64

// DefaultTable returns the standard 4.0-scale table.
func DefaultTable() PointTable {
	return PointTable{
		transcript.GradeA:      4.0,
		transcript.GradeAMinus: 3.7,
		transcript.GradeBPlus:  3.3,
		transcript.GradeB:      3.0,
		transcript.GradeBMinus: 2.7,
		transcript.GradeCPlus:  2.3,
		transcript.GradeC:      2.0,
		transcript.GradeCMinus: 1.7,
		transcript.GradeDPlus:  1.3,
		transcript.GradeD:      1.0,
		transcript.GradeE:      0.0,
		transcript.GradeF:      0.0,
	}
}

// Points returns the point value for a grade. ok is false for
// non-scoring grades and grades missing from the table.
func (t PointTable) Points(g transcript.Grade) (float64, bool) {
	if !g.Scoring() {
		return 0, false
	}
	p, ok := t[g]
	return p, ok
}

// Validate checks that the table covers exactly the scoring-eligible
// vocabulary with point values on [0, 4].
func (t PointTable) Validate() error {
	for g, p := range t {
		if !g.Scoring() {
			return fmt.Errorf("grade %s is not scoring-eligible and cannot carry points", g)
		}
		if p < 0 || p > 4 {
			return fmt.Errorf("grade %s has point value %v outside [0, 4]", g, p)
		}
	}

	for _, g := range transcript.AllGrades {
		if !g.Scoring() {
			continue
		}
		if _, ok := t[g]; !ok {
			return fmt.Errorf("table is missing scoring-eligible grade %s", g)
		}
	}

	return nil
}

// sortPoints returns the point value used for ordering retake lists.
// Non-scoring grades sort as 0, matching their zero contribution.
func (t PointTable) sortPoints(g transcript.Grade) float64 {
	p, ok := t.Points(g)
	if !ok {
		return 0
	}
	return p
}
