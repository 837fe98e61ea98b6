package gpa

import (
	"errors"
	"fmt"
	"sort"

	"github.com/wkdkavishka/gpa-calculator/transcript"
)

// ErrNoScorableCourses is returned when the transcript is empty or every
// record is non-scoring (WH/NC/CM). The GPA is undefined in that case and
// is never coerced to a numeric 0.0.
var ErrNoScorableCourses = errors.New("no scoring-eligible courses in transcript")

// retakeGrade is the grade assumed for a retaken course.
const retakeGrade = transcript.GradeA

// Recommendation is a recommended-retake entry with its standalone
// projection: the GPA if only this course were retaken.
type Recommendation struct {
	Course transcript.CourseRecord `json:"course"`

	// Projected is the GPA after retaking just this course to an A.
	Projected float64 `json:"projected"`

	// Improvement is Projected minus the current GPA.
	Improvement float64 `json:"improvement"`
}

// Report is the full evaluation of a transcript. GPA fields hold
// unrounded values; rounding to display precision is the report
// renderer's concern.
type Report struct {
	// CurrentGPA is the credit-weighted mean over scoring-eligible records.
	CurrentGPA float64 `json:"current_gpa"`

	// CreditsAttempted sums credits over all records.
	CreditsAttempted int `json:"credits_attempted"`

	// CreditsScored sums credits over scoring-eligible records only.
	CreditsScored int `json:"credits_scored"`

	// MustRetake lists failing or withheld courses, ordered by credits
	// descending then grade points ascending.
	MustRetake []transcript.CourseRecord `json:"must_retake"`

	// Recommended lists marginal passing courses in the same order,
	// each with its standalone retake projection.
	Recommended []Recommendation `json:"recommended"`

	// Fine lists every other record in transcript order.
	Fine []transcript.CourseRecord `json:"fine"`

	// ProjectedAfterMandatory is the GPA with every must-retake course
	// substituted to an A. Formerly-withheld courses become
	// scoring-eligible at full points; credits are unchanged.
	ProjectedAfterMandatory float64 `json:"projected_after_mandatory"`

	// ProjectedAfterAll additionally substitutes an A for every
	// recommended course.
	ProjectedAfterAll float64 `json:"projected_after_all"`
}

// Engine evaluates transcripts against a grade-point table and retake
// policy. It holds no mutable state; a single Engine is safe for
// concurrent use across independent transcripts.
type Engine struct {
	table  PointTable
	policy Policy
}

// NewEngine creates an engine from explicit configuration.
func NewEngine(table PointTable, policy Policy) (*Engine, error) {
	if err := table.Validate(); err != nil {
		return nil, fmt.Errorf("validate point table: %w", err)
	}
	if err := policy.Validate(); err != nil {
		return nil, fmt.Errorf("validate retake policy: %w", err)
	}
	return &Engine{table: table, policy: policy}, nil
}

// NewDefaultEngine creates an engine with the standard 4.0 table and
// retake policy.
func NewDefaultEngine() *Engine {
	e, err := NewEngine(DefaultTable(), DefaultPolicy())
	if err != nil {
		panic(err)
	}
	return e
}

// Evaluate produces the GPA report for a transcript. It is a pure
// function: identical inputs yield identical reports.
func (e *Engine) Evaluate(tr transcript.Transcript) (*Report, error) {
	current, scored, ok := e.gpa(tr, nil)
	if !ok {
		return nil, ErrNoScorableCourses
	}

	report := &Report{
		CurrentGPA:       current,
		CreditsAttempted: tr.TotalCredits(),
		CreditsScored:    scored,
	}

	mandatory := make(map[int]struct{})
	all := make(map[int]struct{})
	var mustRetake, recommended []int

	for i, r := range tr {
		switch e.policy.Classify(r.Grade) {
		case ClassMustRetake:
			mandatory[i] = struct{}{}
			all[i] = struct{}{}
			mustRetake = append(mustRetake, i)
		case ClassRecommended:
			all[i] = struct{}{}
			recommended = append(recommended, i)
		default:
			report.Fine = append(report.Fine, r)
		}
	}

	e.sortRetakes(tr, mustRetake)
	e.sortRetakes(tr, recommended)

	for _, i := range mustRetake {
		report.MustRetake = append(report.MustRetake, tr[i])
	}
	for _, i := range recommended {
		projected, _, _ := e.gpa(tr, map[int]struct{}{i: {}})
		report.Recommended = append(report.Recommended, Recommendation{
			Course:      tr[i],
			Projected:   projected,
			Improvement: projected - current,
		})
	}

	report.ProjectedAfterMandatory, _, _ = e.gpa(tr, mandatory)
	report.ProjectedAfterAll, _, _ = e.gpa(tr, all)

	return report, nil
}

// gpa computes the credit-weighted mean, substituting a full-credit A for
// records whose index is in retake. Substituted records always count,
// including formerly non-scoring ones; unsubstituted non-scoring records
// contribute to neither numerator nor denominator. Accumulation is
// unrounded float64 to avoid compounding rounding error across records.
func (e *Engine) gpa(tr transcript.Transcript, retake map[int]struct{}) (value float64, credits int, ok bool) {
	retakePoints := e.table[retakeGrade]

	var points float64
	for i, r := range tr {
		if _, substituted := retake[i]; substituted {
			points += retakePoints * float64(r.Credits)
			credits += r.Credits
			continue
		}
		p, scoring := e.table.Points(r.Grade)
		if !scoring {
			continue
		}
		points += p * float64(r.Credits)
		credits += r.Credits
	}

	if credits == 0 {
		return 0, 0, false
	}
	return points / float64(credits), credits, true
}

// sortRetakes orders retake candidates by credits descending, then grade
// points ascending, so the heaviest and worst results lead the list.
func (e *Engine) sortRetakes(tr transcript.Transcript, idx []int) {
	sort.SliceStable(idx, func(a, b int) bool {
		ra, rb := tr[idx[a]], tr[idx[b]]
		if ra.Credits != rb.Credits {
			return ra.Credits > rb.Credits
		}
		return e.table.sortPoints(ra.Grade) < e.table.sortPoints(rb.Grade)
	})
}
