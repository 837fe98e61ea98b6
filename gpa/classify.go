package gpa

import (
	"fmt"

	"github.com/wkdkavishka/gpa-calculator/transcript"
)

// Classification buckets a course record by retake necessity. Every
// record maps to exactly one bucket; the three buckets partition the
// transcript.
type Classification string

const (
	// ClassMustRetake marks failing or withheld results that require
	// mandatory repetition.
	ClassMustRetake Classification = "must-retake"

	// ClassRecommended marks passing but low results whose repetition
	// could improve the GPA.
	ClassRecommended Classification = "recommended"

	// ClassFine marks everything else, including NC and CM statuses.
	ClassFine Classification = "fine"
)

// Policy defines which grades fall into the retake buckets.
type Policy struct {
	// MustRetake lists grades requiring mandatory repetition.
	MustRetake []transcript.Grade

	// Recommended lists passing grades worth retaking for GPA improvement.
	Recommended []transcript.Grade
}

// DefaultPolicy returns the standard retake policy: F, E, and WH are
// mandatory; D and D+ are recommended.
func DefaultPolicy() Policy {
	return Policy{
		MustRetake:  []transcript.Grade{transcript.GradeF, transcript.GradeE, transcript.GradeWH},
		Recommended: []transcript.Grade{transcript.GradeD, transcript.GradeDPlus},
	}
}

// Validate checks that the policy buckets do not overlap.
func (p Policy) Validate() error {
	must := make(map[transcript.Grade]struct{}, len(p.MustRetake))
	for _, g := range p.MustRetake {
		must[g] = struct{}{}
	}
	for _, g := range p.Recommended {
		if _, ok := must[g]; ok {
			return fmt.Errorf("grade %s appears in both must-retake and recommended", g)
		}
	}
	return nil
}

// Classify maps a grade to its retake bucket. Pure lookup, no hidden state.
func (p Policy) Classify(g transcript.Grade) Classification {
	for _, m := range p.MustRetake {
		if g == m {
			return ClassMustRetake
		}
	}
	for _, r := range p.Recommended {
		if g == r {
			return ClassRecommended
		}
	}
	return ClassFine
}
