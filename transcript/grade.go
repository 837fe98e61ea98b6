package transcript

import "strings"

// Grade represents a letter grade from the closed grading vocabulary.
type Grade string

const (
	// GradeA is the highest grade (4.0).
	GradeA Grade = "A"

	// GradeAMinus maps to 3.7.
	GradeAMinus Grade = "A-"

	// GradeBPlus maps to 3.3.
	GradeBPlus Grade = "B+"

	// GradeB maps to 3.0.
	GradeB Grade = "B"

	// GradeBMinus maps to 2.7.
	GradeBMinus Grade = "B-"

	// GradeCPlus maps to 2.3.
	GradeCPlus Grade = "C+"

	// GradeC maps to 2.0.
	GradeC Grade = "C"

	// GradeCMinus maps to 1.7.
	GradeCMinus Grade = "C-"

	// GradeDPlus maps to 1.3.
	GradeDPlus Grade = "D+"

	// GradeD maps to 1.0.
	GradeD Grade = "D"

	// GradeE is a failing grade (0.0).
	GradeE Grade = "E"

	// GradeF is a failing grade (0.0).
	GradeF Grade = "F"

	// GradeWH indicates the result is withheld.
	// Non-scoring: excluded from GPA arithmetic entirely.
	GradeWH Grade = "WH"

	// GradeNC indicates the course was not completed.
	// Non-scoring: excluded from GPA arithmetic entirely.
	GradeNC Grade = "NC"

	// GradeCM indicates a completed module without a letter result.
	// Non-scoring: excluded from GPA arithmetic entirely.
	GradeCM Grade = "CM"
)

// AllGrades lists every grade in the vocabulary, best to worst,
// with the non-scoring statuses last.
var AllGrades = []Grade{
	GradeA, GradeAMinus,
	GradeBPlus, GradeB, GradeBMinus,
	GradeCPlus, GradeC, GradeCMinus,
	GradeDPlus, GradeD,
	GradeE, GradeF,
	GradeWH, GradeNC, GradeCM,
}

var gradeSet = func() map[Grade]struct{} {
	s := make(map[Grade]struct{}, len(AllGrades))
	for _, g := range AllGrades {
		s[g] = struct{}{}
	}
	return s
}()

// ParseGrade normalizes a raw token (case-insensitive, whitespace-trimmed)
// and returns the matching Grade. ok is false for tokens outside the
// vocabulary.
func ParseGrade(token string) (Grade, bool) {
	g := Grade(strings.ToUpper(strings.TrimSpace(token)))
	_, ok := gradeSet[g]
	return g, ok
}

// Scoring reports whether the grade contributes to GPA arithmetic.
// WH, NC, and CM carry no credit weight and no grade points.
func (g Grade) Scoring() bool {
	switch g {
	case GradeWH, GradeNC, GradeCM:
		return false
	}
	_, known := gradeSet[g]
	return known
}

func (g Grade) String() string {
	return string(g)
}
