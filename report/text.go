package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/wkdkavishka/gpa-calculator/gpa"
)

const sectionRule = "----------------------------------------"

// TextRenderer writes the human-readable console report.
type TextRenderer struct {
	// Precision is the number of decimal places for GPA values.
	Precision int
}

// Render writes the report sections: current GPA, mandatory retakes,
// recommended retakes with per-course projections, and the scenario
// projections.
func (r *TextRenderer) Render(w io.Writer, source string, rep *gpa.Report) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Results: %s (%d credits, %d scored)\n", source, rep.CreditsAttempted, rep.CreditsScored)
	fmt.Fprintf(&sb, "Your CURRENT GPA is: %s\n", r.gpa(rep.CurrentGPA))

	if len(rep.MustRetake) > 0 {
		sb.WriteString("\nMUST RETAKE (Failing/Incomplete):\n")
		sb.WriteString(sectionRule + "\n")
		for _, course := range rep.MustRetake {
			fmt.Fprintf(&sb, "- %s (Current: %s, Credits: %d)\n", course.Code, course.Grade, course.Credits)
		}
	}

	if len(rep.Recommended) > 0 {
		sb.WriteString("\nRECOMMENDED TO RETAKE (For GPA Improvement):\n")
		sb.WriteString(sectionRule + "\n")
		for _, rec := range rep.Recommended {
			fmt.Fprintf(&sb, "- %s (Current: %s, Credits: %d)\n", rec.Course.Code, rec.Course.Grade, rec.Course.Credits)
			fmt.Fprintf(&sb, "  Potential GPA: %s (+%s)\n", r.gpa(rec.Projected), r.gpa(rec.Improvement))
		}
	}

	sb.WriteString("\n")
	fmt.Fprintf(&sb, "PROJECTED GPA after mandatory retakes: %s (+%s)\n",
		r.gpa(rep.ProjectedAfterMandatory), r.gpa(rep.ProjectedAfterMandatory-rep.CurrentGPA))
	fmt.Fprintf(&sb, "PROJECTED GPA after all retakes: %s (+%s)\n",
		r.gpa(rep.ProjectedAfterAll), r.gpa(rep.ProjectedAfterAll-rep.CurrentGPA))

	_, err := io.WriteString(w, sb.String())
	return err
}

func (r *TextRenderer) gpa(v float64) string {
	return fmt.Sprintf("%.*f", r.Precision, v)
}
