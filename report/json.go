package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"

	"github.com/wkdkavishka/gpa-calculator/gpa"
)

// Envelope wraps a report for machine consumption. Every rendering gets
// a fresh identifier and timestamp.
type Envelope struct {
	ReportID    string      `json:"report_id"`
	GeneratedAt time.Time   `json:"generated_at"`
	Source      string      `json:"source"`
	Report      *gpa.Report `json:"report"`
}

// JSONRenderer writes the report as an indented JSON envelope.
type JSONRenderer struct {
	// Precision is the number of decimal places for GPA values.
	Precision int
}

// Render writes the JSON envelope. GPA values are rounded to the display
// precision; the engine's internal values stay unrounded.
func (r *JSONRenderer) Render(w io.Writer, source string, rep *gpa.Report) error {
	env := Envelope{
		ReportID:    uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		Source:      source,
		Report:      r.rounded(rep),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(env); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// rounded returns a display copy of the report with GPA values rounded.
func (r *JSONRenderer) rounded(rep *gpa.Report) *gpa.Report {
	out := *rep
	out.CurrentGPA = round(rep.CurrentGPA, r.Precision)
	out.ProjectedAfterMandatory = round(rep.ProjectedAfterMandatory, r.Precision)
	out.ProjectedAfterAll = round(rep.ProjectedAfterAll, r.Precision)

	out.Recommended = make([]gpa.Recommendation, len(rep.Recommended))
	for i, rec := range rep.Recommended {
		rec.Projected = round(rec.Projected, r.Precision)
		rec.Improvement = round(rec.Improvement, r.Precision)
		out.Recommended[i] = rec
	}
	return &out
}
