// Package report renders GPA evaluation reports for display.
//
// The engine produces unrounded values; all rounding to display precision
// happens here.
package report

import (
	"fmt"
	"io"
	"math"

	"github.com/wkdkavishka/gpa-calculator/gpa"
)

// Format identifies an output format.
type Format string

const (
	// FormatText is the human-readable console format.
	FormatText Format = "text"

	// FormatJSON is the machine-readable JSON envelope.
	FormatJSON Format = "json"
)

// DefaultPrecision is the number of decimal places shown for GPA values.
const DefaultPrecision = 2

// FormatInfo provides metadata about an output format.
type FormatInfo struct {
	// Name is the format identifier.
	Name Format

	// MIMEType is the standard MIME type.
	MIMEType string

	// Extension is the file extension (with dot).
	Extension string

	// Description describes the format.
	Description string
}

// FormatRegistry contains metadata for all supported formats.
var FormatRegistry = map[Format]FormatInfo{
	FormatText: {
		Name:        FormatText,
		MIMEType:    "text/plain",
		Extension:   ".txt",
		Description: "Human-readable console report",
	},
	FormatJSON: {
		Name:        FormatJSON,
		MIMEType:    "application/json",
		Extension:   ".json",
		Description: "JSON report envelope",
	},
}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	f := Format(name)
	if _, ok := FormatRegistry[f]; !ok {
		return "", fmt.Errorf("unknown output format %q (supported: text, json)", name)
	}
	return f, nil
}

// Renderer writes an evaluation report to an output stream.
type Renderer interface {
	// Render writes the report for the named source file.
	Render(w io.Writer, source string, report *gpa.Report) error
}

// NewRenderer returns the renderer for a format. Precision is the number
// of decimal places for GPA values; values below zero fall back to
// DefaultPrecision.
func NewRenderer(format Format, precision int) (Renderer, error) {
	if precision < 0 {
		precision = DefaultPrecision
	}
	switch format {
	case FormatText:
		return &TextRenderer{Precision: precision}, nil
	case FormatJSON:
		return &JSONRenderer{Precision: precision}, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// round rounds a value to the given number of decimal places, halves
// away from zero.
func round(v float64, precision int) float64 {
	scale := math.Pow(10, float64(precision))
	return math.Round(v*scale) / scale
}
