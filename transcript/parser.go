package transcript

import (
	"fmt"
	"strconv"
	"strings"
)

// fieldCount is the exact number of comma-separated fields per record:
// code, credits, grade.
const fieldCount = 3

// MalformedRecordError reports a line that failed field-count, credit, or
// grade validation. Line numbers are 1-based and count blank lines, so
// the number matches what an editor shows.
type MalformedRecordError struct {
	// Line is the 1-based line number in the input text.
	Line int

	// Content is the offending line as read (trimmed).
	Content string

	// Reason describes the validation failure.
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed record on line %d (%q): %s", e.Line, e.Content, e.Reason)
}

// Parse converts raw transcript text into an ordered sequence of course
// records. Blank lines are skipped. The first malformed line aborts the
// parse: a silently-skipped bad record would produce a misleading GPA.
func Parse(text string) (Transcript, error) {
	var records Transcript

	for i, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		record, err := parseLine(i+1, trimmed)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

func parseLine(lineNo int, line string) (CourseRecord, error) {
	fields := strings.Split(line, ",")
	if len(fields) != fieldCount {
		return CourseRecord{}, &MalformedRecordError{
			Line:    lineNo,
			Content: line,
			Reason:  fmt.Sprintf("expected %d comma-separated fields, got %d", fieldCount, len(fields)),
		}
	}

	code := strings.TrimSpace(fields[0])
	if code == "" {
		return CourseRecord{}, &MalformedRecordError{
			Line:    lineNo,
			Content: line,
			Reason:  "course code is empty",
		}
	}

	credits, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil || credits <= 0 {
		return CourseRecord{}, &MalformedRecordError{
			Line:    lineNo,
			Content: line,
			Reason:  fmt.Sprintf("credits %q is not a positive integer", strings.TrimSpace(fields[1])),
		}
	}

	grade, ok := ParseGrade(fields[2])
	if !ok {
		return CourseRecord{}, &MalformedRecordError{
			Line:    lineNo,
			Content: line,
			Reason:  fmt.Sprintf("unknown grade %q", strings.TrimSpace(fields[2])),
		}
	}

	return CourseRecord{Code: code, Credits: credits, Grade: grade}, nil
}
