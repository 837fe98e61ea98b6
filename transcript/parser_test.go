package transcript

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_WellFormed(t *testing.T) {
	input := "SCS1201,3,B-\nSCS1202,3,A\nSCS1203,3,F\n"

	tr, err := Parse(input)
	require.NoError(t, err)
	require.Len(t, tr, 3)

	assert.Equal(t, CourseRecord{Code: "SCS1201", Credits: 3, Grade: GradeBMinus}, tr[0])
	assert.Equal(t, CourseRecord{Code: "SCS1202", Credits: 3, Grade: GradeA}, tr[1])
	assert.Equal(t, CourseRecord{Code: "SCS1203", Credits: 3, Grade: GradeF}, tr[2])
}

func TestParse_SkipsBlankLines(t *testing.T) {
	input := "\nSCS1201,3,B-\n\n   \nSCS1202,4,C+\n\n"

	tr, err := Parse(input)
	require.NoError(t, err)
	assert.Len(t, tr, 2)
}

func TestParse_NormalizesGradeTokens(t *testing.T) {
	input := "SCS1201 , 3 , b-\nSCS1202,3,  wh  \n"

	tr, err := Parse(input)
	require.NoError(t, err)
	require.Len(t, tr, 2)

	assert.Equal(t, GradeBMinus, tr[0].Grade)
	assert.Equal(t, "SCS1201", tr[0].Code)
	assert.Equal(t, GradeWH, tr[1].Grade)
}

func TestParse_EmptyInput(t *testing.T) {
	tr, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, tr)
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
	}{
		{
			name:     "too few fields",
			input:    "SCS1201,3,A\nSCS1202,3\n",
			wantLine: 2,
		},
		{
			name:     "too many fields",
			input:    "SCS1201,3,A,extra\n",
			wantLine: 1,
		},
		{
			name:     "unknown grade",
			input:    "SCS1201,3,A\nSCS1202,3,A\nSCS1204,3,Z\n",
			wantLine: 3,
		},
		{
			name:     "non-integer credits",
			input:    "SCS1201,three,A\n",
			wantLine: 1,
		},
		{
			name:     "zero credits",
			input:    "SCS1201,0,A\n",
			wantLine: 1,
		},
		{
			name:     "negative credits",
			input:    "SCS1201,-2,A\n",
			wantLine: 1,
		},
		{
			name:     "empty course code",
			input:    ",3,A\n",
			wantLine: 1,
		},
		{
			name:     "blank lines still counted",
			input:    "\n\nSCS1201,3,Q\n",
			wantLine: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := Parse(tt.input)
			require.Error(t, err)
			assert.Nil(t, tr)

			var malformed *MalformedRecordError
			require.True(t, errors.As(err, &malformed))
			assert.Equal(t, tt.wantLine, malformed.Line)
			assert.NotEmpty(t, malformed.Content)
			assert.Contains(t, err.Error(), "line")
		})
	}
}

func TestParse_FormatRoundTrip(t *testing.T) {
	input := "SCS1201,3,B-\n\nSCS1202,4,A\nSCS1203,2,WH\n\n"

	tr, err := Parse(input)
	require.NoError(t, err)

	again, err := Parse(tr.Format())
	require.NoError(t, err)
	assert.Equal(t, tr, again)
}

func TestTranscript_TotalCredits(t *testing.T) {
	tr := Transcript{
		{Code: "A1", Credits: 3, Grade: GradeA},
		{Code: "A2", Credits: 2, Grade: GradeWH},
		{Code: "A3", Credits: 4, Grade: GradeD},
	}
	assert.Equal(t, 9, tr.TotalCredits())
}
