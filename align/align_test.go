package align

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResult_Alignment(t *testing.T) {
	r := Result{
		Score:        87.5,
		QueryLen:     120,
		QueryID:      "Q1",
		SubjectID:    "S9",
		QueryStart:   4,
		QueryEnd:     92,
		SubjectStart: 1010,
		SubjectEnd:   1098,
	}

	var a Alignment = r
	assert.Equal(t, 87.5, a.RawScore())
	assert.Equal(t, 120, a.QueryLength())
}

func TestResult_ZeroValue(t *testing.T) {
	var r Result
	assert.Equal(t, 0.0, r.RawScore())
	assert.Equal(t, 0, r.QueryLength())
}
