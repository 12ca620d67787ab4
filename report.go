package alignstat

import (
	"fmt"
	"strings"
)

// Report is the displayable configuration of a Statistics object: the
// calibration constants and the scoring scheme they were fitted to.
type Report struct {
	K                     float64
	Lambda                float64
	Matrix                string
	GapExistence          int
	GapExtension          int
	SubjectDatabaseLength int64
}

// Ungapped returns true when the scheme carries no gap penalties.
func (r Report) Ungapped() bool {
	return r.GapExistence == 0 && r.GapExtension == 0
}

// String renders the report, one field per line.
func (r Report) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "K: %v\n", r.K)
	fmt.Fprintf(&sb, "Lambda: %v\n", r.Lambda)
	fmt.Fprintf(&sb, "Matrix: %s\n", r.Matrix)
	if r.Ungapped() {
		sb.WriteString("Gap Penalties: none (ungapped)\n")
	} else {
		fmt.Fprintf(&sb, "Gap Penalties: Existence: %d, Extension: %d\n", r.GapExistence, r.GapExtension)
	}
	fmt.Fprintf(&sb, "Database Length: %d\n", r.SubjectDatabaseLength)
	return sb.String()
}
