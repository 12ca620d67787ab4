// Package align defines the alignment-result contract consumed by alignstat.
//
// The statistics layer only needs a read-only view of a pairwise hit: the raw
// score and the query length. Any value satisfying the Alignment interface is
// accepted, regardless of which aligner produced it or how it is represented
// internally. Result is a ready-made immutable carrier for aligners that do
// not have their own hit type.
package align

// Alignment is the read-only view of a pairwise local-alignment result.
//
// RawScore returns the unnormalized score produced by the scoring algorithm;
// larger means more similar. QueryLength returns the length of the query
// sequence and must be non-negative for a well-formed alignment.
type Alignment interface {
	RawScore() float64
	QueryLength() int
}

// Result is an immutable pairwise local-alignment hit.
//
// Score and QueryLen are the fields the statistics layer consumes. The
// remaining fields carry the usual hit coordinates so ranking and reporting
// layers can identify where the match occurred; they are not interpreted
// here.
type Result struct {
	// Score is the raw alignment score.
	Score float64

	// QueryLen is the length of the query sequence.
	QueryLen int

	// QueryID and SubjectID identify the aligned sequences.
	QueryID   string
	SubjectID string

	// Half-open [start, end) ranges of the aligned regions.
	QueryStart   int
	QueryEnd     int
	SubjectStart int
	SubjectEnd   int
}

var _ Alignment = Result{}

// RawScore implements Alignment.
func (r Result) RawScore() float64 { return r.Score }

// QueryLength implements Alignment.
func (r Result) QueryLength() int { return r.QueryLen }
