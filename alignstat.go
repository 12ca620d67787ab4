package alignstat

import (
	"math"

	"github.com/hupe1980/alignstat/align"
	"github.com/hupe1980/alignstat/calibration"
)

// Statistics computes significance measures for pairwise local-alignment
// scores under a fixed (K, lambda) calibration and a fixed total subject
// database length.
//
// A Statistics value is immutable after construction and safe for concurrent
// use by any number of goroutines without synchronization. Create one per
// search session (one database, one scoring scheme) and reuse it for every
// alignment scored during that session.
type Statistics struct {
	cal     calibration.Calibration
	n       int64
	lnK     float64 // precomputed ln(K)
	metrics MetricsCollector
	logger  *Logger
}

// New creates a Statistics object for a database with the given total subject
// sequence length (the sum of the lengths of all subject sequences searched).
//
// The default calibration is the ungapped BLOSUM-62 preset (K=0.134,
// lambda=0.318); use WithScheme, WithCalibration, WithK or WithLambda to
// select a different one. New fails with an error matching
// ErrInvalidConfiguration when subjectDatabaseLength is negative or the
// resolved calibration constants are not positive finite numbers.
func New(subjectDatabaseLength int64, optFns ...Option) (*Statistics, error) {
	opts := applyOptions(optFns)

	if subjectDatabaseLength < 0 {
		return nil, &ErrNegativeDatabaseLength{Length: subjectDatabaseLength}
	}

	// Resolve the calibration: preset scheme first, then an explicit
	// calibration, then individual constant overrides.
	cal := calibration.Ungapped
	if opts.scheme != nil {
		c, err := calibration.Provider(*opts.scheme)
		if err != nil {
			return nil, translateError(err)
		}
		cal = c
	}
	if opts.cal != nil {
		cal = *opts.cal
	}
	if opts.k != nil {
		cal.K = *opts.k
	}
	if opts.lambda != nil {
		cal.Lambda = *opts.lambda
	}

	if err := cal.Validate(); err != nil {
		return nil, translateError(err)
	}

	s := &Statistics{
		cal:     cal,
		n:       subjectDatabaseLength,
		lnK:     math.Log(cal.K),
		metrics: opts.metricsCollector,
		logger:  opts.logger,
	}

	s.logger.LogConfigured(cal.K, cal.Lambda, subjectDatabaseLength, cal.Matrix)

	return s, nil
}

// SubjectDatabaseLength returns the total subject sequence length this object
// was constructed with.
func (s *Statistics) SubjectDatabaseLength() int64 {
	return s.n
}

// RawScore returns the raw score of the given alignment, unchanged. A larger
// raw score signifies greater similarity between the aligned sequences. Raw
// scores are only comparable between alignments produced by the same scoring
// procedure; use BitScore to compare across procedures.
func (s *Statistics) RawScore(a align.Alignment) float64 {
	return a.RawScore()
}

// BitScore returns the bit score of the given alignment:
//
//	S' = (lambda*S - ln K) / ln 2
//
// The bit score is the raw score normalized to units of bits, so scores from
// different scoring procedures can be compared. It is strictly increasing in
// the raw score. A non-finite raw score propagates into the result.
//
// Fails with an error matching ErrInvalidInput when the alignment reports a
// negative query length.
func (s *Statistics) BitScore(a align.Alignment) (float64, error) {
	if m := a.QueryLength(); m < 0 {
		err := &ErrNegativeQueryLength{Length: m}
		s.metrics.RecordBitScore(err)
		s.logger.LogScoreError("bit_score", m, err)
		return 0, err
	}

	bits := (s.cal.Lambda*a.RawScore() - s.lnK) / math.Ln2
	s.metrics.RecordBitScore(nil)
	return bits, nil
}

// ExpectValue returns the E-value of the given alignment:
//
//	E = K*m*n*exp(-lambda*S)
//
// The E-value is the expected number of chance alignments scoring at least S
// when a random query of length m is matched against the database; smaller
// means more significant. It is strictly decreasing in the raw score and
// scales linearly in both the query length and the database length.
//
// Overflow and underflow are valid outcomes, not errors: an extremely strong
// alignment underflows to 0 and an extremely weak one overflows to +Inf.
// Fails with an error matching ErrInvalidInput when the alignment reports a
// negative query length.
func (s *Statistics) ExpectValue(a align.Alignment) (float64, error) {
	m := a.QueryLength()
	if m < 0 {
		err := &ErrNegativeQueryLength{Length: m}
		s.metrics.RecordExpectValue(err)
		s.logger.LogScoreError("expect_value", m, err)
		return 0, err
	}

	e := s.cal.K * float64(m) * float64(s.n) * math.Exp(-s.cal.Lambda*a.RawScore())
	s.metrics.RecordExpectValue(nil)
	return e, nil
}

// Describe returns the fixed configuration of this statistics object as a
// displayable report. The report is metadata only; it is not derived from any
// alignment.
func (s *Statistics) Describe() Report {
	return Report{
		K:                     s.cal.K,
		Lambda:                s.cal.Lambda,
		Matrix:                s.cal.Matrix,
		GapExistence:          s.cal.GapExistence,
		GapExtension:          s.cal.GapExtension,
		SubjectDatabaseLength: s.n,
	}
}
