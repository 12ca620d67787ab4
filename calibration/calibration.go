// Package calibration provides (K, lambda) parameter sets for the
// Karlin-Altschul statistics of local-alignment scores.
//
// K and lambda are empirical constants of the extreme-value distribution
// that raw scores follow under the random-match null model. They are specific
// to the scoring scheme (substitution matrix and gap penalties) that produced
// the scores, so a calibration is only meaningful for alignments computed
// under the matching scheme.
package calibration

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnknownScheme is returned when a scheme has no registered calibration.
	ErrUnknownScheme = errors.New("unknown calibration scheme")
)

// ErrNonPositiveConstant indicates a calibration constant that is not a
// positive finite number.
type ErrNonPositiveConstant struct {
	Name  string
	Value float64
}

func (e *ErrNonPositiveConstant) Error() string {
	return fmt.Sprintf("calibration constant %s must be positive and finite, got %v", e.Name, e.Value)
}

// Calibration is an immutable (K, lambda) parameter set together with the
// display metadata of the scoring scheme it was fitted to.
type Calibration struct {
	// K is the scale constant of the score distribution.
	K float64

	// Lambda is the decay-rate constant of the score distribution.
	Lambda float64

	// Matrix is the substitution matrix label, e.g. "BLOSUM-62".
	Matrix string

	// GapExistence and GapExtension are the gap penalties of the scheme.
	// Both are zero for ungapped schemes.
	GapExistence int
	GapExtension int
}

// Validate checks that K and Lambda are positive finite numbers.
func (c Calibration) Validate() error {
	if !(c.K > 0) || math.IsInf(c.K, 1) {
		return &ErrNonPositiveConstant{Name: "K", Value: c.K}
	}
	if !(c.Lambda > 0) || math.IsInf(c.Lambda, 1) {
		return &ErrNonPositiveConstant{Name: "lambda", Value: c.Lambda}
	}
	return nil
}

// Ungapped returns true when the scheme carries no gap penalties.
func (c Calibration) Ungapped() bool {
	return c.GapExistence == 0 && c.GapExtension == 0
}

var (
	// Ungapped is the calibration for ungapped BLOSUM-62 local alignments.
	Ungapped = Calibration{
		K:      0.134,
		Lambda: 0.318,
		Matrix: "BLOSUM-62",
	}

	// Gapped is the classical calibration for gapped BLOSUM-62 local
	// alignments with gap existence -11 and extension -1.
	Gapped = Calibration{
		K:            0.035,
		Lambda:       0.252,
		Matrix:       "BLOSUM-62",
		GapExistence: -11,
		GapExtension: -1,
	}
)

// Scheme identifies a named calibration preset.
type Scheme int

const (
	SchemeUngapped Scheme = iota
	SchemeGapped
)

func (s Scheme) String() string {
	switch s {
	case SchemeUngapped:
		return "Ungapped"
	case SchemeGapped:
		return "Gapped"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// Provider returns the calibration preset for the given scheme.
func Provider(s Scheme) (Calibration, error) {
	switch s {
	case SchemeUngapped:
		return Ungapped, nil
	case SchemeGapped:
		return Gapped, nil
	default:
		return Calibration{}, fmt.Errorf("%w: %v", ErrUnknownScheme, s)
	}
}
