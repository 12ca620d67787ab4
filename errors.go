package alignstat

import (
	"errors"
	"fmt"

	"github.com/hupe1980/alignstat/calibration"
)

var (
	// ErrInvalidConfiguration is returned by New when the supplied database
	// length or calibration constants are unusable. The statistics object is
	// not constructed.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrInvalidInput is returned by scoring operations when the supplied
	// alignment violates the input contract. The statistics object remains
	// valid.
	ErrInvalidInput = errors.New("invalid input")
)

// ErrNegativeDatabaseLength indicates a negative subject database length.
//
// Matches ErrInvalidConfiguration via errors.Is.
type ErrNegativeDatabaseLength struct {
	Length int64
}

func (e *ErrNegativeDatabaseLength) Error() string {
	return fmt.Sprintf("subject database length must be non-negative, got %d", e.Length)
}

func (e *ErrNegativeDatabaseLength) Unwrap() error { return ErrInvalidConfiguration }

// ErrNegativeQueryLength indicates an alignment with a negative query length.
//
// Matches ErrInvalidInput via errors.Is.
type ErrNegativeQueryLength struct {
	Length int
}

func (e *ErrNegativeQueryLength) Error() string {
	return fmt.Sprintf("query length must be non-negative, got %d", e.Length)
}

func (e *ErrNegativeQueryLength) Unwrap() error { return ErrInvalidInput }

// translateError normalizes calibration-package errors into the root error
// taxonomy so callers only need to match against alignstat sentinels.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var npc *calibration.ErrNonPositiveConstant
	if errors.As(err, &npc) {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}
	if errors.Is(err, calibration.ErrUnknownScheme) {
		return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
	}

	return err
}
