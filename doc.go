// Package alignstat computes significance statistics for pairwise
// local-alignment scores.
//
// Alignstat converts the raw score of a Smith-Waterman style local alignment
// into a bit score and an E-value under the Karlin-Altschul extreme-value
// model. The formulas are:
//
//	S' = (lambda*S - ln K) / ln 2
//	E  = K*m*n*exp(-lambda*S)
//
// where S is the raw score, m is the query sequence length, n is the total
// subject sequence length of the searched database, and (K, lambda) are
// empirical constants of the scoring scheme that produced the scores.
//
// # Quick Start
//
//	stats, err := alignstat.New(1_000_000) // total subject database length
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	hit := align.Result{Score: 50, QueryLen: 100}
//
//	bits, _ := stats.BitScore(hit)
//	e, _ := stats.ExpectValue(hit)
//	fmt.Println(bits, e)
//
// # Calibrations
//
// The default calibration is the ungapped BLOSUM-62 preset (K=0.134,
// lambda=0.318). The classical gapped BLOSUM-62/-11/-1 preset (K=0.035,
// lambda=0.252) is available via WithScheme:
//
//	stats, _ := alignstat.New(n, alignstat.WithScheme(calibration.SchemeGapped))
//
// Custom scoring schemes supply their own constants:
//
//	stats, _ := alignstat.New(n, alignstat.WithCalibration(calibration.Calibration{
//	    K:      0.041,
//	    Lambda: 0.267,
//	    Matrix: "BLOSUM-80",
//	}))
//
// The calibration must match the substitution matrix and gap penalties used
// to compute the raw scores; alignstat trusts the caller on that and performs
// no cross-validation.
//
// # Concurrency
//
// A Statistics value is immutable after construction. Every operation is a
// pure O(1) function of its inputs, so a single instance may be shared across
// any number of goroutines without synchronization.
//
// # Numeric Behavior
//
// Overflow and underflow in the E-value are valid outcomes, never errors: an
// extremely strong alignment underflows to 0 and an extremely weak one
// overflows to +Inf. Non-finite raw scores propagate into the results.
package alignstat
