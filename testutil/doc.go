// Package testutil provides testing utilities for alignstat.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe random source for generating raw scores
// and alignment hits.
//
// # Random Fixtures
//
//	rng := testutil.NewRNG(seed)
//	s := rng.ScoreIn(0, 500)            // single raw score
//	hits := rng.Results(100, 0, 500, 1000) // batch of random hits
package testutil
