package alignstat_test

import (
	"fmt"
	"log"

	"github.com/hupe1980/alignstat"
	"github.com/hupe1980/alignstat/align"
	"github.com/hupe1980/alignstat/calibration"
)

// Example demonstrates scoring a hit against a database with the default
// ungapped calibration.
func Example() {
	// n is the sum of the lengths of all subject sequences in the database.
	stats, err := alignstat.New(1_000_000)
	if err != nil {
		log.Fatal(err)
	}

	hit := align.Result{Score: 50, QueryLen: 100}

	bits, err := stats.BitScore(hit)
	if err != nil {
		log.Fatal(err)
	}

	e, err := stats.ExpectValue(hit)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("bits=%.2f\n", bits)
	fmt.Printf("e=%.2f\n", e)
	// Output:
	// bits=25.84
	// e=1.67
}

// Example_gapped demonstrates selecting the classical gapped calibration.
func Example_gapped() {
	stats, err := alignstat.New(1_000_000, alignstat.WithScheme(calibration.SchemeGapped))
	if err != nil {
		log.Fatal(err)
	}

	bits, err := stats.BitScore(align.Result{Score: 50, QueryLen: 100})
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("bits=%.2f\n", bits)
	// Output:
	// bits=23.01
}

// ExampleStatistics_Describe demonstrates the configuration report.
func ExampleStatistics_Describe() {
	stats, err := alignstat.New(2_000_000, alignstat.WithScheme(calibration.SchemeGapped))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Print(stats.Describe())
	// Output:
	// K: 0.035
	// Lambda: 0.252
	// Matrix: BLOSUM-62
	// Gap Penalties: Existence: -11, Extension: -1
	// Database Length: 2000000
}
