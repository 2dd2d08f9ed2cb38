// Package testutil provides testing utilities for peakjoin.
//
// This package is intended for use in tests and benchmarks only.
// It provides deterministic, seeded generators for the inputs the joins
// consume: ascending position sequences, perturbed replicates of a
// reference run, and intensity vectors with missing values.
//
// # Sequence Generation
//
//	rng := testutil.NewRNG(seed)
//	ref := rng.Ascending(10_000, 100, 0.5, 0.01) // strictly ascending
//	run := rng.Jittered(ref, 0.002)              // a noisy replicate
//	sub := rng.Thin(ref, 0.1)                    // with 10% of peaks dropped
//
// # Intensity Vectors
//
//	intensity := rng.Intensities(len(ref), 0.05) // 5% NaN gaps
package testutil
