// Package peakjoin provides approximate joining of sorted numeric sequences,
// built for matching peak lists by position (m/z, retention time or any
// ascending coordinate) within per-element tolerances.
//
// The engine supports:
//
//   - Left, inner and outer joins keyed by numeric proximity (package align)
//   - Duplicate resolution policies: keep, closest, remove
//   - Absolute, parts-per-million and per-element tolerances
//   - Peak list IO: CSV, Parquet and JSON with zstd/lz4 compression (package peaklist)
//   - Result persistence on local disk, memory, S3 or MinIO (package blobstore)
//   - Local maxima detection and NaN imputation (packages peaks, impute)
//   - A stable operation table for name-based dispatch (package ops)
//
// # Quick Start
//
// Align two sorted sequences:
//
//	a := peakjoin.New(peakjoin.WithTolerance(align.Abs(0.05)))
//	defer a.Close()
//
//	table, err := a.Align(ctx, []float64{1, 5, 9}, []float64{1.01, 4.99}, align.KindLeft)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, p := range table.Pairs() {
//	    fmt.Println(p.Left, p.Right)
//	}
//
// Align peak lists read from files and persist the result:
//
//	left, _ := peaklist.ReadFile("run1.csv")
//	right, _ := peaklist.ReadFile("run2.csv")
//
//	a := peakjoin.New(
//	    peakjoin.WithTolerance(align.Abs(0.01).WithPPM(5)),
//	    peakjoin.WithStore(blobstore.NewLocalStore("./results")),
//	)
//	defer a.Close()
//
//	res, err := a.AlignPeakLists(ctx, left, right, align.KindOuter)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = a.SaveResult(ctx, "run1-run2.json.zst", res)
//
// Batch alignment fans out over a bounded worker pool:
//
//	results, err := a.AlignBatch(ctx, pairs, align.KindLeft)
//
// # Tolerance
//
// A position x matches a position y when |x - y| <= tol(x), where tol(x) is
// the absolute tolerance plus x times the ppm term, or a caller-supplied
// per-element bound. See the align package for the exact contracts of each
// join kind.
package peakjoin
