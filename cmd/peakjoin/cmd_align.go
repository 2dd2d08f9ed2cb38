package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hupe1980/peakjoin"
	"github.com/hupe1980/peakjoin/align"
	"github.com/hupe1980/peakjoin/blobstore"
	"github.com/hupe1980/peakjoin/peaklist"
	"github.com/spf13/cobra"
)

func runAlign(cmd *cobra.Command, args []string) {
	kind, err := align.ParseKind(joinKind)
	if err != nil {
		log.Fatalf("Bad --kind: %v", err)
	}

	left, err := peaklist.ReadFile(args[0])
	if err != nil {
		log.Fatalf("Failed to read %s: %v", args[0], err)
	}
	right, err := peaklist.ReadFile(args[1])
	if err != nil {
		log.Fatalf("Failed to read %s: %v", args[1], err)
	}

	opts := alignerOptions()
	if outputPath != "" {
		opts = append(opts, peakjoin.WithStore(blobstore.NewLocalStore(filepath.Dir(outputPath))))
	}
	aligner := peakjoin.New(opts...)
	defer aligner.Close()

	res, err := aligner.AlignPeakLists(cmd.Context(), left, right, kind)
	if err != nil {
		log.Fatalf("Alignment failed: %v", err)
	}

	if outputPath != "" {
		if err := aligner.SaveResult(cmd.Context(), filepath.Base(outputPath), res); err != nil {
			log.Fatalf("Failed to write %s: %v", outputPath, err)
		}
		return
	}

	switch outputFormat {
	case "json":
		printJSON(res)
	default:
		for _, p := range res.Table.Pairs() {
			fmt.Printf("%s\t%s\n", p.Left, p.Right)
		}
		fmt.Fprintf(os.Stderr, "%s vs %s: %d matched of %d rows\n",
			res.LeftID, res.RightID, res.Matched, res.Table.Len())
	}
}

func runResolve(cmd *cobra.Command, args []string) {
	query, err := peaklist.ReadFile(args[0])
	if err != nil {
		log.Fatalf("Failed to read %s: %v", args[0], err)
	}
	target, err := peaklist.ReadFile(args[1])
	if err != nil {
		log.Fatalf("Failed to read %s: %v", args[1], err)
	}

	aligner := peakjoin.New(alignerOptions()...)
	defer aligner.Close()

	indices, err := aligner.Resolve(cmd.Context(), query.MZ, target.MZ)
	if err != nil {
		log.Fatalf("Resolve failed: %v", err)
	}

	switch outputFormat {
	case "json":
		out := make([]int, len(indices))
		for i, idx := range indices {
			out[i] = int(idx)
		}
		printJSON(map[string][]int{"indices": out})
	default:
		for i, idx := range indices {
			fmt.Printf("%g\t%s\n", query.MZ[i], idx)
		}
	}
}

// alignerOptions builds the facade options shared by align and resolve from
// the command line flags.
func alignerOptions() []peakjoin.Option {
	dup, err := align.ParseDuplicates(duplicates)
	if err != nil {
		log.Fatalf("Bad --duplicates: %v", err)
	}

	tol := align.Abs(tolerance)
	if ppm > 0 {
		tol = tol.WithPPM(ppm)
	}

	return []peakjoin.Option{
		peakjoin.WithTolerance(tol),
		peakjoin.WithDuplicates(dup),
		peakjoin.WithLogger(newLogger()),
	}
}
