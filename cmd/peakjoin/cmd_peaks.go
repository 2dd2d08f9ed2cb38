package main

import (
	"fmt"
	"log"

	"github.com/hupe1980/peakjoin/impute"
	"github.com/hupe1980/peakjoin/peaklist"
	"github.com/hupe1980/peakjoin/peaks"
	"github.com/spf13/cobra"
)

func runPeaks(cmd *cobra.Command, args []string) {
	pl, err := peaklist.ReadFile(args[0])
	if err != nil {
		log.Fatalf("Failed to read %s: %v", args[0], err)
	}
	if !pl.HasIntensity() {
		log.Fatalf("%s has no intensity column to detect peaks in", args[0])
	}

	maxima, err := peaks.LocalMaxima(pl.Intensity, halfWindow)
	if err != nil {
		log.Fatalf("Peak detection failed: %v", err)
	}

	picked := &peaklist.PeakList{ID: pl.ID, MZ: []float64{}, Intensity: []float64{}}
	for i, isMax := range maxima {
		if !isMax {
			continue
		}
		picked.MZ = append(picked.MZ, pl.MZ[i])
		picked.Intensity = append(picked.Intensity, pl.Intensity[i])
	}

	emitPeakList(picked)
}

func runImpute(cmd *cobra.Command, args []string) {
	pl, err := peaklist.ReadFile(args[0])
	if err != nil {
		log.Fatalf("Failed to read %s: %v", args[0], err)
	}
	if !pl.HasIntensity() {
		log.Fatalf("%s has no intensity column to impute", args[0])
	}

	filled := &peaklist.PeakList{
		ID:        pl.ID,
		MZ:        pl.MZ,
		Intensity: impute.NeighbourAverage(pl.Intensity, fallback),
	}

	emitPeakList(filled)
}

// emitPeakList writes a peak list to --output when set, otherwise renders it
// to stdout in the requested format.
func emitPeakList(pl *peaklist.PeakList) {
	if outputPath != "" {
		if err := peaklist.WriteFile(outputPath, pl); err != nil {
			log.Fatalf("Failed to write %s: %v", outputPath, err)
		}
		return
	}

	switch outputFormat {
	case "json":
		printJSON(pl)
	default:
		for i, mz := range pl.MZ {
			fmt.Printf("%g\t%g\n", mz, pl.Intensity[i])
		}
	}
}
