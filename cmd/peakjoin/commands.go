package main

import (
	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	logLevel     string
	outputFormat string

	joinKind   string
	tolerance  float64
	ppm        float64
	duplicates string
	outputPath string

	halfWindow int
	fallback   float64

	rootCmd = &cobra.Command{
		Use:   "peakjoin",
		Short: "Align sorted peak lists by position proximity",
		Long: `Peakjoin joins ascending numeric sequences, such as mass spectrometry
peak lists, by matching values that lie within a configurable tolerance
of each other. Inputs can be CSV, Parquet or JSON files, optionally
compressed with zstd or lz4.`,
	}

	// --- Alignment ---
	alignCmd = &cobra.Command{
		Use:   "align [left] [right]",
		Short: "Align two peak list files and print the join table",
		Args:  cobra.ExactArgs(2),
		Run:   runAlign, // Defined in cmd_align.go
	}

	resolveCmd = &cobra.Command{
		Use:   "resolve [query] [target]",
		Short: "Find the closest target peak for every query peak",
		Args:  cobra.ExactArgs(2),
		Run:   runResolve, // Defined in cmd_align.go
	}

	// --- Peak Processing ---
	peaksCmd = &cobra.Command{
		Use:   "peaks [input]",
		Short: "Detect local maxima in a peak list's intensities",
		Args:  cobra.ExactArgs(1),
		Run:   runPeaks, // Defined in cmd_peaks.go
	}

	imputeCmd = &cobra.Command{
		Use:   "impute [input]",
		Short: "Replace missing intensities with neighbour averages",
		Args:  cobra.ExactArgs(1),
		Run:   runImpute, // Defined in cmd_peaks.go
	}

	// --- Utilities ---
	convertCmd = &cobra.Command{
		Use:   "convert [input] [output]",
		Short: "Convert a peak list between CSV, Parquet and JSON",
		Long: `Convert reads a peak list and writes it back in the format implied by
the output path. A trailing .zst or .lz4 extension adds compression:
"peaks.csv" to "peaks.parquet.zst" converts and compresses in one step.`,
		Args: cobra.ExactArgs(2),
		Run:  runConvert, // Defined in cmd_utils.go
	}

	opsCmd = &cobra.Command{
		Use:   "ops",
		Short: "List the registered operation names",
		Args:  cobra.NoArgs,
		Run:   runOps, // Defined in cmd_utils.go
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the peakjoin version",
		Args:  cobra.NoArgs,
		Run:   runVersion, // Defined in cmd_utils.go
	}
)

// init runs when the Go program starts
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Log level (debug, info, warn, error); logging is off when unset")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "text",
		"Output format (text, json)")

	rootCmd.AddCommand(alignCmd)
	alignCmd.Flags().StringVar(&joinKind, "kind", "outer",
		"Join kind (outer, outer-forward, left, inner)")
	alignCmd.Flags().Float64Var(&tolerance, "tolerance", 0, "Absolute match tolerance")
	alignCmd.Flags().Float64Var(&ppm, "ppm", 0, "Relative match tolerance in parts per million")
	alignCmd.Flags().StringVar(&duplicates, "duplicates", "closest",
		"Duplicate match policy (keep, closest, remove)")
	alignCmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"Write the full result to this file instead of stdout")

	rootCmd.AddCommand(resolveCmd)
	resolveCmd.Flags().Float64Var(&tolerance, "tolerance", 0, "Absolute match tolerance")
	resolveCmd.Flags().Float64Var(&ppm, "ppm", 0, "Relative match tolerance in parts per million")
	resolveCmd.Flags().StringVar(&duplicates, "duplicates", "closest",
		"Duplicate match policy (keep, closest, remove)")

	rootCmd.AddCommand(peaksCmd)
	peaksCmd.Flags().IntVar(&halfWindow, "half-window", 1,
		"Number of neighbours on each side a maximum must dominate")
	peaksCmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"Write the detected peaks to this file instead of stdout")

	rootCmd.AddCommand(imputeCmd)
	imputeCmd.Flags().Float64Var(&fallback, "k", 0,
		"Fallback value when a gap has no usable neighbour")
	imputeCmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"Write the imputed peak list to this file instead of stdout")

	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(opsCmd)
	rootCmd.AddCommand(versionCmd)
}
