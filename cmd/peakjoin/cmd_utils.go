package main

import (
	"fmt"
	"log"
	"log/slog"

	"github.com/hupe1980/peakjoin"
	"github.com/hupe1980/peakjoin/codec"
	"github.com/hupe1980/peakjoin/ops"
	"github.com/hupe1980/peakjoin/peaklist"
	"github.com/spf13/cobra"
)

// version is overridden at build time via -ldflags.
var version = "dev"

func runConvert(cmd *cobra.Command, args []string) {
	pl, err := peaklist.ReadFile(args[0])
	if err != nil {
		log.Fatalf("Failed to read %s: %v", args[0], err)
	}
	if err := peaklist.WriteFile(args[1], pl); err != nil {
		log.Fatalf("Failed to write %s: %v", args[1], err)
	}
}

func runOps(cmd *cobra.Command, args []string) {
	names := ops.Names()
	if outputFormat == "json" {
		printJSON(names)
		return
	}
	for _, name := range names {
		fmt.Println(name)
	}
}

func runVersion(cmd *cobra.Command, args []string) {
	fmt.Println("peakjoin " + version)
}

// newLogger builds the facade logger from --log-level. Logging is off unless
// the flag is set.
func newLogger() *peakjoin.Logger {
	if logLevel == "" {
		return peakjoin.NoopLogger()
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		log.Fatalf("Bad --log-level: %v", err)
	}
	return peakjoin.NewTextLogger(level)
}

func printJSON(v any) {
	data, err := codec.Default.Marshal(v)
	if err != nil {
		log.Fatalf("Failed to encode output: %v", err)
	}
	fmt.Println(string(data))
}
