// Package main provides the sumbench CLI entry point.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/orneryd/sumbench/pkg/config"
	"github.com/orneryd/sumbench/pkg/interp"
	"github.com/orneryd/sumbench/pkg/native"
	"github.com/orneryd/sumbench/pkg/simd"
	"github.com/orneryd/sumbench/pkg/suite"
)

var (
	version   = "0.1.0"
	commit    = "dev"
	buildTime = "unknown" // Set via ldflags: -X main.buildTime=$(date +%Y%m%d-%H%M%S)
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sumbench",
		Short: "sumbench - how fast can you sum 10 million floats?",
		Long: `sumbench times one operation, summing a large float64 array, across
implementation strategies and shows why identical math runs at very
different speeds:

  • C compiled at runtime, called through a dynamic-library FFI binding
  • an embedded interpreter: bridged built-in, bridged vector library,
    and a fully interpreted hand-written loop
  • the vek SIMD library, called directly
  • plain Go loops, sequential and lane-parallel (unrolled/SIMD)

Every variant is verified against a sequential reference sum before its
timing is trusted.`,
	}

	// Version command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("sumbench v%s (%s) built %s\n", version, commit, buildTime)
		},
	})

	// Run command
	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the summation benchmarks",
		RunE:  runBenchmarks,
	}
	runCmd.Flags().String("config", "", "Config file path (default: auto-detect sumbench.yaml)")
	runCmd.Flags().Int("size", getEnvInt("SUMBENCH_SIZE", config.DefaultSize), "Input array length")
	runCmd.Flags().Uint64("seed", 0, "RNG seed (0 = nondeterministic)")
	runCmd.Flags().Duration("budget", 0, "Per-variant sampling budget (default 1s)")
	runCmd.Flags().Int("trials", 0, "Max timed trials per variant (default 100)")
	runCmd.Flags().Bool("no-warmup", false, "Skip the untimed warm-up call")
	runCmd.Flags().String("cc", getEnvStr("SUMBENCH_CC", ""), "C compiler for the native variant")
	runCmd.Flags().StringSlice("disable", nil, "Variant labels to skip (e.g. c/ffi,yaegi/loop)")
	runCmd.Flags().Bool("sorted", true, "Also print the table sorted by best time")
	rootCmd.AddCommand(runCmd)

	// Info command
	rootCmd.AddCommand(&cobra.Command{
		Use:   "info",
		Short: "Show which execution substrates are available",
		Run:   runInfo,
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.FindConfigFile()
	}
	cfg, err := config.LoadFromFile(path)
	if err != nil {
		return nil, err
	}

	// Flags win over file and environment.
	if cmd.Flags().Changed("size") {
		cfg.Size, _ = cmd.Flags().GetInt("size")
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed, _ = cmd.Flags().GetUint64("seed")
	}
	if cmd.Flags().Changed("budget") {
		cfg.Budget, _ = cmd.Flags().GetDuration("budget")
	}
	if cmd.Flags().Changed("trials") {
		cfg.MaxTrials, _ = cmd.Flags().GetInt("trials")
	}
	if cmd.Flags().Changed("no-warmup") {
		noWarmup, _ := cmd.Flags().GetBool("no-warmup")
		cfg.Warmup = !noWarmup
	}
	if cmd.Flags().Changed("cc") {
		cfg.CC, _ = cmd.Flags().GetString("cc")
	}
	if cmd.Flags().Changed("disable") {
		cfg.Disable, _ = cmd.Flags().GetStringSlice("disable")
	}
	if cmd.Flags().Changed("sorted") {
		cfg.Sorted, _ = cmd.Flags().GetBool("sorted")
	}
	return cfg, cfg.Validate()
}

func runBenchmarks(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("Summing %d uniform [0,1) float64 samples per trial "+
		"(budget %s, max %d trials per variant)\n\n",
		cfg.Size, cfg.Budget, cfg.MaxTrials)

	s := suite.New(cfg)
	defer s.Close()

	start := time.Now()
	res := s.Run()
	elapsed := time.Since(start)

	for _, vr := range res.Variants {
		if vr.Err != nil {
			fmt.Printf("  %-14s unavailable: %v\n", vr.Label, vr.Err)
		}
	}

	fmt.Println(res.Table.Render())
	if cfg.Sorted {
		fmt.Println("\nSorted by best time:")
		fmt.Println(res.Sorted.Render())
	}
	fmt.Printf("\nReference sum: %.6f (expected ~%.1f), total run time %s\n",
		res.Reference, 0.5*float64(cfg.Size), elapsed.Round(time.Millisecond))

	if failed := res.Failed(); len(failed) > 0 {
		for _, vr := range failed {
			fmt.Fprintf(os.Stderr, "FAIL: %v\n", vr.Err)
		}
		return fmt.Errorf("%d variant(s) failed verification", len(failed))
	}
	return nil
}

func runInfo(cmd *cobra.Command, args []string) {
	info := simd.Info()
	fmt.Printf("SIMD implementation: %s (accelerated: %v)\n", info.Implementation, info.Accelerated)
	fmt.Printf("CPU features:        %s\n", strings.Join(info.Features, ", "))

	if cc, err := native.FindCompiler(getEnvStr("SUMBENCH_CC", "")); err == nil {
		fmt.Printf("C toolchain:         %s\n", cc)
	} else {
		fmt.Printf("C toolchain:         not found (c/ffi variant will be absent)\n")
	}

	if _, err := interp.NewYaegi(); err == nil {
		fmt.Printf("Interpreter bridge:  yaegi, ready\n")
	} else {
		fmt.Printf("Interpreter bridge:  unavailable: %v\n", err)
	}
}

// getEnvStr returns environment variable value or default
func getEnvStr(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvInt returns environment variable as int or default
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}
