package cmd

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mexus/range-perf/benchmark"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the range benchmark suite and print timing statistics",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig()
		if err != nil {
			log.Fatal().Err(err).Msg("Invalid configuration")
		}
		if err := benchmark.RunBenchmark(cfg); err != nil {
			log.Fatal().Err(err).Msg("Benchmark failed")
		}
	},
}

// loadConfig reads the benchmark configuration from viper.
func loadConfig() (benchmark.Config, error) {
	bounds, err := benchmark.ParseBounds(viper.GetStringSlice("bounds"))
	if err != nil {
		return benchmark.Config{}, err
	}

	return benchmark.Config{
		BenchmarkID:  viper.GetString("benchmark-id"),
		UpperBounds:  bounds,
		Window:       viper.GetUint64("window"),
		Cases:        viper.GetStringSlice("cases"),
		BenchTime:    viper.GetString("bench-time"),
		Samples:      viper.GetInt("samples"),
		Format:       viper.GetString("format"),
		LogFormat:    viper.GetString("log-format"),
		BaselineDir:  viper.GetString("baseline-dir"),
		SaveBaseline: viper.GetString("save-baseline"),
		Baseline:     viper.GetString("baseline"),
		Noise:        viper.GetFloat64("noise"),
	}, nil
}

// addRangeFlags registers the flags shared by run and verify.
func addRangeFlags(cmd *cobra.Command) {
	cmd.Flags().StringSlice("bounds", []string{"10454235000005000", "max-1", "max"}, "Upper bounds to benchmark: decimal values, 'max' or 'max-1'")
	cmd.Flags().Uint64("window", 1<<16, "Elements per range, anchored at the upper bound (0 starts every range at 1)")
	cmd.Flags().StringSlice("cases", benchmark.DefaultCases, "Cases to run: non-inclusive, inclusive, dynamic, dynamic-seq")
}

func init() {
	rootCmd.AddCommand(runCmd)

	addRangeFlags(runCmd)
	runCmd.Flags().String("benchmark-id", "default", "Optional benchmark ID tag for logs")
	runCmd.Flags().String("bench-time", "1s", "Harness run time per case, as a duration or an iteration count like '1000x'")
	runCmd.Flags().Int("samples", 100, "Individually timed invocations per case for the latency distribution")
	runCmd.Flags().String("format", "text", "Report format: 'text' or 'json'")

	// Baseline flags
	runCmd.Flags().String("baseline-dir", "", "Path to the Pebble baseline database (empty disables baselines)")
	runCmd.Flags().String("save-baseline", "", "Save this run's results under the given baseline name")
	runCmd.Flags().String("baseline", "", "Compare results against the given baseline name")
	runCmd.Flags().Float64("noise", benchmark.DefaultNoise, "Relative change treated as noise when comparing against a baseline")
}
