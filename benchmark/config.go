package benchmark

import "io"

// Config defines the benchmark parameters passed from CLI
type Config struct {
	BenchmarkID string   // optional label for this benchmark run
	UpperBounds []uint64 // one case group per upper bound
	Window      uint64   // number of elements per range, 0 means start at 1
	Cases       []string // case names to run, empty means the default set
	BenchTime   string   // harness run length, e.g. "1s" or "500x"
	Samples     int      // individually timed invocations per case
	Format      string   // "text" or "json"
	LogFormat   string   // "json" or "console", default is "console"
	Out         io.Writer

	// Baseline configuration
	BaselineDir  string  // path to the baseline database, empty disables baselines
	SaveBaseline string  // name to save this run's results under
	Baseline     string  // name of the baseline to compare against
	Noise        float64 // relative change below which results count as unchanged
}
