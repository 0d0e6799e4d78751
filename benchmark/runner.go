package benchmark

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ErrBenchmarkFailed is returned when the harness could not time a case.
var ErrBenchmarkFailed = errors.New("benchmark failed to run")

// Result holds the measurements of one case.
type Result struct {
	ID          string      `json:"id"`
	Group       string      `json:"group"`
	Case        string      `json:"case"`
	Low         uint64      `json:"low"`
	High        uint64      `json:"high"`
	Iterations  int         `json:"iterations"`
	NsPerOp     int64       `json:"ns_per_op"`
	AllocsPerOp int64       `json:"allocs_per_op"`
	BytesPerOp  int64       `json:"bytes_per_op"`
	Samples     Stats       `json:"samples"`
	Baseline    *Comparison `json:"baseline,omitempty"`
}

var harnessInit sync.Once

// RunBenchmark orchestrates the full benchmark lifecycle
func RunBenchmark(cfg Config) error {
	setupLog(cfg)
	initialLog(cfg)

	groups, err := NewSuite(cfg)
	if err != nil {
		return err
	}

	var store BaselineStore
	if cfg.BaselineDir != "" {
		s, err := NewPebbleBaselineStore(cfg.BaselineDir)
		if err != nil {
			return fmt.Errorf("failed to open baseline store: %w", err)
		}
		defer s.Close()
		store = s
	} else if cfg.Baseline != "" || cfg.SaveBaseline != "" {
		log.Warn().Msg("Baseline name given without --baseline-dir, baselines disabled")
	}

	results, err := runSuite(cfg, groups)
	if err != nil {
		return err
	}

	if store != nil && cfg.Baseline != "" {
		if err := compareBaseline(store, cfg, results); err != nil {
			return err
		}
	}

	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	if err := writeReport(out, cfg.Format, results); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if store != nil && cfg.SaveBaseline != "" {
		if err := store.Save(cfg.SaveBaseline, results); err != nil {
			return fmt.Errorf("failed to save baseline: %w", err)
		}
		log.Info().Str("baseline", cfg.SaveBaseline).Int("cases", len(results)).Msg("Baseline saved")
	}

	log.Info().Str("benchmark_id", cfg.BenchmarkID).Msg("Benchmark complete")
	return nil
}

func initialLog(cfg Config) {
	bounds := make([]string, 0, len(cfg.UpperBounds))
	for _, b := range cfg.UpperBounds {
		bounds = append(bounds, FormatBound(b))
	}

	log.Info().
		Str("benchmark_id", cfg.BenchmarkID).
		Strs("upper_bounds", bounds).
		Strs("cases", cfg.Cases).
		Uint64("window", cfg.Window).
		Str("bench_time", cfg.BenchTime).
		Int("samples", cfg.Samples).
		Str("baseline_dir", cfg.BaselineDir).
		Msg("Starting benchmark")
}

func setupLog(cfg Config) {
	if strings.ToLower(cfg.LogFormat) == "json" {
		zerolog.TimeFieldFormat = time.RFC3339Nano
		log.Logger = log.Output(os.Stderr)
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	}
}

// configureHarness prepares the testing package for use outside "go test".
func configureHarness(benchTime string) error {
	harnessInit.Do(testing.Init)
	if benchTime == "" {
		return nil
	}
	if err := flag.Set("test.benchtime", benchTime); err != nil {
		return fmt.Errorf("invalid bench time %q: %w", benchTime, err)
	}
	return nil
}

// runSuite measures every case of every group, one after another.
func runSuite(cfg Config, groups []Group) ([]Result, error) {
	if err := configureHarness(cfg.BenchTime); err != nil {
		return nil, err
	}

	var results []Result
	for _, g := range groups {
		log.Info().
			Str("group", g.Name).
			Stringer("bound", g.Bound).
			Int("cases", len(g.Cases)).
			Msg("Beginning group")

		for _, c := range g.Cases {
			r, err := measure(g, c, cfg.Samples)
			if err != nil {
				return nil, err
			}

			log.Info().
				Str("id", r.ID).
				Int("iterations", r.Iterations).
				Int64("ns_per_op", r.NsPerOp).
				Dur("p50", r.Samples.P50).
				Dur("p99", r.Samples.P99).
				Msg("Case complete")
			results = append(results, r)
		}
	}
	return results, nil
}

// measure times one case with testing.Benchmark and then records samples
// individually timed invocations for the latency distribution.
func measure(g Group, c Case, samples int) (Result, error) {
	id := caseID(g, c)
	op := c.New(g.Bound)

	br := testing.Benchmark(func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			op()
		}
	})
	if br.N == 0 {
		return Result{}, fmt.Errorf("%w: %s", ErrBenchmarkFailed, id)
	}

	collector := NewCollector()
	for range samples {
		start := time.Now()
		op()
		collector.Record(time.Since(start))
	}

	return Result{
		ID:          id,
		Group:       g.Name,
		Case:        c.Name,
		Low:         g.Bound.Low,
		High:        g.Bound.High,
		Iterations:  br.N,
		NsPerOp:     br.NsPerOp(),
		AllocsPerOp: br.AllocsPerOp(),
		BytesPerOp:  br.AllocedBytesPerOp(),
		Samples:     collector.Stats(),
	}, nil
}

// compareBaseline attaches a Comparison to every result found in the
// configured baseline. Cases missing from it are skipped.
func compareBaseline(store BaselineStore, cfg Config, results []Result) error {
	noise := cfg.Noise
	if noise <= 0 {
		noise = DefaultNoise
	}

	for i := range results {
		prev, err := store.Load(cfg.Baseline, results[i].ID)
		if err != nil {
			if IsBaselineNotFound(err) {
				log.Warn().Str("id", results[i].ID).Str("baseline", cfg.Baseline).Msg("No baseline entry")
				continue
			}
			return fmt.Errorf("failed to load baseline: %w", err)
		}
		cmp := Compare(cfg.Baseline, results[i], prev, noise)
		results[i].Baseline = &cmp
	}
	return nil
}

func writeReport(w io.Writer, format string, results []Result) error {
	if strings.ToLower(format) == "json" {
		return PrintJSONReport(w, results)
	}
	PrintReport(w, results)
	return nil
}
