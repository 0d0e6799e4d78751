package benchmark

import (
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Collector records per-invocation latencies of one benchmark case.
type Collector struct {
	mu   sync.Mutex
	hist *hdrhistogram.Histogram
	min  time.Duration
	max  time.Duration
	sum  time.Duration
	n    int64
}

// Stats represents aggregated sample metrics.
type Stats struct {
	Count  int64         `json:"count"`
	Min    time.Duration `json:"-"`
	Max    time.Duration `json:"-"`
	Mean   time.Duration `json:"-"`
	StdDev time.Duration `json:"-"`
	P50    time.Duration `json:"-"`
	P90    time.Duration `json:"-"`
	P99    time.Duration `json:"-"`

	// JSON-friendly nanosecond fields.
	MinNs    int64   `json:"min_ns"`
	MaxNs    int64   `json:"max_ns"`
	MeanNs   int64   `json:"mean_ns"`
	StdDevNs float64 `json:"stddev_ns"`
	P50Ns    int64   `json:"p50_ns"`
	P90Ns    int64   `json:"p90_ns"`
	P99Ns    int64   `json:"p99_ns"`
}

func NewCollector() *Collector {
	// Track latencies from 1ns up to 60s with 3 significant figures.
	return &Collector{hist: hdrhistogram.New(1, int64(time.Minute), 3)}
}

// Record adds a single sample.
func (c *Collector) Record(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ns := int64(d)
	if ns < c.hist.LowestTrackableValue() {
		ns = c.hist.LowestTrackableValue()
	}
	if ns > c.hist.HighestTrackableValue() {
		ns = c.hist.HighestTrackableValue()
	}
	_ = c.hist.RecordValue(ns)

	if c.n == 0 || d < c.min {
		c.min = d
	}
	if d > c.max {
		c.max = d
	}
	c.sum += d
	c.n++
}

// Stats computes the aggregate over everything recorded so far.
func (c *Collector) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	stats := Stats{
		Count: c.n,
		Min:   c.min,
		Max:   c.max,
	}
	if c.n > 0 {
		stats.Mean = c.sum / time.Duration(c.n)
	}
	if c.hist.TotalCount() > 0 {
		stats.StdDevNs = c.hist.StdDev()
		stats.StdDev = time.Duration(stats.StdDevNs)
		stats.P50 = time.Duration(c.hist.ValueAtQuantile(50))
		stats.P90 = time.Duration(c.hist.ValueAtQuantile(90))
		stats.P99 = time.Duration(c.hist.ValueAtQuantile(99))
	}

	stats.MinNs = int64(stats.Min)
	stats.MaxNs = int64(stats.Max)
	stats.MeanNs = int64(stats.Mean)
	stats.P50Ns = int64(stats.P50)
	stats.P90Ns = int64(stats.P90)
	stats.P99Ns = int64(stats.P99)
	return stats
}
