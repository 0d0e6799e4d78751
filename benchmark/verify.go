package benchmark

import (
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog/log"

	"github.com/mexus/range-perf/ranges"
)

// ErrSumMismatch is returned when producers over the same bound disagree.
var ErrSumMismatch = errors.New("range sums disagree")

// Check holds the sums each producer computed over one bound.
type Check struct {
	Group      string `json:"group"`
	Bound      Bound  `json:"bound"`
	Inclusive  uint64 `json:"inclusive"`
	Dynamic    uint64 `json:"dynamic"`
	DynamicSeq uint64 `json:"dynamic_seq"`
	// Exclusive sums [Low, High+1) and is only set when High+1 fits.
	Exclusive *uint64 `json:"exclusive,omitempty"`
}

// OK reports whether every producer arrived at the same sum.
func (c Check) OK() bool {
	if c.Dynamic != c.Inclusive || c.DynamicSeq != c.Inclusive {
		return false
	}
	return c.Exclusive == nil || *c.Exclusive == c.Inclusive
}

// Verify sums every configured bound with each producer and compares the
// results. Unlike RunBenchmark it does not time anything.
func Verify(cfg Config) ([]Check, error) {
	setupLog(cfg)

	groups, err := NewSuite(cfg)
	if err != nil {
		return nil, err
	}

	checks := make([]Check, 0, len(groups))
	var failed int
	for _, g := range groups {
		c := checkBound(g)
		checks = append(checks, c)

		event := log.Info()
		if !c.OK() {
			failed++
			event = log.Error()
		}
		event.
			Str("group", g.Name).
			Stringer("bound", g.Bound).
			Uint64("inclusive", c.Inclusive).
			Uint64("dynamic", c.Dynamic).
			Uint64("dynamic_seq", c.DynamicSeq).
			Bool("ok", c.OK()).
			Msg("Verified bound")
	}

	if failed > 0 {
		return checks, fmt.Errorf("%w: %d of %d bounds", ErrSumMismatch, failed, len(checks))
	}
	return checks, nil
}

func checkBound(g Group) Check {
	low, high := g.Bound.Low, g.Bound.High
	c := Check{
		Group:      g.Name,
		Bound:      g.Bound,
		Inclusive:  ranges.SumInclusive(ranges.NewInclusive(low, high)),
		Dynamic:    ranges.SumDynamic(ranges.NewDynamic(low, high)),
		DynamicSeq: ranges.Sum(ranges.DynamicSeq(low, high)),
	}
	if high < math.MaxUint64 {
		excl := ranges.SumExclusive(ranges.NewExclusive(low, high+1))
		c.Exclusive = &excl
	}
	return c
}
