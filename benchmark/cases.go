package benchmark

import (
	"errors"
	"fmt"

	"github.com/mexus/range-perf/ranges"
)

// Bound is the (low, high) pair a case iterates over.
type Bound struct {
	Low  uint64
	High uint64
}

// NewBound anchors a range of window elements at high. A zero window, or
// one wider than [1, high], starts the range at 1.
func NewBound(high, window uint64) Bound {
	if window == 0 || high <= window {
		return Bound{Low: 1, High: high}
	}
	return Bound{Low: high - window + 1, High: high}
}

func (b Bound) String() string {
	return fmt.Sprintf("[%d, %s]", b.Low, FormatBound(b.High))
}

// sink receives every computed sum so the compiler cannot drop the work.
var sink uint64

// lowAndHigh hands the bounds to a timed operation through a call the
// compiler cannot inline, which keeps them from being treated as constants.
//
//go:noinline
func lowAndHigh(b Bound) (uint64, uint64) {
	return b.Low, b.High
}

// Case builds a timed operation for a given bound.
type Case struct {
	Name string
	New  func(Bound) func()
}

const (
	CaseNonInclusive = "non-inclusive"
	CaseInclusive    = "inclusive"
	CaseDynamic      = "dynamic"
	CaseDynamicSeq   = "dynamic-seq"
)

var ErrUnknownCase = errors.New("unknown benchmark case")

// DefaultCases are the cases run when none are selected.
var DefaultCases = []string{CaseNonInclusive, CaseInclusive, CaseDynamic}

var registry = map[string]Case{
	CaseNonInclusive: {Name: CaseNonInclusive, New: NonInclusiveCase},
	CaseInclusive:    {Name: CaseInclusive, New: InclusiveCase},
	CaseDynamic:      {Name: CaseDynamic, New: DynamicCase},
	CaseDynamicSeq:   {Name: CaseDynamicSeq, New: DynamicSeqCase},
}

// LookupCases resolves case names in order, falling back to DefaultCases.
func LookupCases(names []string) ([]Case, error) {
	if len(names) == 0 {
		names = DefaultCases
	}
	cases := make([]Case, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		c, ok := registry[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCase, name)
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		cases = append(cases, c)
	}
	return cases, nil
}

// NonInclusiveCase sums [low, high).
func NonInclusiveCase(b Bound) func() {
	return func() {
		low, high := lowAndHigh(b)
		sink = ranges.SumExclusive(ranges.NewExclusive(low, high))
	}
}

// InclusiveCase sums [low, high].
func InclusiveCase(b Bound) func() {
	return func() {
		low, high := lowAndHigh(b)
		sink = ranges.SumInclusive(ranges.NewInclusive(low, high))
	}
}

// DynamicCase sums [low, high] through a ranges.Dynamic.
func DynamicCase(b Bound) func() {
	return func() {
		low, high := lowAndHigh(b)
		sink = ranges.SumDynamic(ranges.NewDynamic(low, high))
	}
}

// DynamicSeqCase sums [low, high] through the closure-based dynamic range.
func DynamicSeqCase(b Bound) func() {
	return func() {
		low, high := lowAndHigh(b)
		sink = ranges.Sum(ranges.DynamicSeq(low, high))
	}
}
