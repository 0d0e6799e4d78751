package ranges

import (
	"fmt"
	"math"
	"testing"
)

const benchWindow = 1 << 12

var sink uint64

//go:noinline
func lowAndHigh(high uint64) (uint64, uint64) {
	return high - benchWindow + 1, high
}

func BenchmarkRanges(b *testing.B) {
	for _, high := range []uint64{10454235000005000, math.MaxUint64 - 1, math.MaxUint64} {
		b.Run(fmt.Sprintf("non-inclusive/%d", high), func(b *testing.B) {
			for b.Loop() {
				low, up := lowAndHigh(high)
				sink = SumExclusive(NewExclusive(low, up))
			}
		})
		b.Run(fmt.Sprintf("inclusive/%d", high), func(b *testing.B) {
			for b.Loop() {
				low, up := lowAndHigh(high)
				sink = SumInclusive(NewInclusive(low, up))
			}
		})
		b.Run(fmt.Sprintf("dynamic/%d", high), func(b *testing.B) {
			for b.Loop() {
				low, up := lowAndHigh(high)
				sink = SumDynamic(NewDynamic(low, up))
			}
		})
		b.Run(fmt.Sprintf("dynamic-seq/%d", high), func(b *testing.B) {
			for b.Loop() {
				low, up := lowAndHigh(high)
				sink = Sum(DynamicSeq(low, up))
			}
		})
	}
}
