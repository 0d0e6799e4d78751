package ranges

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const max64 = uint64(math.MaxUint64)

func collect(it Iterator) []uint64 {
	return slices.Collect(Values(it))
}

func TestSumOneToTen(t *testing.T) {
	excl := NewExclusive(1, 11)
	incl := NewInclusive(1, 10)
	dyn := NewDynamic(1, 10)

	assert.Equal(t, uint64(55), SumExclusive(excl))
	assert.Equal(t, uint64(55), SumInclusive(incl))
	assert.Equal(t, uint64(55), SumDynamic(dyn))
	assert.Equal(t, uint64(55), Sum(ExclusiveSeq(1, 11)))
	assert.Equal(t, uint64(55), Sum(InclusiveSeq(1, 10)))
	assert.Equal(t, uint64(55), Sum(DynamicSeq(1, 10)))
}

func TestEmptyRanges(t *testing.T) {
	excl := NewExclusive(5, 5)
	assert.Empty(t, collect(&excl))

	excl = NewExclusive(7, 3)
	assert.Equal(t, uint64(0), SumExclusive(excl))

	incl := NewInclusive(7, 3)
	assert.Empty(t, collect(&incl))
	assert.Equal(t, uint64(0), Sum(InclusiveSeq(7, 3)))
	assert.Equal(t, uint64(0), Sum(ExclusiveSeq(3, 3)))

	dyn := NewDynamic(7, 3)
	assert.Equal(t, uint64(0), SumDynamic(dyn))
	assert.Equal(t, uint64(0), Sum(func(func(uint64) bool) {}))
}

func TestSingleElementInclusive(t *testing.T) {
	incl := NewInclusive(42, 42)
	assert.Equal(t, []uint64{42}, collect(&incl))
}

func TestInclusiveStopsAtMax(t *testing.T) {
	incl := NewInclusive(max64-2, max64)
	assert.Equal(t, []uint64{max64 - 2, max64 - 1, max64}, collect(&incl))

	// exhausted iterators stay exhausted
	_, ok := incl.Next()
	assert.False(t, ok)

	assert.Equal(t, []uint64{max64 - 2, max64 - 1, max64}, slices.Collect(InclusiveSeq(max64-2, max64)))
}

func TestDynamicRepresentation(t *testing.T) {
	tests := []struct {
		name string
		high uint64
		want Kind
	}{
		{"small", 10, KindExclusive},
		{"mid", 10454235000005000, KindExclusive},
		{"max-1", max64 - 1, KindExclusive},
		{"max", max64, KindInclusive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDynamic(1, tt.high)
			assert.Equal(t, tt.want, d.Kind())
		})
	}
}

func TestDynamicMatchesInclusiveAtBoundaries(t *testing.T) {
	const window = 1000
	highs := []uint64{10454235000005000, max64 - 1, max64}

	for _, high := range highs {
		low := high - window + 1

		incl := NewInclusive(low, high)
		dyn := NewDynamic(low, high)
		want := collect(&incl)
		got := collect(&dyn)

		require.Len(t, got, window)
		assert.Equal(t, want, got)
		assert.Equal(t, high, got[len(got)-1])
		assert.Equal(t, Sum(InclusiveSeq(low, high)), Sum(DynamicSeq(low, high)))
	}
}

func TestExclusiveMatchesInclusive(t *testing.T) {
	pairs := [][2]uint64{
		{1, 1},
		{1, 10},
		{0, 1000},
		{1 << 40, 1<<40 + 4096},
		{max64 - 100, max64 - 1},
	}

	for _, p := range pairs {
		low, high := p[0], p[1]
		assert.Equal(t, SumInclusive(NewInclusive(low, high)), SumExclusive(NewExclusive(low, high+1)),
			"low=%d high=%d", low, high)
	}
}

func TestSumWrapsAround(t *testing.T) {
	want := max64 - 1
	want += max64

	incl := NewInclusive(max64-1, max64)
	assert.Equal(t, want, SumInclusive(incl))
	assert.Equal(t, want, SumDynamic(NewDynamic(max64-1, max64)))
	assert.Equal(t, want, Sum(slices.Values([]uint64{max64 - 1, max64})))
	assert.Equal(t, max64-2, want)
}

func TestValuesStopsEarly(t *testing.T) {
	incl := NewInclusive(1, 100)
	var got []uint64
	for v := range Values(&incl) {
		if v > 3 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []uint64{1, 2, 3}, got)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "inclusive", KindInclusive.String())
	assert.Equal(t, "exclusive", KindExclusive.String())
	assert.Equal(t, "unknown", Kind(9).String())
}
