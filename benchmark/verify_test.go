package benchmark

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyDefaultBounds(t *testing.T) {
	checks, err := Verify(Config{Window: 1 << 12})
	require.NoError(t, err)
	require.Len(t, checks, 3)

	for _, c := range checks {
		assert.True(t, c.OK(), "%s %s", c.Group, c.Bound)
	}
	// high+1 overflows for max, so the exclusive form is skipped there
	assert.NotNil(t, checks[0].Exclusive)
	assert.NotNil(t, checks[1].Exclusive)
	assert.Nil(t, checks[2].Exclusive)
}

func TestVerifyOneToTen(t *testing.T) {
	checks, err := Verify(Config{UpperBounds: []uint64{10}})
	require.NoError(t, err)
	require.Len(t, checks, 1)

	c := checks[0]
	assert.Equal(t, Bound{Low: 1, High: 10}, c.Bound)
	assert.Equal(t, uint64(55), c.Inclusive)
	assert.Equal(t, uint64(55), c.Dynamic)
	assert.Equal(t, uint64(55), c.DynamicSeq)
	require.NotNil(t, c.Exclusive)
	assert.Equal(t, uint64(55), *c.Exclusive)
}

func TestCheckOK(t *testing.T) {
	excl := uint64(7)
	c := Check{Inclusive: 6, Dynamic: 6, DynamicSeq: 6, Exclusive: &excl}
	assert.False(t, c.OK())

	c.Exclusive = nil
	assert.True(t, c.OK())

	c.Dynamic = math.MaxUint64
	assert.False(t, c.OK())
}
