package arena

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroHandleIsNilAndNeverAllocated(t *testing.T) {
	a := New[int]()
	var zero Handle[int]
	assert.True(t, zero.IsNil())

	h := a.Alloc(42)
	assert.False(t, h.IsNil())
	assert.NotEqual(t, zero, h)
}

func TestAllocAndGetRoundTrip(t *testing.T) {
	a := New[string]()
	h := a.Alloc("hello")
	require.Equal(t, "hello", *a.Get(h))
}

func TestReleaseZeroesWithoutShrinking(t *testing.T) {
	a := New[int]()
	h := a.Alloc(7)
	before := a.Len()
	a.Release(h)
	assert.Equal(t, before, a.Len())
	assert.Zero(t, *a.Get(h))
}

func TestLenCountsAllocationsNotTheReservedSlot(t *testing.T) {
	a := New[int]()
	assert.Equal(t, 0, a.Len())
	a.Alloc(1)
	a.Alloc(2)
	assert.Equal(t, 2, a.Len())
}
