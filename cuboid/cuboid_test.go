package cuboid

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBase(t *testing.T) {
	assert.Equal(t, ID(1), Base(1))
	assert.Equal(t, ID(0b1111), Base(4))
	assert.Equal(t, ID(math.MaxInt64), Base(63))
}

func TestCardinality(t *testing.T) {
	assert.Equal(t, 0, Cardinality(0))
	assert.Equal(t, 1, Cardinality(0b1000))
	assert.Equal(t, 3, Cardinality(0b1101))
	assert.Equal(t, 63, Cardinality(Base(63)))
}

func TestLowestBit(t *testing.T) {
	assert.Equal(t, ID(0), LowestBit(0))
	assert.Equal(t, ID(0b0100), LowestBit(0b1100))
	assert.Equal(t, ID(1), LowestBit(0b0101))
}

func TestContains(t *testing.T) {
	assert.True(t, Contains(0b1111, 0b0101))
	assert.True(t, Contains(0b0101, 0b0101))
	assert.True(t, Contains(0b1010, 0))
	assert.False(t, Contains(0b0101, 0b0010))
	assert.False(t, Contains(0b0101, 0b1111))
}

func TestWithout(t *testing.T) {
	assert.Equal(t, ID(0b1001), Without(0b1111, 0b0110))
	assert.Equal(t, ID(0b0001), Without(0b1111, 0b0100, 0b1010))
	assert.Equal(t, ID(0b1111), Without(0b1111))
}

func TestLess(t *testing.T) {
	// cardinality wins over mask value
	assert.True(t, Less(0b1000, 0b0011))
	assert.False(t, Less(0b0011, 0b1000))
	// equal cardinality falls back to mask value
	assert.True(t, Less(0b0011, 0b0101))
	assert.False(t, Less(0b0101, 0b0011))
	assert.False(t, Less(0b0101, 0b0101))
}

func TestMin(t *testing.T) {
	assert.Equal(t, None, Min(nil))
	assert.Equal(t, ID(0b1000), Min([]ID{0b0111, 0b1000, 0b0011}))
	assert.Equal(t, ID(0b0011), Min([]ID{0b0101, 0b0011, 0b0110}))
}

func TestSet(t *testing.T) {
	s := NewSet(5, 3, 9, 3)

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(3))
	assert.False(t, s.Contains(4))
	assert.False(t, s.Contains(None))

	// iteration and Slice are sorted ascending
	assert.Equal(t, []ID{3, 5, 9}, s.Slice())

	var seen []ID
	s.ForEach(func(c ID) bool {
		seen = append(seen, c)
		return len(seen) < 2
	})
	assert.Equal(t, []ID{3, 5}, seen)
}

func TestSetUnionClone(t *testing.T) {
	a := NewSet(1, 2)
	b := NewSet(2, 7)

	clone := a.Clone()
	a.Union(b)

	require.Equal(t, []ID{1, 2, 7}, a.Slice())
	require.Equal(t, []ID{1, 2}, clone.Slice())
}
