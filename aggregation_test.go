package cubeplan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/cubeplan/cuboid"
)

func mustGroup(t *testing.T, spec GroupSpec) *AggregationGroup {
	t.Helper()
	g, err := NewAggregationGroup(spec)
	require.NoError(t, err)
	return g
}

func seqDims(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestNewAggregationGroup(t *testing.T) {
	g := mustGroup(t, GroupSpec{
		Includes:    seqDims(6),
		Mandatory:   []int{0},
		Joints:      [][]int{{1, 2}},
		Hierarchies: [][]int{{3, 4}},
		DimCap:      3,
	})

	assert.Equal(t, cuboid.ID(0b111111), g.PartialCubeFullMask)
	assert.Equal(t, cuboid.ID(0b000001), g.MandatoryColumnMask)
	assert.Equal(t, []cuboid.ID{0b000110}, g.Joints)
	assert.Equal(t, cuboid.ID(0b000110), g.JointDimsMask)

	require.Len(t, g.Hierarchies, 1)
	h := g.Hierarchies[0]
	assert.Equal(t, []cuboid.ID{0b001000, 0b010000}, h.Dims)
	assert.Equal(t, []cuboid.ID{0b001000, 0b011000}, h.AllMasks)
	assert.Equal(t, cuboid.ID(0b011000), h.FullMask)

	assert.Equal(t, cuboid.ID(0b100000), g.normalDimsMask())
}

func TestNewAggregationGroupRejectsInvalidSpecs(t *testing.T) {
	tests := []struct {
		name string
		spec GroupSpec
	}{
		{"empty includes", GroupSpec{}},
		{"dimension out of range", GroupSpec{Includes: []int{63}}},
		{"negative dimension", GroupSpec{Includes: []int{-1}}},
		{"single dimension joint", GroupSpec{Includes: seqDims(3), Joints: [][]int{{1}}}},
		{"single level hierarchy", GroupSpec{Includes: seqDims(3), Hierarchies: [][]int{{1}}}},
		{"joint overlaps mandatory", GroupSpec{Includes: seqDims(3), Mandatory: []int{1}, Joints: [][]int{{1, 2}}}},
		{"joints overlap", GroupSpec{Includes: seqDims(4), Joints: [][]int{{0, 1}, {1, 2}}}},
		{"hierarchy overlaps joint", GroupSpec{Includes: seqDims(4), Joints: [][]int{{0, 1}}, Hierarchies: [][]int{{1, 2}}}},
		{"constraint outside includes", GroupSpec{Includes: []int{0, 1}, Mandatory: []int{3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAggregationGroup(tt.spec)
			assert.ErrorIs(t, err, ErrInvalidGroup)
		})
	}
}

func TestIsOnTree(t *testing.T) {
	g := mustGroup(t, GroupSpec{
		Includes:    seqDims(6),
		Mandatory:   []int{0},
		Joints:      [][]int{{1, 2}},
		Hierarchies: [][]int{{3, 4}},
	})

	tests := []struct {
		name string
		c    cuboid.ID
		want bool
	}{
		{"zero", 0, false},
		{"negative", -1, false},
		{"outside group", 0b1000001, false},
		{"missing mandatory", 0b000110, false},
		{"mandatory only", 0b000001, true},
		{"partial joint", 0b000011, false},
		{"full joint", 0b000111, true},
		{"hierarchy level one", 0b001001, true},
		{"hierarchy level two", 0b011001, true},
		{"hierarchy upper without lower", 0b010001, false},
		{"everything", 0b111111, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, g.IsOnTree(tt.c))
		})
	}
}

func TestCheckDimCap(t *testing.T) {
	g := mustGroup(t, GroupSpec{
		Includes:    seqDims(6),
		Mandatory:   []int{0},
		Joints:      [][]int{{1, 2}},
		Hierarchies: [][]int{{3, 4}},
		DimCap:      2,
	})

	// mandatory dimensions are free
	assert.True(t, g.CheckDimCap(0b000001))
	// one joint plus one hierarchy: two effective dimensions
	assert.True(t, g.CheckDimCap(0b011111))
	// joint, hierarchy and a plain dimension: three
	assert.False(t, g.CheckDimCap(0b111111))
	// two hierarchy levels still count once
	assert.True(t, g.CheckDimCap(0b011001))

	uncapped := mustGroup(t, GroupSpec{Includes: seqDims(6)})
	assert.True(t, uncapped.CheckDimCap(0b111111))
}
