package cubeplan

import (
	"math"

	"github.com/hupe1980/cubeplan/cuboid"
)

const (
	// DefaultParentForward is the padding lookahead used when the
	// descriptor does not set one.
	DefaultParentForward = 3

	// DefaultMaxGroupCombination is the per-group combination budget used
	// when the descriptor does not set one. The build aborts when, before
	// another layer is added, the holder exceeds ten times this value.
	DefaultMaxGroupCombination = 32768
)

// Descriptor is the immutable cube description consumed by the scheduler.
// It is the output of cube descriptor parsing, which happens elsewhere.
type Descriptor struct {
	// Dimensions is the number of dimensions of the cube, at most
	// cuboid.MaxDimensions.
	Dimensions int

	// BaseCuboidID is the root of the spanning tree. Zero selects the
	// default, all dimensions set.
	BaseCuboidID cuboid.ID

	// Groups are the aggregation groups deciding which cuboids are valid.
	Groups []*AggregationGroup

	// Blacklist names cuboids that must not be materialized. The base
	// cuboid cannot be blacklisted.
	Blacklist []cuboid.ID

	// ParentForward is the number of ancestor hops the padding step may
	// skip when a direct parent is missing. Zero or negative selects
	// DefaultParentForward.
	ParentForward int

	// MaxGroupCombination caps the cuboid count during layer expansion,
	// the effective limit is ten times this value. Zero selects
	// DefaultMaxGroupCombination, a negative value means unbounded.
	MaxGroupCombination int64
}

// Validate checks the descriptor for structural consistency.
func (d *Descriptor) Validate() error {
	if d.Dimensions < 1 {
		return ErrNoDimensions
	}
	if d.Dimensions > cuboid.MaxDimensions {
		return ErrTooManyDimensions
	}
	if len(d.Groups) == 0 {
		return ErrNoAggregationGroups
	}

	max := cuboid.Base(d.Dimensions)
	base := d.base()
	if base <= 0 || base > max {
		return &ErrOutOfRange{Cuboid: base, Max: max}
	}
	for _, g := range d.Groups {
		if g.PartialCubeFullMask == 0 || g.PartialCubeFullMask&^base != 0 {
			return &ErrOutOfRange{Cuboid: g.PartialCubeFullMask, Max: base}
		}
	}
	for _, c := range d.Blacklist {
		if c < 0 || c > max {
			return &ErrOutOfRange{Cuboid: c, Max: max}
		}
		if c == base {
			return ErrBlacklistedBase
		}
	}
	return nil
}

func (d *Descriptor) base() cuboid.ID {
	if d.BaseCuboidID != 0 {
		return d.BaseCuboidID
	}
	return cuboid.Base(d.Dimensions)
}

func (d *Descriptor) forward() int {
	if d.ParentForward > 0 {
		return d.ParentForward
	}
	return DefaultParentForward
}

// combinationLimit returns the effective holder size limit: ten times the
// configured combination budget. A negative product (a negative budget, or
// a multiplication that wraps to a negative value) maps to unbounded; a
// multiplication that wraps to a positive value is returned as is.
func (d *Descriptor) combinationLimit() int64 {
	budget := d.MaxGroupCombination
	if budget == 0 {
		budget = DefaultMaxGroupCombination
	}
	limit := budget * 10
	if limit < 0 {
		return math.MaxInt64
	}
	return limit
}
