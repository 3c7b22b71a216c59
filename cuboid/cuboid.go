// Package cuboid provides the bitmask primitives shared by the cubeplan
// planner. A cuboid is a projection over the cube's dimensions, encoded as a
// bitmask: bit i set means dimension i participates in the aggregation.
package cuboid

import "math/bits"

// ID is a cuboid identifier. Bitwise semantics are unsigned over at most 63
// dimension bits; negative values form the "no cuboid" sentinel domain and
// never collide with a valid cuboid.
type ID int64

// None is the sentinel returned when no cuboid qualifies.
const None ID = -1

// MaxDimensions is the largest dimension count a cube may declare. The top
// bit of ID is reserved so that sentinels stay negative.
const MaxDimensions = 63

// Base returns the base cuboid for a cube with the given dimension count:
// all dimensions retained.
func Base(dimensions int) ID {
	return ID(1)<<dimensions - 1
}

// Cardinality returns the number of dimensions participating in c.
func Cardinality(c ID) int {
	return bits.OnesCount64(uint64(c))
}

// LowestBit returns the mask of the lowest set dimension of c, or 0 if c has
// no bits set.
func LowestBit(c ID) ID {
	return c & -c
}

// Contains reports whether parent can derive child, i.e. every dimension of
// child is present in parent.
func Contains(parent, child ID) bool {
	return child&^parent == 0
}

// Without returns c with all bits of the given masks cleared.
func Without(c ID, masks ...ID) ID {
	for _, m := range masks {
		c &^= m
	}
	return c
}

// Less is the canonical select comparator: cardinality ascending, then mask
// value ascending. Every place that picks "the" cuboid out of a candidate
// set must use it, it is the single source of determinism.
func Less(a, b ID) bool {
	ca, cb := Cardinality(a), Cardinality(b)
	if ca != cb {
		return ca < cb
	}
	return a < b
}

// Min returns the minimum of ids under the canonical comparator, or None for
// an empty slice.
func Min(ids []ID) ID {
	if len(ids) == 0 {
		return None
	}
	best := ids[0]
	for _, id := range ids[1:] {
		if Less(id, best) {
			best = id
		}
	}
	return best
}
