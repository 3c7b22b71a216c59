package cubeplan

import (
	"errors"
	"fmt"

	"github.com/hupe1980/cubeplan/cuboid"
)

// ErrInvalidGroup is wrapped by all aggregation group compilation errors.
var ErrInvalidGroup = errors.New("invalid aggregation group")

// GroupSpec is the declarative form of an aggregation group, expressed in
// dimension indexes. NewAggregationGroup compiles it into masks.
type GroupSpec struct {
	// Includes lists the dimensions this group touches.
	Includes []int

	// Mandatory lists dimensions every cuboid of this group must include.
	Mandatory []int

	// Joints groups dimensions that must appear together, all or none.
	Joints [][]int

	// Hierarchies are ordered ladders, presence of a level forces presence
	// of all lower levels.
	Hierarchies [][]int

	// DimCap limits the number of effective dimensions per cuboid: each
	// joint counts once, each hierarchy counts once, plain dimensions count
	// one each. Zero or negative means uncapped.
	DimCap int
}

// HierarchyMask holds the precomputed masks of one hierarchy ladder.
type HierarchyMask struct {
	// Dims holds one single-dimension mask per ladder level, lowest first.
	Dims []cuboid.ID

	// AllMasks[i] is the union of Dims[0..i].
	AllMasks []cuboid.ID

	// FullMask is the union of all levels.
	FullMask cuboid.ID
}

// AggregationGroup is a compiled constraint bundle deciding which cuboids
// are valid ("on tree") for one slice of the cube. Build groups through
// NewAggregationGroup, it populates the derived masks.
type AggregationGroup struct {
	PartialCubeFullMask cuboid.ID
	MandatoryColumnMask cuboid.ID
	Joints              []cuboid.ID
	Hierarchies         []HierarchyMask
	JointDimsMask       cuboid.ID
	DimCap              int
}

// NewAggregationGroup compiles spec into an AggregationGroup. A dimension
// may appear in at most one of mandatory, a joint, or a hierarchy, and every
// referenced dimension must be listed in Includes.
func NewAggregationGroup(spec GroupSpec) (*AggregationGroup, error) {
	full, err := maskOf(spec.Includes)
	if err != nil {
		return nil, err
	}
	if full == 0 {
		return nil, fmt.Errorf("%w: includes must not be empty", ErrInvalidGroup)
	}

	mandatory, err := maskOf(spec.Mandatory)
	if err != nil {
		return nil, err
	}

	g := &AggregationGroup{
		PartialCubeFullMask: full,
		MandatoryColumnMask: mandatory,
		DimCap:              spec.DimCap,
	}

	claimed := mandatory
	claim := func(mask cuboid.ID, kind string) error {
		if mask&claimed != 0 {
			return fmt.Errorf("%w: %s dimensions overlap another constraint", ErrInvalidGroup, kind)
		}
		claimed |= mask
		return nil
	}

	for _, joint := range spec.Joints {
		mask, err := maskOf(joint)
		if err != nil {
			return nil, err
		}
		if cuboid.Cardinality(mask) < 2 {
			return nil, fmt.Errorf("%w: a joint needs at least two dimensions", ErrInvalidGroup)
		}
		if err := claim(mask, "joint"); err != nil {
			return nil, err
		}
		g.Joints = append(g.Joints, mask)
		g.JointDimsMask |= mask
	}

	for _, ladder := range spec.Hierarchies {
		if len(ladder) < 2 {
			return nil, fmt.Errorf("%w: a hierarchy needs at least two levels", ErrInvalidGroup)
		}
		h := HierarchyMask{}
		var all cuboid.ID
		for _, dim := range ladder {
			mask, err := maskOf([]int{dim})
			if err != nil {
				return nil, err
			}
			if err := claim(mask, "hierarchy"); err != nil {
				return nil, err
			}
			all |= mask
			h.Dims = append(h.Dims, mask)
			h.AllMasks = append(h.AllMasks, all)
		}
		h.FullMask = all
		g.Hierarchies = append(g.Hierarchies, h)
	}

	if claimed&^full != 0 {
		return nil, fmt.Errorf("%w: constraint dimensions outside includes", ErrInvalidGroup)
	}

	return g, nil
}

func maskOf(dims []int) (cuboid.ID, error) {
	var mask cuboid.ID
	for _, d := range dims {
		if d < 0 || d >= cuboid.MaxDimensions {
			return 0, fmt.Errorf("%w: dimension index %d out of range", ErrInvalidGroup, d)
		}
		mask |= cuboid.ID(1) << d
	}
	return mask, nil
}

// IsOnTree reports whether c is a valid cuboid of this group: within the
// group's dimensions, containing all mandatory dimensions, and respecting
// every joint and hierarchy.
func (g *AggregationGroup) IsOnTree(c cuboid.ID) bool {
	if c <= 0 {
		return false
	}
	if c&^g.PartialCubeFullMask != 0 {
		return false
	}
	if c&g.MandatoryColumnMask != g.MandatoryColumnMask {
		return false
	}
	return g.checkHierarchies(c) && g.checkJoints(c)
}

func (g *AggregationGroup) checkHierarchies(c cuboid.ID) bool {
	for _, h := range g.Hierarchies {
		intersect := c & h.FullMask
		if intersect == 0 {
			continue
		}
		ok := false
		for _, m := range h.AllMasks {
			if intersect == m {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}

func (g *AggregationGroup) checkJoints(c cuboid.ID) bool {
	for _, j := range g.Joints {
		intersect := c & j
		if intersect != 0 && intersect != j {
			return false
		}
	}
	return true
}

// CheckDimCap reports whether c stays within the group's dimension cap.
// Mandatory dimensions are free, each joint and each hierarchy counts as a
// single effective dimension.
func (g *AggregationGroup) CheckDimCap(c cuboid.ID) bool {
	if g.DimCap <= 0 {
		return true
	}
	count := cuboid.Cardinality(c & g.normalDimsMask())
	for _, j := range g.Joints {
		if c&j != 0 {
			count++
		}
	}
	for _, h := range g.Hierarchies {
		if c&h.FullMask != 0 {
			count++
		}
	}
	return count <= g.DimCap
}

// normalDimsMask returns the group's plain dimensions: inside the group but
// neither mandatory nor part of a joint or hierarchy.
func (g *AggregationGroup) normalDimsMask() cuboid.ID {
	m := g.PartialCubeFullMask &^ g.MandatoryColumnMask &^ g.JointDimsMask
	for _, h := range g.Hierarchies {
		m &^= h.FullMask
	}
	return m
}
