package cubeplan

import (
	"time"

	"github.com/hupe1980/cubeplan/cuboid"
)

// BestMatch returns the materialized cuboid that serves the requested
// projection q best: every group translates q to its smallest valid
// cuboid, the tightest translation wins, and the result is rounded up to
// the nearest materialized ancestor.
func (s *Scheduler) BestMatch(q cuboid.ID) (cuboid.ID, error) {
	start := time.Now()

	if err := s.checkRange(q); err != nil {
		return cuboid.None, err
	}

	var candidates []cuboid.ID
	for _, g := range s.planner.groups {
		c, ok, err := translateToOnTree(g, q)
		if err != nil {
			return cuboid.None, err
		}
		if ok {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		// no group can serve the projection, fall back to the base
		s.opts.Metrics.OnBestMatch(time.Since(start), true)
		return s.planner.base, nil
	}

	candidate := cuboid.Min(candidates)
	if s.all.Contains(candidate) {
		s.opts.Metrics.OnBestMatch(time.Since(start), true)
		return candidate, nil
	}

	for parent := s.planner.onTreeParent(candidate); parent > 0; parent = s.planner.onTreeParent(parent) {
		if s.all.Contains(parent) {
			s.opts.Metrics.OnBestMatch(time.Since(start), false)
			return parent, nil
		}
	}
	return cuboid.None, &ErrNoValidParent{Cuboid: candidate}
}

// translateToOnTree promotes q to the smallest cuboid that respects the
// group's structure: mandatory dimensions are added, partially requested
// hierarchies are filled down from the highest requested level, and
// partially requested joints are completed. A projection left with no
// dimension of its own gets the cheapest one the group offers.
func translateToOnTree(g *AggregationGroup, q cuboid.ID) (cuboid.ID, bool, error) {
	if q&^g.PartialCubeFullMask != 0 {
		// the group does not cover all requested dimensions
		return cuboid.None, false, nil
	}

	r := q | g.MandatoryColumnMask

	for _, h := range g.Hierarchies {
		intersect := r & h.FullMask
		if intersect == 0 || intersect == h.FullMask {
			continue
		}
		fill := false
		for i := len(h.Dims) - 1; i >= 0; i-- {
			if fill {
				r |= h.Dims[i]
			} else if r&h.Dims[i] != 0 {
				fill = true
				r |= h.Dims[i]
			}
		}
	}

	for _, j := range g.Joints {
		if r|j != r && r&^j != r {
			r |= j
		}
	}

	if g.IsOnTree(r) {
		return r, true, nil
	}

	// r carries no dimension beyond the mandatory set, add one
	nonJoint := cuboid.Without(g.PartialCubeFullMask^g.MandatoryColumnMask, g.Joints...)
	if nonJoint != 0 {
		nonJointNonHierarchy := nonJoint
		for _, h := range g.Hierarchies {
			nonJointNonHierarchy &^= h.FullMask
		}
		if nonJointNonHierarchy != 0 {
			return r | cuboid.LowestBit(nonJointNonHierarchy), true, nil
		}
		for _, h := range g.Hierarchies {
			if h.AllMasks[0]&g.JointDimsMask == 0 {
				return r | h.AllMasks[0], true, nil
			}
		}
	}

	if len(g.Joints) == 0 {
		return cuboid.None, false, &ErrNotOnTree{Cuboid: r}
	}
	r |= cuboid.Min(g.Joints)
	if !g.IsOnTree(r) {
		return cuboid.None, false, &ErrNotOnTree{Cuboid: r}
	}
	return r, true, nil
}

// bestMatchTopDown resolves q by walking the spanning tree from the base,
// returning the minimum materialized descendant that can derive q. It is
// the reference counterpart of BestMatch used to cross-check the
// translation pipeline.
func (s *Scheduler) bestMatchTopDown(q cuboid.ID) (cuboid.ID, error) {
	if err := s.checkRange(q); err != nil {
		return cuboid.None, err
	}
	best := s.minDerivingDescendant(q, s.planner.base)
	if best < 0 {
		return cuboid.None, &ErrNoValidParent{Cuboid: q}
	}
	return best, nil
}

func (s *Scheduler) minDerivingDescendant(q, parent cuboid.ID) cuboid.ID {
	if !cuboid.Contains(parent, q) {
		return cuboid.None
	}
	var candidates []cuboid.ID
	for _, child := range s.parent2child[parent] {
		if c := s.minDerivingDescendant(q, child); c > 0 {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		candidates = append(candidates, parent)
	}
	return cuboid.Min(candidates)
}
