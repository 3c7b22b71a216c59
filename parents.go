package cubeplan

import "github.com/hupe1980/cubeplan/cuboid"

// planner holds the immutable lattice inputs shared by the tree build and
// the best-match resolution.
type planner struct {
	base   cuboid.ID
	groups []*AggregationGroup
}

// groupOnTreeParents enumerates the direct on-tree parent candidates of
// child within a single aggregation group. A parent adds content to the
// child along exactly one axis: a plain dimension, a whole joint, or the
// lowest hierarchy level not yet covered. A child of 0 yields the group's
// lowest cuboids.
func groupOnTreeParents(child cuboid.ID, g *AggregationGroup) []cuboid.ID {
	if child == g.PartialCubeFullMask {
		return nil
	}

	var out []cuboid.ID
	if g.MandatoryColumnMask != 0 && child&g.MandatoryColumnMask != g.MandatoryColumnMask {
		// the mandatory set itself is the group's lowest cuboid
		return appendOnTree(out, g, child|g.MandatoryColumnMask)
	}

	normal := g.normalDimsMask() &^ child
	for normal != 0 {
		bit := normal & -normal
		out = appendOnTree(out, g, child|bit)
		normal &^= bit
	}

	for _, j := range g.Joints {
		if child&j != j {
			out = appendOnTree(out, g, child|j)
		}
	}

	for _, h := range g.Hierarchies {
		for _, m := range h.AllMasks {
			if child&m != m {
				out = appendOnTree(out, g, child|m)
				break
			}
		}
	}

	return out
}

func appendOnTree(out []cuboid.ID, g *AggregationGroup, c cuboid.ID) []cuboid.ID {
	if g.IsOnTree(c) {
		return append(out, c)
	}
	return out
}

// onTreeParentsAcross unions the parent candidates of child over the given
// groups. A child matching a group's full mask adds the base cuboid and
// stops, so later groups are not consulted; the base itself has no parents.
func (p *planner) onTreeParentsAcross(child cuboid.ID, groups []*AggregationGroup) *cuboid.Set {
	candidates := cuboid.NewSet()
	if child == p.base {
		return candidates
	}
	for _, g := range groups {
		if child == g.PartialCubeFullMask {
			candidates.Add(p.base)
			return candidates
		}
		for _, c := range groupOnTreeParents(child, g) {
			candidates.Add(c)
		}
	}
	return candidates
}

// onTreeParents enumerates the parent candidates of child across every
// group that has child on its tree.
func (p *planner) onTreeParents(child cuboid.ID) *cuboid.Set {
	var groups []*AggregationGroup
	for _, g := range p.groups {
		if g.IsOnTree(child) {
			groups = append(groups, g)
		}
	}
	return p.onTreeParentsAcross(child, groups)
}

// lowestCuboids seeds the layer expansion with the minimal on-tree cuboids
// of every group.
func (p *planner) lowestCuboids() *cuboid.Set {
	return p.onTreeParentsAcross(0, p.groups)
}

// onTreeParent returns the unique direct parent of child under the
// canonical select comparator, or cuboid.None when child has no parent.
func (p *planner) onTreeParent(child cuboid.ID) cuboid.ID {
	best := cuboid.None
	p.onTreeParents(child).ForEach(func(c cuboid.ID) bool {
		if best == cuboid.None || cuboid.Less(c, best) {
			best = c
		}
		return true
	})
	return best
}

// parentOnPromise resolves the parent the padding step records for child.
// An ancestor up to forward hops above the direct parent is accepted when
// the intermediate parents are not in holder, the last ancestor reached is
// returned regardless so padding can grow the holder to closure.
func (p *planner) parentOnPromise(child cuboid.ID, holder *cuboid.Set, forward int) cuboid.ID {
	for {
		parent := p.onTreeParent(child)
		if parent < 0 {
			return cuboid.None
		}
		if holder.Contains(parent) || forward == 0 {
			return parent
		}
		child = parent
		forward--
	}
}
