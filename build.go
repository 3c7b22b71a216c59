package cubeplan

import "github.com/hupe1980/cubeplan/cuboid"

// buildResult is the outcome of one bottom-up tree build.
type buildResult struct {
	holder       *cuboid.Set
	parent2child map[cuboid.ID][]cuboid.ID
	padded       int
}

// buildTreeBottomUp materializes the cuboid set and its spanning tree:
//  1. expand layers bottom-up under dim capping
//  2. kick blacklisted cuboids out of the holder
//  3. pad the holder so every cuboid has a parent, skipping up to forward
//     missing ancestors before adding one back
func buildTreeBottomUp(desc *Descriptor, p *planner, logger *Logger) (*buildResult, error) {
	forward := desc.forward()
	limit := desc.combinationLimit()

	holder := cuboid.NewSet()
	children := p.lowestCuboids()
	layer := 0
	for children.Len() > 0 {
		if int64(holder.Len()) > limit {
			return nil, &ErrTooManyCuboids{Size: holder.Len(), Limit: limit}
		}
		holder.Union(children)
		children = p.parentsByLayer(children)
		layer++
		logger.Debug("expanded cuboid layer", "layer", layer, "holder", holder.Len())
	}
	holder.Add(p.base)

	if len(desc.Blacklist) > 0 {
		blacklist := cuboid.NewSet(desc.Blacklist...)
		kept := cuboid.NewSet()
		holder.ForEach(func(c cuboid.ID) bool {
			if !blacklist.Contains(c) {
				kept.Add(c)
			}
			return true
		})
		logger.Debug("dropped blacklisted cuboids", "dropped", holder.Len()-kept.Len())
		holder = kept
	}

	parent2child := make(map[cuboid.ID][]cuboid.ID)
	queue := holder.Slice()
	padded := 0
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		parent := p.parentOnPromise(current, holder, forward)
		if parent <= 0 {
			continue
		}
		if !holder.Contains(parent) {
			holder.Add(parent)
			queue = append(queue, parent)
			padded++
		}
		parent2child[parent] = append(parent2child[parent], current)
	}

	return &buildResult{holder: holder, parent2child: parent2child, padded: padded}, nil
}

// parentsByLayer enumerates the next layer: all parent candidates of the
// given children, kept when some group accepts them within its dim cap.
// The base cuboid is exempt from the cap.
func (p *planner) parentsByLayer(children *cuboid.Set) *cuboid.Set {
	parents := cuboid.NewSet()
	children.ForEach(func(c cuboid.ID) bool {
		parents.Union(p.onTreeParents(c))
		return true
	})

	kept := cuboid.NewSet()
	parents.ForEach(func(c cuboid.ID) bool {
		if c == p.base {
			kept.Add(c)
			return true
		}
		for _, g := range p.groups {
			if g.IsOnTree(c) && g.CheckDimCap(c) {
				kept.Add(c)
				break
			}
		}
		return true
	})
	return kept
}
