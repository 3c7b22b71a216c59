package cubeplan

import (
	"slices"
	"sync"
	"time"

	"github.com/hupe1980/cubeplan/cuboid"
)

// Scheduler holds the materialized cuboid set and the spanning tree built
// from one descriptor. It is immutable after New and safe for concurrent
// readers.
type Scheduler struct {
	planner      *planner
	opts         Options
	max          cuboid.ID
	all          *cuboid.Set
	parent2child map[cuboid.ID][]cuboid.ID

	layerOnce sync.Once
	layers    [][]cuboid.ID
	layerErr  error
}

// New validates desc and eagerly builds the cuboid spanning tree.
func New(desc *Descriptor, optFns ...func(*Options)) (*Scheduler, error) {
	opts := DefaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	if err := desc.Validate(); err != nil {
		return nil, err
	}

	p := &planner{base: desc.base(), groups: desc.Groups}

	start := time.Now()
	res, err := buildTreeBottomUp(desc, p, opts.Logger)
	if err != nil {
		opts.Metrics.OnBuild(time.Since(start), 0, 0, err)
		return nil, err
	}
	opts.Metrics.OnBuild(time.Since(start), res.holder.Len(), res.padded, nil)
	opts.Logger.Info("built cuboid spanning tree",
		"dimensions", desc.Dimensions,
		"cuboids", res.holder.Len(),
		"padded", res.padded,
	)

	return &Scheduler{
		planner:      p,
		opts:         opts,
		max:          cuboid.Base(desc.Dimensions),
		all:          res.holder,
		parent2child: res.parent2child,
	}, nil
}

// Base returns the base cuboid, the root of the spanning tree.
func (s *Scheduler) Base() cuboid.ID {
	return s.planner.base
}

// Count returns the number of materialized cuboids.
func (s *Scheduler) Count() int {
	return s.all.Len()
}

// AllCuboidIDs returns the materialized cuboids in ascending order.
func (s *Scheduler) AllCuboidIDs() []cuboid.ID {
	return s.all.Slice()
}

// Contains reports whether c is materialized.
func (s *Scheduler) Contains(c cuboid.ID) bool {
	return s.all.Contains(c)
}

// Spanning returns the children of c in the spanning tree, possibly empty.
func (s *Scheduler) Spanning(c cuboid.ID) ([]cuboid.ID, error) {
	if err := s.checkRange(c); err != nil {
		return nil, err
	}
	return slices.Clone(s.parent2child[c]), nil
}

// Cardinality returns the number of dimensions participating in c.
func (s *Scheduler) Cardinality(c cuboid.ID) (int, error) {
	if err := s.checkRange(c); err != nil {
		return 0, err
	}
	return cuboid.Cardinality(c), nil
}

// ByLayer returns the materialized cuboids grouped by tree depth: layer 0
// is the base, layer i+1 spans the children of layer i. The layering is
// computed on first call and memoized.
func (s *Scheduler) ByLayer() ([][]cuboid.ID, error) {
	s.layerOnce.Do(func() {
		s.layers, s.layerErr = s.computeLayers()
	})
	return s.layers, s.layerErr
}

func (s *Scheduler) computeLayers() ([][]cuboid.ID, error) {
	layers := [][]cuboid.ID{{s.planner.base}}
	total := 1

	last := layers[0]
	for {
		var next []cuboid.ID
		for _, parent := range last {
			next = append(next, s.parent2child[parent]...)
		}
		if len(next) == 0 {
			break
		}
		layers = append(layers, next)
		total += len(next)
		last = next
	}

	if total != s.all.Len() {
		return nil, &ErrLayerCountMismatch{Layered: total, Total: s.all.Len()}
	}
	return layers, nil
}

func (s *Scheduler) checkRange(c cuboid.ID) error {
	if c < 0 || c > s.max {
		return &ErrOutOfRange{Cuboid: c, Max: s.max}
	}
	return nil
}
