package cubeplan

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/cubeplan/cuboid"
)

// BestMatchBatch resolves many query projections concurrently. The result
// slice is index-aligned with queries. Resolution stops at the first error
// or when ctx is cancelled.
func (s *Scheduler) BestMatchBatch(ctx context.Context, queries []cuboid.ID) ([]cuboid.ID, error) {
	results := make([]cuboid.ID, len(queries))

	parallelism := s.opts.Parallelism
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)
	for i, q := range queries {
		i, q := i, q
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			match, err := s.BestMatch(q)
			if err != nil {
				return err
			}
			results[i] = match
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
