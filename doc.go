// Package cubeplan plans the materialization of an OLAP cube.
//
// Given a declarative cube descriptor, cubeplan decides which cuboids
// (aggregation projections over the cube's dimensions) are worth
// pre-computing and arranges them into a spanning tree that tells a build
// pipeline how each cuboid is derived from a parent by further aggregation.
// At query time it snaps an arbitrary projection onto the materialized
// cuboid that serves it best.
//
// # Quick Start
//
//	group, _ := cubeplan.NewAggregationGroup(cubeplan.GroupSpec{
//	    Includes:  []int{0, 1, 2, 3},
//	    Mandatory: []int{0},
//	    Joints:    [][]int{{1, 2}},
//	})
//
//	scheduler, err := cubeplan.New(&cubeplan.Descriptor{
//	    Dimensions: 4,
//	    Groups:     []*cubeplan.AggregationGroup{group},
//	})
//	if err != nil {
//	    panic(err)
//	}
//
//	children, _ := scheduler.Spanning(scheduler.Base())
//	match, _ := scheduler.BestMatch(0b0110)
//
// # Model
//
// A cuboid is a bitmask over dimensions, bit i set means dimension i
// participates in the aggregation. The base cuboid retains every dimension
// and roots the spanning tree. Aggregation groups constrain which cuboids
// are valid: mandatory dimensions, joints (dimensions appearing together),
// hierarchies (ordered ladders), and a per-group cap on effective
// dimensions.
//
// The build works bottom-up: the lowest cuboids of every group seed a
// layer-by-layer expansion pruned by the dim cap, blacklisted cuboids are
// dropped, then the set is padded with indirect ancestors until every
// cuboid has a parent.
//
// # Concurrency
//
// Construction is eager and single-threaded. A built Scheduler is immutable
// and safe for any number of concurrent readers, BestMatchBatch fans
// resolutions out across goroutines.
package cubeplan
