package cubeplan

import (
	"errors"
	"fmt"

	"github.com/hupe1980/cubeplan/cuboid"
)

var (
	// ErrNoDimensions is returned when a descriptor declares no dimensions.
	ErrNoDimensions = errors.New("descriptor must declare at least one dimension")

	// ErrTooManyDimensions is returned when a descriptor declares more
	// dimensions than a cuboid id can encode.
	ErrTooManyDimensions = errors.New("descriptor exceeds the maximum dimension count")

	// ErrNoAggregationGroups is returned when a descriptor declares no
	// aggregation groups.
	ErrNoAggregationGroups = errors.New("descriptor must declare at least one aggregation group")

	// ErrBlacklistedBase is returned when the blacklist names the base
	// cuboid. The base is the root of the spanning tree and can never be
	// excluded.
	ErrBlacklistedBase = errors.New("base cuboid must not be blacklisted")
)

// ErrOutOfRange indicates a cuboid argument outside the cube's id range.
type ErrOutOfRange struct {
	Cuboid cuboid.ID
	Max    cuboid.ID
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("cuboid %d is out of scope 0-%d", e.Cuboid, e.Max)
}

// ErrTooManyCuboids indicates the layer expansion exceeded the configured
// combination limit. The build aborts, callers must not retry with the same
// descriptor.
type ErrTooManyCuboids struct {
	Size  int
	Limit int64
}

func (e *ErrTooManyCuboids) Error() string {
	return fmt.Sprintf("too many cuboids for the cube: combination reached %d and limit is %d, abort calculation", e.Size, e.Limit)
}

// ErrNoValidParent indicates the ancestor walk of a best-match resolution
// exhausted the lattice without hitting a materialized cuboid. This is an
// invariant violation.
type ErrNoValidParent struct {
	Cuboid cuboid.ID
}

func (e *ErrNoValidParent) Error() string {
	return fmt.Sprintf("cannot find a valid parent for cuboid %d", e.Cuboid)
}

// ErrLayerCountMismatch indicates the layered traversal did not cover the
// materialized set exactly. This is an invariant violation.
type ErrLayerCountMismatch struct {
	Layered int
	Total   int
}

func (e *ErrLayerCountMismatch) Error() string {
	return fmt.Sprintf("layered cuboid count %d does not match materialized set size %d", e.Layered, e.Total)
}

// ErrNotOnTree indicates a translated cuboid failed its group's on-tree
// predicate. It points at an inconsistent aggregation group definition.
type ErrNotOnTree struct {
	Cuboid cuboid.ID
}

func (e *ErrNotOnTree) Error() string {
	return fmt.Sprintf("cuboid %d is not on tree after translation", e.Cuboid)
}
