package cuboid

import "github.com/RoaringBitmap/roaring/v2/roaring64"

// Set is a cuboid id set backed by a 64-bit Roaring Bitmap. Iteration is
// always sorted ascending, which keeps every consumer deterministic.
type Set struct {
	rb *roaring64.Bitmap
}

// NewSet creates a set holding the given ids.
func NewSet(ids ...ID) *Set {
	s := &Set{rb: roaring64.New()}
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts c into the set.
func (s *Set) Add(c ID) {
	s.rb.Add(uint64(c))
}

// Contains reports whether c is in the set.
func (s *Set) Contains(c ID) bool {
	if c < 0 {
		return false
	}
	return s.rb.Contains(uint64(c))
}

// Len returns the number of ids in the set.
func (s *Set) Len() int {
	return int(s.rb.GetCardinality())
}

// ForEach calls fn for every id in ascending order until fn returns false.
func (s *Set) ForEach(fn func(ID) bool) {
	it := s.rb.Iterator()
	for it.HasNext() {
		if !fn(ID(it.Next())) {
			return
		}
	}
}

// Slice returns the ids in ascending order.
func (s *Set) Slice() []ID {
	out := make([]ID, 0, s.Len())
	it := s.rb.Iterator()
	for it.HasNext() {
		out = append(out, ID(it.Next()))
	}
	return out
}

// Clone returns a deep copy of the set.
func (s *Set) Clone() *Set {
	return &Set{rb: s.rb.Clone()}
}

// Union adds every id of other to the set.
func (s *Set) Union(other *Set) {
	s.rb.Or(other.rb)
}
