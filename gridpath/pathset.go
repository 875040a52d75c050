package gridpath

import (
	"bufio"
	"io"
)

// PathSet is an insertion-ordered set of distinct paths. Two paths are the
// same element when their direction sequences are equal.
// The zero value is not usable; call NewPathSet.
type PathSet struct {
	paths []Path
	index map[string]struct{}
}

// NewPathSet returns an empty set.
func NewPathSet() *PathSet {
	return &PathSet{index: make(map[string]struct{})}
}

// Add inserts a copy of p unless an equal path is already present.
// It reports whether p was inserted.
// Complexity: O(len(p)).
func (s *PathSet) Add(p Path) bool {
	key := p.String()
	if _, dup := s.index[key]; dup {
		return false
	}
	s.index[key] = struct{}{}
	s.paths = append(s.paths, p.Clone())

	return true
}

// Contains reports whether an equal path is in the set.
func (s *PathSet) Contains(p Path) bool {
	_, ok := s.index[p.String()]

	return ok
}

// Len returns the number of distinct paths.
func (s *PathSet) Len() int {
	return len(s.paths)
}

// Paths returns a deep copy of the paths in discovery order.
func (s *PathSet) Paths() []Path {
	out := make([]Path, len(s.paths))
	for i, p := range s.paths {
		out[i] = p.Clone()
	}

	return out
}

// Strings returns the symbol rendering of each path in discovery order.
func (s *PathSet) Strings() []string {
	out := make([]string, len(s.paths))
	for i, p := range s.paths {
		out[i] = p.String()
	}

	return out
}

// Merge adds every path of other that is not yet present, keeping other's
// order for the new entries. It returns the number of paths added.
// Merging a set into itself adds nothing.
func (s *PathSet) Merge(other *PathSet) int {
	if other == nil || other == s {
		return 0
	}
	added := 0
	for _, p := range other.paths {
		if s.Add(p) {
			added++
		}
	}

	return added
}

// WriteTo writes one path per line in discovery order.
func (s *PathSet) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var total int64
	for _, p := range s.paths {
		n, err := bw.WriteString(p.String() + "\n")
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	return total, bw.Flush()
}
