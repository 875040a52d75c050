package gridpath

import "io"

// Explorer owns a search configuration and the paths discovered by its
// most recent Run.
//
// Construction and the setters never search. Call Run after any change;
// Stale reports whether the configuration moved since the last Run.
// Explorer is not safe for concurrent use.
type Explorer struct {
	start, target Position
	maxRun        int
	found         *PathSet
	stale         bool
}

// NewExplorer returns an explorer for the given configuration with an
// empty result. It is stale until the first Run.
func NewExplorer(start, target Position, maxRun int) *Explorer {
	return &Explorer{
		start:  start,
		target: target,
		maxRun: maxRun,
		found:  NewPathSet(),
		stale:  true,
	}
}

// Start returns the configured start position.
func (e *Explorer) Start() Position { return e.start }

// Target returns the configured target position.
func (e *Explorer) Target() Position { return e.target }

// MaxRun returns the configured consecutive-move limit.
func (e *Explorer) MaxRun() int { return e.maxRun }

// Stale reports whether the configuration changed since the last Run.
func (e *Explorer) Stale() bool { return e.stale }

// SetStart changes the start position and marks the explorer stale.
func (e *Explorer) SetStart(p Position) {
	e.start = p
	e.stale = true
}

// SetTarget changes the target position and marks the explorer stale.
func (e *Explorer) SetTarget(p Position) {
	e.target = p
	e.stale = true
}

// SetMaxRun changes the run limit and marks the explorer stale.
func (e *Explorer) SetMaxRun(n int) {
	e.maxRun = n
	e.stale = true
}

// Run searches from the configured start and replaces the held result with
// the fresh one, so repeated runs never accumulate. On error the held
// result is left untouched and the partial set is returned.
func (e *Explorer) Run(opts ...Option) (*PathSet, error) {
	res, err := Search(e.start, e.target, e.maxRun, opts...)
	if err != nil {
		return res, err
	}
	e.found = res
	e.stale = false

	return res, nil
}

// Extend searches toward the configured target from an arbitrary position
// and partial path. The explorer's own result is not touched; pass the
// returned set to Merge to accumulate it.
func (e *Explorer) Extend(from Position, prefix Path, opts ...Option) (*PathSet, error) {
	return SearchFrom(from, prefix, e.target, e.maxRun, opts...)
}

// Merge adds the paths of s to the held result and returns how many were new.
func (e *Explorer) Merge(s *PathSet) int {
	return e.found.Merge(s)
}

// Paths returns a copy of the held paths in discovery order.
func (e *Explorer) Paths() []Path {
	return e.found.Paths()
}

// Count returns the number of held paths.
func (e *Explorer) Count() int {
	return e.found.Len()
}

// Compare orders explorers by how many paths they currently hold:
// -1 if e holds fewer than other, +1 if more, 0 if the counts match.
// Equal counts say nothing about equal configurations.
func (e *Explorer) Compare(other *Explorer) int {
	a, b := e.Count(), other.Count()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// WriteTo lists the held paths, one per line.
func (e *Explorer) WriteTo(w io.Writer) (int64, error) {
	return e.found.WriteTo(w)
}
