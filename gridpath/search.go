package gridpath

import (
	"errors"
	"fmt"
)

// errLimitReached unwinds the recursion once Options.Limit paths are found.
// It never escapes this package.
var errLimitReached = errors.New("gridpath: limit reached")

// maxSeedCap bounds the up-front capacity of the path buffer.
const maxSeedCap = 1 << 10

// walker encapsulates state during one search.
type walker struct {
	target Position
	maxRun int
	opts   Options
	res    *PathSet
	path   Path // shared buffer; extended and truncated in place
}

// Search enumerates every admissible monotone path from start to target and
// returns them as a fresh PathSet in discovery order.
//
// A path is admissible when it never repeats one direction more than maxRun
// times in a row. With start == target the result holds exactly the empty
// path. With maxRun <= 0 and start != target the result is empty, unless
// WithStrict is given, in which case ErrNonPositiveMaxRun is returned.
//
// On cancellation or a hook error the partial result is returned alongside
// the error.
func Search(start, target Position, maxRun int, opts ...Option) (*PathSet, error) {
	return SearchFrom(start, nil, target, maxRun, opts...)
}

// SearchFrom runs the same procedure seeded with an arbitrary position and
// partial path. Every discovered path begins with prefix; the trailing run
// of prefix counts toward the first move's run limit.
// prefix is not modified.
func SearchFrom(from Position, prefix Path, target Position, maxRun int, opts ...Option) (*PathSet, error) {
	// 1. Apply options
	o := applyOptions(opts)

	// 2. Optional validation
	if o.Strict {
		if err := Validate(from, target, maxRun); err != nil {
			return nil, err
		}
	}

	// 3. Seed the walker with a private copy of prefix
	seed := make(Path, len(prefix), len(prefix)+min(Manhattan(from, target), maxSeedCap))
	copy(seed, prefix)
	w := &walker{
		target: target,
		maxRun: maxRun,
		opts:   o,
		res:    NewPathSet(),
		path:   seed,
	}

	// 4. Traverse
	if err := w.explore(from); err != nil && !errors.Is(err, errLimitReached) {
		return w.res, err
	}

	return w.res, nil
}

// Validate reports whether a configuration passes the WithStrict checks:
// maxRun must be positive and no coordinate may be negative.
func Validate(from, target Position, maxRun int) error {
	if maxRun <= 0 {
		return fmt.Errorf("%w: got %d", ErrNonPositiveMaxRun, maxRun)
	}
	if from.X < 0 || from.Y < 0 {
		return fmt.Errorf("%w: start %v", ErrNegativeCoordinate, from)
	}
	if target.X < 0 || target.Y < 0 {
		return fmt.Errorf("%w: target %v", ErrNegativeCoordinate, target)
	}

	return nil
}

// explore visits cur with the walker's current partial path.
func (w *walker) explore(cur Position) error {
	// 1. Cancellation check
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	// 2. Terminal: record and stop
	if cur == w.target {
		return w.record()
	}

	// 3. Try each move that closes the gap on its axis
	for _, d := range SearchOrder {
		if !w.approaches(cur, d) || ExceedsRun(w.path, d, w.maxRun) {
			continue
		}
		w.path = append(w.path, d)
		err := w.explore(cur.Move(d))
		w.path = w.path[:len(w.path)-1]
		if err != nil {
			return err
		}
	}

	return nil
}

// approaches reports whether moving from cur in direction d strictly
// reduces the distance to the target along d's axis.
func (w *walker) approaches(cur Position, d Direction) bool {
	switch d {
	case East:
		return cur.X < w.target.X
	case West:
		return cur.X > w.target.X
	case North:
		return cur.Y < w.target.Y
	case South:
		return cur.Y > w.target.Y
	default:
		return false
	}
}

func (w *walker) record() error {
	if !w.res.Add(w.path) {
		return nil
	}
	if w.opts.OnPath != nil {
		if err := w.opts.OnPath(w.res.paths[len(w.res.paths)-1]); err != nil {
			return fmt.Errorf("gridpath: OnPath hook for %q: %w", w.path.String(), err)
		}
	}
	if w.opts.Limit > 0 && w.res.Len() >= w.opts.Limit {
		return errLimitReached
	}

	return nil
}
