// Package gridpath defines the core grid types: positions, directions and paths.
package gridpath

import (
	"fmt"
	"strings"
)

// Position is a cell on the integer grid.
type Position struct {
	X, Y int
}

// String renders the position as "(x, y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Move returns the position one step away in direction d.
// Complexity: O(1).
func (p Position) Move(d Direction) Position {
	dx, dy := d.Delta()

	return Position{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|.
func Manhattan(a, b Position) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}

// Direction is one of the four cardinal moves.
type Direction uint8

const (
	// North moves +1 on the Y axis.
	North Direction = iota + 1
	// South moves -1 on the Y axis.
	South
	// East moves +1 on the X axis.
	East
	// West moves -1 on the X axis.
	West
)

// SearchOrder is the fixed order in which moves are tried at every node.
// It decides discovery order only; the resulting set does not depend on it.
var SearchOrder = [4]Direction{East, West, North, South}

// Delta returns the unit offset of d. Unknown directions yield (0, 0).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case North:
		return 0, 1
	case South:
		return 0, -1
	case East:
		return 1, 0
	case West:
		return -1, 0
	default:
		return 0, 0
	}
}

// Symbol returns the single-byte symbol of d: 'N', 'S', 'E' or 'W'.
// Unknown directions yield '?'.
func (d Direction) Symbol() byte {
	switch d {
	case North:
		return 'N'
	case South:
		return 'S'
	case East:
		return 'E'
	case West:
		return 'W'
	default:
		return '?'
	}
}

// String returns the full name of d.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case South:
		return "South"
	case East:
		return "East"
	case West:
		return "West"
	default:
		return "Unknown"
	}
}

// IsValid reports whether d is one of the four cardinal directions.
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// ParseDirection maps a symbol back to its Direction.
func ParseDirection(sym byte) (Direction, error) {
	switch sym {
	case 'N':
		return North, nil
	case 'S':
		return South, nil
	case 'E':
		return East, nil
	case 'W':
		return West, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadSymbol, sym)
	}
}

// Path is the ordered list of moves taken from a seed position.
type Path []Direction

// ParsePath parses a symbol string such as "EENN". The empty string is
// the empty path.
// Complexity: O(len(s)).
func ParsePath(s string) (Path, error) {
	p := make(Path, 0, len(s))
	for i := 0; i < len(s); i++ {
		d, err := ParseDirection(s[i])
		if err != nil {
			return nil, fmt.Errorf("gridpath: ParsePath(%q) at %d: %w", s, i, err)
		}
		p = append(p, d)
	}

	return p, nil
}

// MustParsePath is ParsePath that panics on error. Intended for tests and
// literals.
func MustParsePath(s string) Path {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}

	return p
}

// String renders p as its symbol sequence.
func (p Path) String() string {
	var sb strings.Builder
	sb.Grow(len(p))
	for _, d := range p {
		sb.WriteByte(d.Symbol())
	}

	return sb.String()
}

// Clone returns an independent copy of p. A nil path clones to an empty,
// non-nil path so that the empty route is distinguishable from "no route".
func (p Path) Clone() Path {
	out := make(Path, len(p))
	copy(out, p)

	return out
}

// Walk applies every move of p starting at from and returns the final cell.
// Complexity: O(len(p)).
func (p Path) Walk(from Position) Position {
	cur := from
	for _, d := range p {
		cur = cur.Move(d)
	}

	return cur
}

// LongestRun returns the length of the longest block of identical
// consecutive directions in p. The empty path has longest run 0.
func (p Path) LongestRun() int {
	best, run := 0, 0
	for i, d := range p {
		if i > 0 && p[i-1] == d {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
	}

	return best
}

// TrailingRun counts how many times d repeats at the end of p, scanning
// backward and stopping at the first different direction.
// Complexity: O(run length).
func (p Path) TrailingRun(d Direction) int {
	count := 0
	for i := len(p) - 1; i >= 0; i-- {
		if p[i] != d {
			break
		}
		count++
	}

	return count
}

// ExceedsRun reports whether appending d to p would produce a trailing run
// of d longer than maxRun.
func ExceedsRun(p Path, d Direction, maxRun int) bool {
	return p.TrailingRun(d)+1 > maxRun
}
