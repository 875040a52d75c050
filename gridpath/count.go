package gridpath

import "math/big"

// Binomial returns C(n, k), the number of monotone lattice paths with n
// moves of which k are horizontal. It is 0 when k is outside [0, n].
func Binomial(n, k int) *big.Int {
	if n < 0 || k < 0 || k > n {
		return new(big.Int)
	}

	return new(big.Int).Binomial(int64(n), int64(k))
}

// CountPaths returns how many paths Search(start, target, maxRun) would
// find, without enumerating them. The count is symmetric in the two axes.
//
// Block decomposition: h[i][j] counts arrangements of i moves along the
// long axis and j along the short one that end with a long-axis block,
// v[i][j] likewise with a short-axis block. A block has length 1..maxRun
// and follows a block of the other kind or the origin, which seeds both
// tables with 1. Each cell is a sliding sum over the previous maxRun
// cells, so only the last min(maxRun, L)+1 rows of v and one row of h are
// kept.
// Complexity: O(L×S) time, O(min(maxRun, L)×S) memory, where L and S are
// the longer and shorter axis distances.
func CountPaths(start, target Position, maxRun int) *big.Int {
	long, short := abs(target.X-start.X), abs(target.Y-start.Y)
	if long == 0 && short == 0 {
		return big.NewInt(1)
	}
	if maxRun <= 0 {
		return new(big.Int)
	}
	if short > long {
		long, short = short, long
	}

	w := min(maxRun, long) + 1
	v := newTable(w, short+1) // ring of rows, row i lives at i%w
	h := newRow(short + 1)    // current row only
	win := newRow(short + 1)  // win[j] = sum of v[i-maxRun..i-1][j]
	run := new(big.Int)       // sum of h[i][j-maxRun..j-1]

	for i := 0; i <= long; i++ {
		cur := v[i%w]
		if i > 0 {
			prev := v[(i-1)%w]
			old := i - 1 - maxRun
			for j := range win {
				win[j].Add(win[j], prev[j])
				if old >= 0 {
					win[j].Sub(win[j], v[old%w][j])
				}
			}
		}

		run.SetInt64(0)
		for j := 0; j <= short; j++ {
			h[j].Set(win[j])
			if j > 0 {
				run.Add(run, h[j-1])
				if j-1-maxRun >= 0 {
					run.Sub(run, h[j-1-maxRun])
				}
			}
			cur[j].Set(run)
			if i == 0 && j == 0 {
				h[j].SetInt64(1)
				cur[j].SetInt64(1)
			}
		}
	}

	return new(big.Int).Add(h[short], v[long%w][short])
}

func newTable(rows, cols int) [][]*big.Int {
	t := make([][]*big.Int, rows)
	for i := range t {
		t[i] = newRow(cols)
	}

	return t
}

func newRow(n int) []*big.Int {
	r := make([]*big.Int, n)
	for i := range r {
		r[i] = new(big.Int)
	}

	return r
}
