// SPDX-License-Identifier: MIT

package compare

import (
	"fmt"
	"math"
)

// DTW computes the Dynamic Time Warping distance between a and b.
//
// Recurrence (1-based, D[0][0] = 0, D[i][0] = D[0][j] = +∞):
//
//	D[i][j] = |a[i-1] − b[j-1]| + min(D[i-1][j] + p, D[i][j-1] + p, D[i-1][j-1])
//
// Cells outside the window are +∞, so a window narrower than |n−m| yields +∞.
// When opts.ReturnPath is set, the optimal alignment from (0,0) to (n−1,m−1)
// is returned as well.
//
// Complexity: O(n·m) time; O(n·m) memory for FullMatrix, O(m) for TwoRows.
func DTW(a, b []float64, opts Options) (float64, []Coord, error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, nil, fmt.Errorf("DTW: %w", ErrEmptyInput)
	}
	if opts.Window < NoWindow || opts.SlopePenalty < 0 || math.IsNaN(opts.SlopePenalty) {
		return 0, nil, fmt.Errorf("DTW: window=%d penalty=%g: %w", opts.Window, opts.SlopePenalty, ErrBadInput)
	}
	if opts.ReturnPath && opts.MemoryMode != FullMatrix {
		return 0, nil, fmt.Errorf("DTW: %w", ErrPathNeedsMatrix)
	}

	inf := math.Inf(1)
	penalty := opts.SlopePenalty
	outside := func(i, j int) bool {
		return opts.Window != NoWindow && absInt(i-j) > opts.Window
	}

	rows := 2
	if opts.MemoryMode == FullMatrix {
		rows = n + 1
	}
	dp := make([][]float64, rows)
	for r := range dp {
		dp[r] = make([]float64, m+1)
	}
	row := func(i int) []float64 {
		if opts.MemoryMode == FullMatrix {
			return dp[i]
		}
		return dp[i%2]
	}

	// Stage 1: boundary.
	for j := 1; j <= m; j++ {
		dp[0][j] = inf
	}

	// Stage 2: fill.
	for i := 1; i <= n; i++ {
		curr, prev := row(i), row(i-1)
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if outside(i, j) {
				curr[j] = inf
				continue
			}
			best := min3(prev[j]+penalty, curr[j-1]+penalty, prev[j-1])
			curr[j] = math.Abs(a[i-1]-b[j-1]) + best
		}
	}
	dist := row(n)[m]

	if !opts.ReturnPath || math.IsInf(dist, 1) {
		return dist, nil, nil
	}

	// Stage 3: backtrack along the cheapest predecessor.
	path := make([]Coord, 0, n+m)
	i, j := n, m
	for i > 0 && j > 0 {
		path = append(path, Coord{I: i - 1, J: j - 1})
		match := dp[i-1][j-1]
		up := dp[i-1][j] + penalty
		left := dp[i][j-1] + penalty
		switch {
		case match <= up && match <= left:
			i, j = i-1, j-1
		case up <= left:
			i--
		default:
			j--
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return dist, path, nil
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func min3(a, b, c float64) float64 {
	return math.Min(a, math.Min(b, c))
}
