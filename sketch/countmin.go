// Package sketch provides a count-min sketch: a probabilistic frequency
// estimator that never underestimates true counts.
//
// Width and depth derive from the error parameters:
//
//	width = ceil(e / epsilon)   — additive error bound epsilon·N
//	depth = ceil(ln(1 / delta)) — error bound holds with probability 1-delta
//
// Each row hashes with its own seed; Estimate takes the minimum across
// rows to bound over-counting.
package sketch

import (
	"errors"
	"math"

	"github.com/hupe1980/algokit/internal/hashutil"
)

var (
	// ErrInvalidEpsilon is returned when epsilon is outside (0, 1).
	ErrInvalidEpsilon = errors.New("sketch: epsilon must be in (0, 1)")
	// ErrInvalidDelta is returned when delta is outside (0, 1).
	ErrInvalidDelta = errors.New("sketch: delta must be in (0, 1)")
)

// CountMin is a d×w counter table with per-row hash seeds.
//
// Not safe for concurrent use.
type CountMin struct {
	width uint64
	depth int
	rows  [][]uint64
	total uint64
}

// New creates a CountMin sketch with additive error at most epsilon times
// the total count, with probability at least 1-delta.
func New(epsilon, delta float64) (*CountMin, error) {
	if epsilon <= 0 || epsilon >= 1 {
		return nil, ErrInvalidEpsilon
	}
	if delta <= 0 || delta >= 1 {
		return nil, ErrInvalidDelta
	}

	width := uint64(math.Ceil(math.E / epsilon))
	depth := int(math.Ceil(math.Log(1 / delta)))
	if depth < 1 {
		depth = 1
	}

	rows := make([][]uint64, depth)
	for i := range rows {
		rows[i] = make([]uint64, width)
	}

	return &CountMin{width: width, depth: depth, rows: rows}, nil
}

// Dimensions returns the table width and depth.
func (c *CountMin) Dimensions() (width uint64, depth int) {
	return c.width, c.depth
}

// Total returns the sum of all recorded counts.
func (c *CountMin) Total() uint64 {
	return c.total
}

// Update adds count occurrences of item.
func (c *CountMin) Update(item []byte, count uint64) {
	for row := 0; row < c.depth; row++ {
		pos := hashutil.Sum64Seed(uint64(row), item) % c.width
		c.rows[row][pos] += count
	}
	c.total += count
}

// UpdateString adds count occurrences of s.
func (c *CountMin) UpdateString(s string, count uint64) {
	c.Update([]byte(s), count)
}

// Estimate returns an upper bound on the number of recorded occurrences
// of item. The estimate never undercounts; it overcounts by at most
// epsilon times the total with probability 1-delta.
func (c *CountMin) Estimate(item []byte) uint64 {
	var est uint64 = math.MaxUint64
	for row := 0; row < c.depth; row++ {
		pos := hashutil.Sum64Seed(uint64(row), item) % c.width
		if v := c.rows[row][pos]; v < est {
			est = v
		}
	}
	return est
}

// EstimateString returns an upper bound on the occurrences of s.
func (c *CountMin) EstimateString(s string) uint64 {
	return c.Estimate([]byte(s))
}
