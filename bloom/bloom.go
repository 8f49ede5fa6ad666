// Package bloom provides a bloom filter: a probabilistic membership
// structure with no false negatives and a tunable false-positive rate.
//
// The bit array length m and hash count k are derived from the expected
// element count n and target false-positive rate p:
//
//	m = ceil(-n · ln p / ln(2)²)
//	k = round(m/n · ln 2)
//
// Positions are produced by Kirsch-Mitzenmacher double hashing over two
// xxhash base hashes.
package bloom

import (
	"errors"
	"math"

	"github.com/bits-and-blooms/bitset"

	"github.com/hupe1980/algokit/internal/hashutil"
)

// MaxBits caps the computed bit-array length to bound memory.
const MaxBits = 10_000_000

var (
	// ErrInvalidExpectedItems is returned when the expected element count
	// is not positive.
	ErrInvalidExpectedItems = errors.New("bloom: expected items must be positive")
	// ErrInvalidFalsePositiveRate is returned when the target rate is
	// outside (0, 1).
	ErrInvalidFalsePositiveRate = errors.New("bloom: false-positive rate must be in (0, 1)")
)

// Config holds the sizing parameters of a Filter.
type Config struct {
	// ExpectedItems is the number of elements the filter is sized for.
	ExpectedItems int
	// FalsePositiveRate is the target false-positive probability at
	// ExpectedItems elements, exclusive (0, 1).
	FalsePositiveRate float64
}

// Filter is an add-only bloom filter.
//
// Not safe for concurrent use.
type Filter struct {
	bits   *bitset.BitSet
	m      uint64 // bit-array length
	k      int    // hash-function count
	count  uint64
	capped bool
}

// New creates a Filter sized from cfg. Computed bit lengths above MaxBits
// are clamped.
func New(cfg Config) (*Filter, error) {
	if cfg.ExpectedItems <= 0 {
		return nil, ErrInvalidExpectedItems
	}
	if cfg.FalsePositiveRate <= 0 || cfg.FalsePositiveRate >= 1 {
		return nil, ErrInvalidFalsePositiveRate
	}

	n := float64(cfg.ExpectedItems)
	ln2 := math.Ln2
	m := uint64(math.Ceil(-n * math.Log(cfg.FalsePositiveRate) / (ln2 * ln2)))
	capped := false
	if m > MaxBits {
		m = MaxBits
		capped = true
	}
	if m < 1 {
		m = 1
	}

	k := int(math.Round(float64(m) / n * ln2))
	if k < 1 {
		k = 1
	}

	return &Filter{
		bits:   bitset.New(uint(m)),
		m:      m,
		k:      k,
		capped: capped,
	}, nil
}

// Params returns the derived bit-array length m and hash count k.
func (f *Filter) Params() (m uint64, k int) {
	return f.m, f.k
}

// Capped reports whether the computed bit length was clamped to MaxBits.
// A capped filter exceeds the configured false-positive rate once filled.
func (f *Filter) Capped() bool {
	return f.capped
}

// Count returns the number of Add calls.
func (f *Filter) Count() uint64 {
	return f.count
}

// Add inserts data into the filter.
func (f *Filter) Add(data []byte) {
	h1, h2 := hashutil.DoubleHash(data)
	for i := 0; i < f.k; i++ {
		f.bits.Set(uint((h1 + uint64(i)*h2) % f.m))
	}
	f.count++
}

// AddString inserts s into the filter.
func (f *Filter) AddString(s string) {
	f.Add([]byte(s))
}

// Contains reports whether data may have been added. A false result is
// definitive; a true result may be a false positive.
func (f *Filter) Contains(data []byte) bool {
	h1, h2 := hashutil.DoubleHash(data)
	for i := 0; i < f.k; i++ {
		if !f.bits.Test(uint((h1 + uint64(i)*h2) % f.m)) {
			return false
		}
	}
	return true
}

// ContainsString reports whether s may have been added.
func (f *Filter) ContainsString(s string) bool {
	return f.Contains([]byte(s))
}
