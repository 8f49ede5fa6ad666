// Package hashutil provides seeded 64-bit hashing for the probabilistic
// structures (bloom, sketch).
package hashutil

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Sum64Seed returns the xxhash of data mixed with seed. xxhash/v2 exposes
// no seed parameter, so the seed is fed through the digest ahead of the
// payload.
func Sum64Seed(seed uint64, data []byte) uint64 {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], seed)

	d := xxhash.New()
	_, _ = d.Write(buf[:])
	_, _ = d.Write(data)
	return d.Sum64()
}

// DoubleHash returns the two independent base hashes used for
// Kirsch-Mitzenmacher double hashing: position i is
// (h1 + i*h2) mod m.
func DoubleHash(data []byte) (h1, h2 uint64) {
	h1 = xxhash.Sum64(data)
	h2 = Sum64Seed(h1, data)
	// h2 must be odd so the probe sequence cycles through all positions.
	h2 |= 1
	return h1, h2
}
