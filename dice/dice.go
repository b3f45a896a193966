// Package dice isolates every random draw of a session behind a Source so
// that generation, combat and missions can be replayed from a seed.
package dice

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"golang.org/x/exp/constraints"
)

// Source yields uniform integers in [0, n). *rand.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// New returns a PCG backed source for the given seed.
func New(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewSeed draws a seed from crypto/rand.
func NewSeed() (uint64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

// Roll rolls a single die with the given number of sides.
func Roll(src Source, sides int) int {
	return src.IntN(sides) + 1
}

// Between returns a uniform value in [lo, hi]. An empty range collapses to lo.
func Between[T constraints.Integer](src Source, lo, hi T) T {
	if hi <= lo {
		return lo
	}
	return lo + T(src.IntN(int(hi-lo)+1))
}

// Shuffle permutes items in place with Fisher-Yates.
func Shuffle[T any](src Source, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
}
