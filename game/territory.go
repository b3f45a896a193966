package game

import (
	"errors"
	"fmt"

	"war/dice"
	"war/meta"
)

// ErrInvalidCount is returned when generation is asked for an unsupported
// number of territories.
var ErrInvalidCount = errors.New("invalid territory count")

// Faction identifies the side owning a territory. It indexes Catalog.Colors.
type Faction int

// Territory is one ownable unit of the board. Its identity is its index in
// GameState.Territories.
type Territory struct {
	Name   string  // Fixed at generation
	Owner  Faction // Changes only through Attack
	Armies int
}

// Generate draws n territories with distinct names and distinct owners from
// the catalog. The catalog itself is left untouched.
func Generate(c *Catalog, src dice.Source, n int) ([]Territory, error) {
	if n <= meta.GENERATION_FLOOR || n > c.Size() {
		return nil, fmt.Errorf("%w: %d not in (%d, %d]", ErrInvalidCount, n, meta.GENERATION_FLOOR, c.Size())
	}

	names := permutation(src, len(c.Names))
	colors := permutation(src, len(c.Colors))

	territories := make([]Territory, n)
	for i := range territories {
		territories[i] = Territory{
			Name:   c.Names[names[i]],
			Owner:  Faction(colors[i]),
			Armies: dice.Between(src, meta.MIN_ARMIES, meta.MAX_ARMIES),
		}
	}
	return territories, nil
}

// permutation returns a shuffled list of indexes in [0, size).
func permutation(src dice.Source, size int) []int {
	perm := make([]int, size)
	for i := range perm {
		perm[i] = i
	}
	dice.Shuffle(src, perm)
	return perm
}
