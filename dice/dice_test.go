package dice

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRoll(t *testing.T) {
	t.Run("stays within die faces", func(t *testing.T) {
		src := New(42)
		for i := 0; i < 1000; i++ {
			got := Roll(src, 6)
			require.GreaterOrEqual(t, got, 1)
			require.LessOrEqual(t, got, 6)
		}
	})

	t.Run("scripted faces come back unchanged", func(t *testing.T) {
		src := Rolls(6, 1, 3)

		require.Equal(t, 6, Roll(src, 6))
		require.Equal(t, 1, Roll(src, 6))
		require.Equal(t, 3, Roll(src, 6))
		require.Equal(t, 6, Roll(src, 6), "Script should wrap around")
	})
}

func TestBetween(t *testing.T) {
	t.Run("inclusive bounds", func(t *testing.T) {
		src := New(7)
		seen := map[int]bool{}
		for i := 0; i < 2000; i++ {
			got := Between(src, 100, 105)
			require.GreaterOrEqual(t, got, 100)
			require.LessOrEqual(t, got, 105)
			seen[got] = true
		}
		require.Len(t, seen, 6, "Every value of the range should be drawn")
	})

	t.Run("empty range collapses to lower bound", func(t *testing.T) {
		src := NewSequence(3)
		require.Equal(t, 4, Between(src, 4, 4))
		require.Equal(t, 4, Between(src, 4, 2))
		require.Equal(t, 0, src.Draws(), "Collapsed ranges should not consume draws")
	})

	t.Run("works for other integer types", func(t *testing.T) {
		src := NewSequence(1)
		require.Equal(t, uint8(11), Between[uint8](src, 10, 20))
	})
}

func TestShuffle(t *testing.T) {
	t.Run("produces a permutation", func(t *testing.T) {
		items := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
		Shuffle(New(1), items)

		require.ElementsMatch(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, items)
	})

	t.Run("same seed same order", func(t *testing.T) {
		a := []string{"a", "b", "c", "d", "e", "f"}
		b := []string{"a", "b", "c", "d", "e", "f"}
		Shuffle(New(99), a)
		Shuffle(New(99), b)

		require.Equal(t, a, b)
	})

	t.Run("always drawing zero rotates the head", func(t *testing.T) {
		// Always drawing 0 swaps each tail element with the head.
		items := []int{1, 2, 3}
		Shuffle(NewSequence(0), items)

		require.Equal(t, []int{2, 3, 1}, items)
	})
}

func TestNewSeed(t *testing.T) {
	a, err := NewSeed()
	require.NoError(t, err)
	b, err := NewSeed()
	require.NoError(t, err)

	require.NotEqual(t, a, b)
}
