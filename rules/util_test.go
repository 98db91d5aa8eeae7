package rules

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestState(t *testing.T, width, height, speed int) *GameState {
	gs, err := NewGameState(width, height, speed, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	return gs
}

func requireDistinct(t *testing.T, cells []Cell) {
	seen := map[Cell]bool{}
	for _, c := range cells {
		require.False(t, seen[c], "duplicate cell %s", c)
		seen[c] = true
	}
}
