package rules

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestGetUnoccupiedCell(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	o := occupiedCells(
		[]Cell{{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 3, Y: 2}},
		&Cell{X: 1, Y: 1},
		[]Adversary{{Cell: Cell{X: 0, Y: 0}}},
	)
	for i := 0; i < 100; i++ {
		c, err := getUnoccupiedCell(rng, 4, 4, o)
		require.NoError(t, err)
		require.False(t, o.has(c), "picked occupied cell %s", c)
		require.True(t, c.X >= 0 && c.X < 4 && c.Y >= 0 && c.Y < 4)
	}
}

func TestGetUnoccupiedCell_LastFreeCell(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	var snake []Cell
	for x := 0; x < 10; x++ {
		for y := 0; y < 10; y++ {
			if x == 7 && y == 3 {
				continue
			}
			snake = append(snake, Cell{X: x, Y: y})
		}
	}
	c, err := getUnoccupiedCell(rng, 10, 10, occupiedCells(snake, nil, nil))
	require.NoError(t, err)
	require.Equal(t, Cell{X: 7, Y: 3}, c)
}

func TestGetUnoccupiedCell_BoardFull(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	o := occupiedCells([]Cell{{X: 0, Y: 0}, {X: 1, Y: 0}}, nil, nil)
	_, err := getUnoccupiedCell(rng, 2, 1, o)
	require.True(t, errors.Is(err, ErrBoardFull))
}

func TestGetUnoccupiedCells(t *testing.T) {
	o := occupiedCells([]Cell{{X: 0, Y: 0}}, &Cell{X: 1, Y: 1}, nil)
	require.ElementsMatch(t, []Cell{{X: 0, Y: 1}, {X: 1, Y: 0}}, getUnoccupiedCells(2, 2, o))
}
