package rules

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestCell_Move(t *testing.T) {
	tests := []struct {
		Direction Direction
		Expected  Cell
	}{
		{Direction: DirectionUp, Expected: Cell{X: 5, Y: 4}},
		{Direction: DirectionDown, Expected: Cell{X: 5, Y: 6}},
		{Direction: DirectionLeft, Expected: Cell{X: 4, Y: 5}},
		{Direction: DirectionRight, Expected: Cell{X: 6, Y: 5}},
		{Direction: "", Expected: Cell{X: 5, Y: 5}},
	}
	for _, test := range tests {
		require.Equal(t, test.Expected, Cell{X: 5, Y: 5}.Move(test.Direction), "Direction: %s", test.Direction)
	}
}

func TestDirection_Opposite(t *testing.T) {
	require.Equal(t, DirectionDown, DirectionUp.Opposite())
	require.Equal(t, DirectionUp, DirectionDown.Opposite())
	require.Equal(t, DirectionRight, DirectionLeft.Opposite())
	require.Equal(t, DirectionLeft, DirectionRight.Opposite())
}

func TestParseDirection(t *testing.T) {
	for _, d := range Directions {
		parsed, err := ParseDirection(string(d))
		require.NoError(t, err)
		require.Equal(t, d, parsed)
	}
	_, err := ParseDirection("north")
	require.True(t, errors.Is(err, ErrInvalidDirection))
}
