package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDeathCauseWallCollision(t *testing.T) {
	points := []Cell{
		{X: -1, Y: 1},
		{X: 20, Y: 1},
		{X: 1, Y: -1},
		{X: 1, Y: 20},
	}
	for _, p := range points {
		cause := checkForDeath(20, 20, p, []Cell{{X: 1, Y: 1}}, nil)
		require.Equal(t, DeathCauseWallCollision, cause, "point %s", p)
	}
}

func TestDeathCauseSnakeSelfCollision(t *testing.T) {
	snake := []Cell{
		{X: 4, Y: 4},
		{X: 3, Y: 4},
		{X: 3, Y: 3},
		{X: 4, Y: 3},
	}
	require.Equal(t, DeathCauseSnakeSelfCollision, checkForDeath(20, 20, Cell{X: 4, Y: 3}, snake, nil))
}

func TestDeathCauseAdversaryCollision(t *testing.T) {
	adversaries := []Adversary{
		{Cell: Cell{X: 6, Y: 5}, Direction: DirectionUp},
	}
	require.Equal(t, DeathCauseAdversaryCollision, checkForDeath(20, 20, Cell{X: 6, Y: 5}, []Cell{{X: 5, Y: 5}}, adversaries))
}

func TestNoDeath(t *testing.T) {
	require.Empty(t, checkForDeath(20, 20, Cell{X: 6, Y: 5}, []Cell{{X: 5, Y: 5}}, nil))
}

func TestAdversaryBlocked(t *testing.T) {
	snake := []Cell{{X: 2, Y: 2}}
	adversaries := []Adversary{
		{Cell: Cell{X: 0, Y: 0}, Direction: DirectionLeft},
		{Cell: Cell{X: 3, Y: 3}, Direction: DirectionRight},
	}
	tests := []struct {
		Name    string
		Next    Cell
		Index   int
		Blocked bool
	}{
		{Name: "wall", Next: Cell{X: -1, Y: 0}, Index: 0, Blocked: true},
		{Name: "snake", Next: Cell{X: 2, Y: 2}, Index: 1, Blocked: true},
		{Name: "other adversary", Next: Cell{X: 3, Y: 3}, Index: 0, Blocked: true},
		{Name: "own cell", Next: Cell{X: 3, Y: 3}, Index: 1, Blocked: false},
		{Name: "free", Next: Cell{X: 4, Y: 3}, Index: 1, Blocked: false},
	}
	for _, test := range tests {
		require.Equal(t, test.Blocked, adversaryBlocked(5, 5, test.Next, test.Index, snake, adversaries), test.Name)
	}
}
