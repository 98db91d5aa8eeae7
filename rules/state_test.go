package rules

import (
	"math/rand"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestNewGameState(t *testing.T) {
	gs := newTestState(t, 20, 20, 100)
	require.NotEmpty(t, gs.ID())
	require.Equal(t, []Cell{{X: 10, Y: 10}}, gs.Snake())
	require.Equal(t, DirectionRight, gs.Direction())
	require.Empty(t, gs.Adversaries())
	require.Equal(t, 0, gs.BaseScore())
	require.Equal(t, 0, gs.Score())
	require.Equal(t, 100*time.Millisecond, gs.Interval())
	require.Nil(t, gs.Over())

	food, ok := gs.Food()
	require.True(t, ok)
	require.False(t, food.Equal(Cell{X: 10, Y: 10}))
}

func TestNewGameState_InvalidConfiguration(t *testing.T) {
	tests := []struct {
		Width, Height, Speed int
	}{
		{Width: 0, Height: 10, Speed: 100},
		{Width: 10, Height: -1, Speed: 100},
		{Width: 10, Height: 10, Speed: 0},
		{Width: 10, Height: 10, Speed: 200},
	}
	for _, test := range tests {
		_, err := NewGameState(test.Width, test.Height, test.Speed, nil)
		require.True(t, errors.Is(err, ErrInvalidConfiguration), "%+v", test)
	}
}

func TestNewGameState_SmallBoards(t *testing.T) {
	_, err := NewGameState(1, 1, 100, nil)
	require.True(t, errors.Is(err, ErrBoardFull))

	gs := newTestState(t, 2, 1, 100)
	require.Equal(t, []Cell{{X: 1, Y: 0}}, gs.Snake())
	food, ok := gs.Food()
	require.True(t, ok)
	require.Equal(t, Cell{X: 0, Y: 0}, food)
}

func TestSetDirection(t *testing.T) {
	gs := newTestState(t, 20, 20, 100)

	require.False(t, gs.SetDirection(DirectionLeft), "reversal should be ignored")
	require.Equal(t, DirectionRight, gs.Direction())

	require.True(t, gs.SetDirection(DirectionUp))
	require.Equal(t, DirectionUp, gs.Direction())

	require.True(t, gs.SetDirection(DirectionDown))
	require.Equal(t, DirectionDown, gs.Direction())

	require.False(t, gs.SetDirection(Direction("sideways")))
	require.Equal(t, DirectionDown, gs.Direction())
}

func TestSetDirection_ComparesAgainstLastMove(t *testing.T) {
	gs := newTestState(t, 20, 20, 100)
	gs.food = &Cell{X: 0, Y: 0}

	// Two quick inputs inside one tick can't fold the snake back on itself.
	require.True(t, gs.SetDirection(DirectionUp))
	require.False(t, gs.SetDirection(DirectionLeft))

	require.NoError(t, gs.Tick())
	require.Equal(t, Cell{X: 10, Y: 9}, gs.Snake()[0])

	require.True(t, gs.SetDirection(DirectionLeft))
	require.False(t, gs.SetDirection(DirectionDown))
}

func TestResize(t *testing.T) {
	gs := newTestState(t, 20, 20, 100)
	id := gs.ID()
	require.NoError(t, gs.Tick())

	require.NoError(t, gs.Resize(5, 8))
	require.Equal(t, 5, gs.Width())
	require.Equal(t, 8, gs.Height())
	require.Equal(t, []Cell{{X: 4, Y: 7}}, gs.Snake())
	require.Equal(t, 0, gs.Turn())
	require.NotEqual(t, id, gs.ID())
}

func TestResize_InvalidLeavesStateAlone(t *testing.T) {
	gs := newTestState(t, 20, 20, 100)
	require.NoError(t, gs.Tick())
	before := gs.Snapshot()

	err := gs.Resize(0, 10)
	require.True(t, errors.Is(err, ErrInvalidConfiguration))

	err = gs.Resize(1, 1)
	require.True(t, errors.Is(err, ErrBoardFull))

	require.Equal(t, before, gs.Snapshot())
}

func TestReset(t *testing.T) {
	gs := newTestState(t, 20, 20, 100)
	gs.snake = []Cell{{X: 3, Y: 3}, {X: 2, Y: 3}}
	gs.adversaries = []Adversary{{Cell: Cell{X: 7, Y: 7}, Direction: DirectionUp}}
	gs.baseScore = 4
	gs.weighted = 400
	gs.elapsed = 9000
	gs.heading = DirectionUp
	gs.pending = DirectionUp

	require.NoError(t, gs.Reset())
	first := gs.Snapshot()
	require.NoError(t, gs.Reset())
	second := gs.Snapshot()

	for _, s := range []Snapshot{first, second} {
		require.Equal(t, []Cell{{X: 10, Y: 10}}, s.Snake)
		require.Empty(t, s.Adversaries)
		require.Equal(t, 0, s.BaseScore)
		require.Equal(t, 0, s.Score)
		require.Equal(t, 0, s.Turn)
		require.Equal(t, DirectionRight, s.Direction)
		require.False(t, s.Over)
	}
	require.Equal(t, 0, gs.elapsed)

	// Identical modulo the food position and the game id.
	first.Food, second.Food = nil, nil
	first.ID, second.ID = "", ""
	require.Equal(t, first, second)
}

func TestReset_AfterGameOver(t *testing.T) {
	gs := newTestState(t, 5, 5, 100)
	gs.snake = []Cell{{X: 4, Y: 2}}
	require.True(t, IsGameOver(gs.Tick()))

	require.NoError(t, gs.Reset())
	require.Nil(t, gs.Over())
	require.Equal(t, []Cell{{X: 4, Y: 4}}, gs.Snake())
}

func TestSetSpeed(t *testing.T) {
	gs := newTestState(t, 20, 20, 100)
	id := gs.ID()

	require.NoError(t, gs.SetSpeed(150))
	require.Equal(t, 50*time.Millisecond, gs.Interval())
	require.Equal(t, id, gs.ID(), "changing speed should not reset the game")

	err := gs.SetSpeed(250)
	require.True(t, errors.Is(err, ErrInvalidConfiguration))
	require.Equal(t, 150, gs.Speed())
}

func TestScoreUsesSpeedAtTimeOfEating(t *testing.T) {
	gs := newTestState(t, 20, 20, 50)
	gs.snake = []Cell{{X: 5, Y: 5}}
	gs.food = &Cell{X: 6, Y: 5}
	require.NoError(t, gs.Tick())
	require.Equal(t, 1, gs.BaseScore())
	require.Equal(t, 1, gs.Score(), "round(0.5)")

	require.NoError(t, gs.SetSpeed(150))
	gs.food = &Cell{X: 7, Y: 5}
	require.NoError(t, gs.Tick())
	require.Equal(t, 2, gs.BaseScore())
	require.Equal(t, 2, gs.Score(), "0.5 + 1.5")
}

func TestSnapshotIsACopy(t *testing.T) {
	gs, err := NewGameState(20, 20, 100, rand.New(rand.NewSource(1)))
	require.NoError(t, err)
	gs.adversaries = []Adversary{{Cell: Cell{X: 1, Y: 1}, Direction: DirectionUp}}

	s := gs.Snapshot()
	s.Snake[0] = Cell{X: 0, Y: 0}
	s.Adversaries[0].X = 9
	*s.Food = Cell{X: 19, Y: 19}

	require.Equal(t, Cell{X: 10, Y: 10}, gs.Snake()[0])
	require.Equal(t, 1, gs.Adversaries()[0].X)
	food, _ := gs.Food()
	require.NotEqual(t, Cell{X: 19, Y: 19}, food)

	head, ok := s.Head()
	require.True(t, ok)
	require.Equal(t, Cell{X: 0, Y: 0}, head)
	require.Equal(t, 100, s.Interval)
}
