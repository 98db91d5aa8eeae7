package rules

import (
	"math/rand"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestGameTickUpdatesTurnCounter(t *testing.T) {
	gs := newTestState(t, 20, 20, 100)
	require.NoError(t, gs.Tick())
	require.Equal(t, 1, gs.Turn())
}

func TestGameTickMovesSnake(t *testing.T) {
	gs := newTestState(t, 20, 20, 100)
	gs.snake = []Cell{
		{X: 5, Y: 5},
		{X: 4, Y: 5},
		{X: 3, Y: 5},
	}
	gs.food = &Cell{X: 0, Y: 0}

	require.NoError(t, gs.Tick())
	require.Equal(t, []Cell{
		{X: 6, Y: 5},
		{X: 5, Y: 5},
		{X: 4, Y: 5},
	}, gs.Snake())
	require.Equal(t, 0, gs.BaseScore())
}

func TestGameTickSnakeEats(t *testing.T) {
	gs := newTestState(t, 20, 20, 100)
	gs.snake = []Cell{
		{X: 5, Y: 5},
		{X: 4, Y: 5},
	}
	gs.food = &Cell{X: 6, Y: 5}
	gs.adversaries = []Adversary{{Cell: Cell{X: 0, Y: 0}, Direction: DirectionLeft}}

	require.NoError(t, gs.Tick())
	require.Len(t, gs.Snake(), 3)
	require.Equal(t, Cell{X: 6, Y: 5}, gs.Snake()[0])
	require.Equal(t, 1, gs.BaseScore())
	require.Equal(t, 1, gs.Score())

	food, ok := gs.Food()
	require.True(t, ok)
	for _, b := range gs.Snake() {
		require.False(t, food.Equal(b), "food placed on snake")
	}
	require.False(t, food.Equal(Cell{X: 0, Y: 0}), "food placed on adversary")
}

func TestGameTickWallCollision(t *testing.T) {
	gs := newTestState(t, 5, 5, 100)
	gs.snake = []Cell{{X: 4, Y: 2}}
	gs.food = &Cell{X: 0, Y: 0}
	gs.baseScore = 2
	gs.weighted = 200

	err := gs.Tick()
	require.Error(t, err)

	var over *GameOverError
	require.True(t, errors.As(err, &over))
	require.Equal(t, DeathCauseWallCollision, over.Cause)
	require.Equal(t, 2, over.Score)
	require.Equal(t, 2, over.BaseScore)
	require.Equal(t, []Cell{{X: 4, Y: 2}}, gs.Snake(), "snake should not move into the wall")
}

func TestGameTickSelfCollision(t *testing.T) {
	gs := newTestState(t, 20, 20, 100)
	gs.snake = []Cell{
		{X: 4, Y: 4},
		{X: 5, Y: 4},
		{X: 5, Y: 5},
		{X: 4, Y: 5},
		{X: 3, Y: 5},
	}
	gs.heading = DirectionLeft
	gs.pending = DirectionDown

	err := gs.Tick()
	var over *GameOverError
	require.True(t, errors.As(err, &over))
	require.Equal(t, DeathCauseSnakeSelfCollision, over.Cause)
}

func TestGameTickAdversaryCollision(t *testing.T) {
	gs := newTestState(t, 20, 20, 100)
	gs.snake = []Cell{{X: 5, Y: 5}}
	gs.adversaries = []Adversary{{Cell: Cell{X: 6, Y: 5}, Direction: DirectionRight}}

	err := gs.Tick()
	var over *GameOverError
	require.True(t, errors.As(err, &over))
	require.Equal(t, DeathCauseAdversaryCollision, over.Cause)
}

func TestGameTickOverIsTerminal(t *testing.T) {
	gs := newTestState(t, 5, 5, 100)
	gs.snake = []Cell{{X: 4, Y: 2}}

	first := gs.Tick()
	require.True(t, IsGameOver(first))
	turn := gs.Turn()

	second := gs.Tick()
	require.Equal(t, first, second)
	require.Equal(t, turn, gs.Turn())
	require.True(t, gs.Snapshot().Over)
	require.Equal(t, DeathCauseWallCollision, gs.Snapshot().Cause)
}

func TestGameTickBoardFull(t *testing.T) {
	gs := newTestState(t, 2, 1, 100)
	gs.snake = []Cell{{X: 0, Y: 0}}
	gs.food = &Cell{X: 1, Y: 0}

	err := gs.Tick()
	require.True(t, errors.Is(err, ErrBoardFull))
	var over *GameOverError
	require.True(t, errors.As(err, &over))
	require.Equal(t, DeathCauseBoardFull, over.Cause)
	require.Equal(t, 1, over.BaseScore)
	require.Len(t, gs.Snake(), 2)
	_, ok := gs.Food()
	require.False(t, ok)
}

// placeSafely moves a length one snake to a row where its next move right is
// free, so the game can be ticked for as long as needed.
func placeSafely(t *testing.T, gs *GameState) {
	taken := occupiedCells(nil, nil, gs.adversaries)
	for y := 0; y < gs.height; y++ {
		from, to := Cell{X: 0, Y: y}, Cell{X: 1, Y: y}
		if taken.has(from) || taken.has(to) {
			continue
		}
		gs.snake = []Cell{from}
		gs.heading = DirectionRight
		gs.pending = DirectionRight
		gs.food = &Cell{X: gs.width - 1, Y: y}
		return
	}
	require.FailNow(t, "no safe row")
}

func TestAdversarySpawnCadence(t *testing.T) {
	gs := newTestState(t, 20, 20, 100)
	require.Equal(t, 100, IntervalForSpeed(gs.Speed()))

	for i := 1; i <= 200; i++ {
		placeSafely(t, gs)
		require.NoError(t, gs.Tick())
		switch {
		case i < 100:
			require.Len(t, gs.Adversaries(), 0, "tick %d", i)
		case i < 200:
			require.Len(t, gs.Adversaries(), 1, "tick %d", i)
		default:
			require.Len(t, gs.Adversaries(), 2, "tick %d", i)
		}
	}
}

func TestAdversarySpawnAvoidsOccupiedCells(t *testing.T) {
	gs := newTestState(t, 3, 1, 100)
	gs.snake = []Cell{{X: 0, Y: 0}}
	gs.food = &Cell{X: 2, Y: 0}
	gs.spawnAdversary()
	require.Len(t, gs.adversaries, 1)
	require.Equal(t, Cell{X: 1, Y: 0}, gs.adversaries[0].Cell)

	// Nothing left, the spawn is skipped.
	gs.spawnAdversary()
	require.Len(t, gs.adversaries, 1)
}

func TestMoveAdversaries(t *testing.T) {
	gs := newTestState(t, 5, 5, 100)
	gs.snake = []Cell{{X: 4, Y: 4}}
	gs.food = &Cell{X: 3, Y: 0}
	gs.adversaries = []Adversary{
		{Cell: Cell{X: 0, Y: 0}, Direction: DirectionLeft},
		{Cell: Cell{X: 2, Y: 0}, Direction: DirectionRight},
		{Cell: Cell{X: 4, Y: 2}, Direction: DirectionDown},
		{Cell: Cell{X: 1, Y: 2}, Direction: DirectionRight},
		{Cell: Cell{X: 2, Y: 2}, Direction: DirectionUp},
	}

	gs.moveAdversaries()

	// Blocked by the wall, stays put.
	require.Equal(t, Cell{X: 0, Y: 0}, gs.adversaries[0].Cell)
	// Food doesn't block.
	require.Equal(t, Cell{X: 3, Y: 0}, gs.adversaries[1].Cell)
	require.Equal(t, DirectionRight, gs.adversaries[1].Direction)
	// Moves next to the snake.
	require.Equal(t, Cell{X: 4, Y: 3}, gs.adversaries[2].Cell)
	// Blocked by the adversary at (2, 2).
	require.Equal(t, Cell{X: 1, Y: 2}, gs.adversaries[3].Cell)
	// Free to move up.
	require.Equal(t, Cell{X: 2, Y: 1}, gs.adversaries[4].Cell)

	// Next step would hit the snake.
	gs.moveAdversaries()
	require.Equal(t, Cell{X: 4, Y: 3}, gs.adversaries[2].Cell)
}

func TestGameTickInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for game := 0; game < 20; game++ {
		gs, err := NewGameState(8, 8, 150, rng)
		require.NoError(t, err)

		for i := 0; i < 500; i++ {
			gs.SetDirection(Directions[rng.Intn(len(Directions))])
			before := len(gs.Snake())
			baseBefore := gs.BaseScore()
			food, _ := gs.Food()

			err := gs.Tick()
			if err != nil {
				require.True(t, IsGameOver(err))
				break
			}

			snake := gs.Snake()
			requireDistinct(t, snake)
			if snake[0].Equal(food) {
				require.Len(t, snake, before+1)
				require.Equal(t, baseBefore+1, gs.BaseScore())
				next, ok := gs.Food()
				require.True(t, ok)
				for _, b := range snake {
					require.False(t, b.Equal(next))
				}
			} else {
				require.Len(t, snake, before)
				require.Equal(t, baseBefore, gs.BaseScore())
			}
		}
	}
}
