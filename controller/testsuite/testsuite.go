// Package testsuite runs the same behavioural tests against every
// controller.Store implementation.
package testsuite

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/battlesnakeio/arcade/controller"
	"github.com/battlesnakeio/arcade/rules"
	uuid "github.com/satori/go.uuid"
	"github.com/stretchr/testify/require"
)

func newGame() *controller.Game {
	return &controller.Game{
		ID:     uuid.NewV4().String(),
		Width:  20,
		Height: 20,
		Speed:  100,
		Status: controller.GameStatusRunning,
	}
}

func frame(id string, turn int) *rules.Snapshot {
	return &rules.Snapshot{
		ID:          id,
		Turn:        turn,
		Width:       20,
		Height:      20,
		Snake:       []rules.Cell{{X: 10 + turn, Y: 10}},
		Food:        &rules.Cell{X: 1, Y: 1},
		Adversaries: []rules.Adversary{},
		Direction:   rules.DirectionRight,
		Interval:    100,
	}
}

func testStoreGames(t *testing.T, s controller.Store) {
	ctx := context.Background()
	g := newGame()

	// Create and fetch a game.
	err := s.CreateGame(ctx, g)
	require.NoError(t, err)
	got, err := s.GetGame(ctx, g.ID)
	require.NoError(t, err)
	require.Equal(t, g.ID, got.ID)
	require.Equal(t, 20, got.Width)
	require.Equal(t, 100, got.Speed)
	require.Equal(t, controller.GameStatusRunning, got.Status)

	// NotFound error thrown.
	_, err = s.GetGame(ctx, g.ID+"-missing")
	require.Equal(t, controller.ErrNotFound, err)
}

func testStoreEndGame(t *testing.T, s controller.Store) {
	ctx := context.Background()
	g := newGame()
	require.NoError(t, s.CreateGame(ctx, g))

	err := s.EndGame(ctx, g.ID, &rules.GameOverError{
		Score:     6,
		BaseScore: 3,
		Turn:      42,
		Cause:     rules.DeathCauseWallCollision,
	})
	require.NoError(t, err)

	got, err := s.GetGame(ctx, g.ID)
	require.NoError(t, err)
	require.Equal(t, controller.GameStatusComplete, got.Status)
	require.Equal(t, 6, got.Score)
	require.Equal(t, 3, got.BaseScore)
	require.Equal(t, 42, got.Turn)
	require.Equal(t, rules.DeathCauseWallCollision, got.Cause)

	err = s.EndGame(ctx, g.ID+"-missing", &rules.GameOverError{})
	require.Equal(t, controller.ErrNotFound, err)
}

func testStoreGameFrames(t *testing.T, s controller.Store) {
	ctx := context.Background()
	g := newGame()
	require.NoError(t, s.CreateGame(ctx, g))

	// Read game frames, too high offset.
	frames, err := s.ListGameFrames(ctx, g.ID, 10, 100)
	require.NoError(t, err)
	require.Len(t, frames, 0)

	// Read game frames, 0 offset.
	frames, err = s.ListGameFrames(ctx, g.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, frames, 0)

	for turn := 0; turn < 3; turn++ {
		require.NoError(t, s.PushGameFrame(ctx, g.ID, frame(g.ID, turn)))
	}

	// Read the game frames.
	frames, err = s.ListGameFrames(ctx, g.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, frames, 3)
	for i, f := range frames {
		require.Equal(t, frame(g.ID, i), f)
	}

	// Limit and offset.
	frames, err = s.ListGameFrames(ctx, g.ID, 2, 1)
	require.NoError(t, err)
	require.Len(t, frames, 2)
	require.Equal(t, 1, frames[0].Turn)
	require.Equal(t, 2, frames[1].Turn)

	// Negative offset counts from the end.
	frames, err = s.ListGameFrames(ctx, g.ID, 1, -1)
	require.NoError(t, err)
	require.Len(t, frames, 1)
	require.Equal(t, 2, frames[0].Turn)

	// Bigger limit.
	frames, err = s.ListGameFrames(ctx, g.ID, 1000000000, 0)
	require.NoError(t, err)
	require.Len(t, frames, 3)

	// Read game frames that don't exist.
	_, err = s.ListGameFrames(ctx, g.ID+"-missing", 1, 0)
	require.Equal(t, controller.ErrNotFound, err)
}

func testStoreFrameSequence(t *testing.T, s controller.Store) {
	ctx := context.Background()
	g := newGame()

	// No game yet.
	err := s.PushGameFrame(ctx, g.ID, frame(g.ID, 0))
	require.Equal(t, controller.ErrNotFound, err)

	require.NoError(t, s.CreateGame(ctx, g))
	require.NoError(t, s.PushGameFrame(ctx, g.ID, frame(g.ID, 0)))

	// Skipping a turn is rejected.
	err = s.PushGameFrame(ctx, g.ID, frame(g.ID, 2))
	require.Equal(t, controller.ErrInvalidSequence, err)

	// Replaying a turn is rejected.
	err = s.PushGameFrame(ctx, g.ID, frame(g.ID, 0))
	require.Equal(t, controller.ErrInvalidSequence, err)

	require.NoError(t, s.PushGameFrame(ctx, g.ID, frame(g.ID, 1)))
}

func testStoreConcurrentGames(t *testing.T, s controller.Store) {
	ctx := context.Background()

	var ok uint32
	var wg sync.WaitGroup
	wg.Add(10)

	for i := 0; i < 10; i++ {
		go func() {
			defer wg.Done()
			g := newGame()
			if err := s.CreateGame(ctx, g); err != nil {
				return
			}
			if err := s.PushGameFrame(ctx, g.ID, frame(g.ID, 0)); err != nil {
				return
			}
			atomic.AddUint32(&ok, 1)
		}()
	}

	wg.Wait()
	require.Equal(t, uint32(10), ok)
}

// Suite runs every store test against s, calling reset before each one.
func Suite(t *testing.T, s controller.Store, reset func()) {
	tests := []struct {
		name string
		fn   func(*testing.T, controller.Store)
	}{
		{"Games", testStoreGames},
		{"EndGame", testStoreEndGame},
		{"GameFrames", testStoreGameFrames},
		{"FrameSequence", testStoreFrameSequence},
		{"ConcurrentGames", testStoreConcurrentGames},
	}
	for _, test := range tests {
		reset()
		t.Run(test.name, func(t *testing.T) { test.fn(t, s) })
	}
}
