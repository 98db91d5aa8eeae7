package filestore

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/battlesnakeio/arcade/controller"
	"github.com/battlesnakeio/arcade/controller/testsuite"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestFileStore(t *testing.T) {
	fs := NewFileStore(t.TempDir())
	defer fs.Close()
	testsuite.Suite(t, fs, func() {})
}

func TestFileStore_Instrumented(t *testing.T) {
	fs := NewFileStore(t.TempDir())
	defer fs.Close()
	testsuite.Suite(t, controller.InstrumentStore(fs), func() {})
}

func TestFileStore_ReloadsFinishedGames(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	fs := NewFileStore(dir)

	frame := &rules.Snapshot{ID: "game-1", Width: 5, Height: 5, Adversaries: []rules.Adversary{}}
	require.NoError(t, fs.CreateGame(ctx, controller.NewGame(frame, 100)))
	for turn := 0; turn < 3; turn++ {
		f := *frame
		f.Turn = turn
		require.NoError(t, fs.PushGameFrame(ctx, frame.ID, &f))
	}
	require.NoError(t, fs.EndGame(ctx, frame.ID, &rules.GameOverError{
		Turn:  2,
		Score: 1,
		Cause: rules.DeathCauseWallCollision,
	}))
	require.Empty(t, fs.writers)

	// A fresh store only has the archive to go on.
	other := NewFileStore(dir)
	defer other.Close()
	g, err := other.GetGame(ctx, frame.ID)
	require.NoError(t, err)
	require.Equal(t, controller.GameStatusComplete, g.Status)
	require.Equal(t, rules.DeathCauseWallCollision, g.Cause)

	frames, err := other.ListGameFrames(ctx, frame.ID, 10, 0)
	require.NoError(t, err)
	require.Len(t, frames, 3)
	require.Equal(t, 2, frames[2].Turn)
}

func TestFileStore_OpenFileError(t *testing.T) {
	defer func(f func(string, string, bool) (writer, error)) { openFileWriter = f }(openFileWriter)
	openFileWriter = func(string, string, bool) (writer, error) {
		return nil, errors.New("fail")
	}

	fs := NewFileStore(t.TempDir())
	err := fs.CreateGame(context.Background(), &controller.Game{ID: "game-1"})
	require.EqualError(t, err, "fail")
	_, err = fs.GetGame(context.Background(), "game-1")
	require.Equal(t, controller.ErrNotFound, err)
}

func TestReadLines(t *testing.T) {
	archive := strings.Join([]string{
		`{"game":{"id":"a","status":"running"}}`,
		`{"frame":{"id":"a","turn":0}}`,
		`{"frame":{"id":"a","turn":1}}`,
		`{"game":{"id":"a","status":"complete"}}`,
	}, "\n")
	g, frames, err := readLines(bufio.NewReader(strings.NewReader(archive)), "a")
	require.NoError(t, err)
	require.Equal(t, controller.GameStatusComplete, g.Status)
	require.Len(t, frames, 2)

	_, _, err = readLines(bufio.NewReader(strings.NewReader(`{"frame":{"turn":0}}`)), "a")
	require.True(t, errors.Is(err, controller.ErrNotFound))

	_, _, err = readLines(bufio.NewReader(strings.NewReader("{nope\n")), "a")
	require.Error(t, err)
}

func TestReadArchive_Missing(t *testing.T) {
	_, _, err := readArchive(t.TempDir(), "missing")
	require.Equal(t, controller.ErrNotFound, err)
}
