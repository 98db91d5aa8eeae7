package controller

import (
	"context"
	"sync"

	"github.com/battlesnakeio/arcade/rules"
	"github.com/pkg/errors"
)

var (
	// ErrNotFound is thrown when a game is not found.
	ErrNotFound = errors.New("controller: game not found")
	// ErrInvalidSequence is returned when a frame is pushed out of turn order.
	ErrInvalidSequence = errors.New("controller: invalid frame sequence")
)

// Store is the interface to the backend store. It keeps a record of every
// game played and the frames of each game, so games can be replayed.
type Store interface {
	CreateGame(context.Context, *Game) error
	EndGame(ctx context.Context, id string, over *rules.GameOverError) error
	PushGameFrame(ctx context.Context, id string, frame *rules.Snapshot) error
	ListGameFrames(ctx context.Context, id string, limit, offset int) ([]*rules.Snapshot, error)
	GetGame(context.Context, string) (*Game, error)
}

// FrameWindow resolves a limit and offset against a list of n frames and
// returns the [start, end) range to read. A negative offset counts back from
// the end, so an offset of -1 is the last frame.
func FrameWindow(n, limit, offset int) (start, end int) {
	if offset < 0 {
		offset = n + offset
		if offset < 0 {
			offset = 0
		}
	}
	if offset >= n || limit <= 0 {
		return 0, 0
	}
	end = offset + limit
	if end > n || end < offset {
		end = n
	}
	return offset, end
}

// InMemStore returns an in memory implementation of the Store interface.
func InMemStore() Store {
	return &inmem{
		games:  map[string]*Game{},
		frames: map[string][]*rules.Snapshot{},
	}
}

type inmem struct {
	games  map[string]*Game
	frames map[string][]*rules.Snapshot
	lock   sync.Mutex
}

func (in *inmem) CreateGame(ctx context.Context, g *Game) error {
	in.lock.Lock()
	defer in.lock.Unlock()

	cp := *g
	in.games[g.ID] = &cp
	if _, ok := in.frames[g.ID]; !ok {
		in.frames[g.ID] = nil
	}
	return nil
}

func (in *inmem) EndGame(ctx context.Context, id string, over *rules.GameOverError) error {
	in.lock.Lock()
	defer in.lock.Unlock()

	g, ok := in.games[id]
	if !ok {
		return ErrNotFound
	}
	g.Complete(over)
	return nil
}

func (in *inmem) PushGameFrame(ctx context.Context, id string, frame *rules.Snapshot) error {
	in.lock.Lock()
	defer in.lock.Unlock()

	if _, ok := in.games[id]; !ok {
		return ErrNotFound
	}
	if frame.Turn != len(in.frames[id]) {
		return ErrInvalidSequence
	}
	cp := *frame
	in.frames[id] = append(in.frames[id], &cp)
	return nil
}

func (in *inmem) ListGameFrames(ctx context.Context, id string, limit, offset int) ([]*rules.Snapshot, error) {
	in.lock.Lock()
	defer in.lock.Unlock()

	frames, ok := in.frames[id]
	if !ok {
		return nil, ErrNotFound
	}
	start, end := FrameWindow(len(frames), limit, offset)
	if start == end {
		return nil, nil
	}
	return append([]*rules.Snapshot(nil), frames[start:end]...), nil
}

func (in *inmem) GetGame(ctx context.Context, id string) (*Game, error) {
	in.lock.Lock()
	defer in.lock.Unlock()

	if g, ok := in.games[id]; ok {
		cp := *g
		return &cp, nil
	}
	return nil, ErrNotFound
}
