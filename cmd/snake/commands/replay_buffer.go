package commands

import (
	"sync"
	"time"

	"github.com/battlesnakeio/arcade/rules"
	"github.com/pkg/errors"
)

// replayBuffer collects the frames of a recorded game while they stream in
// over the socket, and keeps the position of the frame on screen.
type replayBuffer struct {
	mu       sync.Mutex
	frames   []*rules.Snapshot
	pos      int
	finished bool

	// ready is closed by the first frame, or by the end of the stream.
	ready chan struct{}
	once  sync.Once
}

func newReplayBuffer() *replayBuffer {
	return &replayBuffer{ready: make(chan struct{})}
}

func (b *replayBuffer) add(frame *rules.Snapshot) {
	b.mu.Lock()
	b.frames = append(b.frames, frame)
	b.mu.Unlock()
	b.once.Do(func() { close(b.ready) })
}

// finish marks the stream as done; no frames follow.
func (b *replayBuffer) finish() {
	b.mu.Lock()
	b.finished = true
	b.mu.Unlock()
	b.once.Do(func() { close(b.ready) })
}

// first waits for the opening frame of the game.
func (b *replayBuffer) first(timeout time.Duration) (*rules.Snapshot, error) {
	select {
	case <-b.ready:
	case <-time.After(timeout):
		return nil, errors.New("unable to find initial frame for game")
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.frames) == 0 {
		return nil, errors.New("game has no frames")
	}
	return b.frames[0], nil
}

// forward moves to the next frame. At the last frame it stays put, and end
// reports whether the stream is over so no frame will ever follow.
func (b *replayBuffer) forward() (frame *rules.Snapshot, end bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.frames) == 0 {
		return nil, b.finished
	}
	if b.pos+1 < len(b.frames) {
		b.pos++
		return b.frames[b.pos], false
	}
	return b.frames[b.pos], b.finished
}

// back moves to the previous frame, stopping at the first one.
func (b *replayBuffer) back() *rules.Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.frames) == 0 {
		return nil
	}
	if b.pos > 0 {
		b.pos--
	}
	return b.frames[b.pos]
}
