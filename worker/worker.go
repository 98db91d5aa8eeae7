// Package worker runs the live game clock. A single goroutine owns the game
// state: ticks and player input are both handled on it, one at a time.
package worker

import (
	"context"
	"math/rand"
	"time"

	"github.com/battlesnakeio/arcade/config"
	"github.com/battlesnakeio/arcade/controller"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/pkg/errors"
)

// ErrStopped is returned by calls made after Run has returned.
var ErrStopped = errors.New("worker: stopped")

type call struct {
	fn      func(*rules.GameState) error
	mutates bool
	errc    chan error
}

// Worker drives a single game on a timer.
type Worker struct {
	// Store records every game played and its frames.
	Store controller.Store
	// AutoRestart starts a new game as soon as one ends.
	AutoRestart bool
	// OnGameOver, when set, is called on the worker goroutine with the result
	// of every game the rules end. Games abandoned by a reset or resize are
	// not reported. It must not call back into the worker.
	OnGameOver func(*rules.GameOverError)

	gs       *rules.GameState
	calls    chan call
	done     chan struct{}
	ticker   *time.Ticker
	tick     <-chan time.Time
	interval time.Duration
	gameID   string
	last     rules.Snapshot
	ended    bool

	feed
}

// New builds a worker for a validated game configuration. A nil store keeps
// games in memory, a nil rng is seeded from the clock.
func New(cfg config.Game, store controller.Store, rng *rand.Rand) (*Worker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	gs, err := rules.NewGameState(cfg.Width, cfg.Height, cfg.Speed, rng)
	if err != nil {
		return nil, err
	}
	if store == nil {
		store = controller.InMemStore()
	}
	return &Worker{
		Store: store,
		gs:    gs,
		calls: make(chan call),
		done:  make(chan struct{}),
		feed:  feed{subs: map[int]chan rules.Snapshot{}},
	}, nil
}

// Run starts the clock and processes ticks and calls until ctx is done. It
// must only be called once.
func (w *Worker) Run(ctx context.Context) error {
	defer close(w.done)
	defer w.stopTicker()

	w.record(ctx)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.tick:
			w.step(ctx)
		case c := <-w.calls:
			c.errc <- c.fn(w.gs)
			if c.mutates {
				w.reconcile(ctx)
			}
		}
	}
}

// do runs fn on the worker goroutine and waits for it to finish.
func (w *Worker) do(ctx context.Context, mutates bool, fn func(*rules.GameState) error) error {
	c := call{fn: fn, mutates: mutates, errc: make(chan error, 1)}
	select {
	case w.calls <- c:
	case <-w.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-c.errc:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Snapshot returns a copy of the current game.
func (w *Worker) Snapshot(ctx context.Context) (rules.Snapshot, error) {
	var s rules.Snapshot
	err := w.do(ctx, false, func(gs *rules.GameState) error {
		s = gs.Snapshot()
		return nil
	})
	return s, err
}

// Steer queues a direction for the next tick. Reversals are ignored and
// reported as not accepted.
func (w *Worker) Steer(ctx context.Context, d rules.Direction) (bool, error) {
	if !d.Valid() {
		return false, errors.Wrapf(rules.ErrInvalidDirection, "%q", d)
	}
	var ok bool
	err := w.do(ctx, true, func(gs *rules.GameState) error {
		ok = gs.SetDirection(d)
		return nil
	})
	return ok, err
}

// Resize changes the board and starts a new game.
func (w *Worker) Resize(ctx context.Context, width, height int) error {
	return w.do(ctx, true, func(gs *rules.GameState) error {
		return gs.Resize(width, height)
	})
}

// SetSpeed changes the tick interval of the running game.
func (w *Worker) SetSpeed(ctx context.Context, speed int) error {
	return w.do(ctx, true, func(gs *rules.GameState) error {
		return gs.SetSpeed(speed)
	})
}

// Reset starts a new game with the current configuration.
func (w *Worker) Reset(ctx context.Context) error {
	return w.do(ctx, true, func(gs *rules.GameState) error {
		return gs.Reset()
	})
}

// reconcile brings the clock and the store in line with the game after a
// call: a new game id means the old record is closed and a fresh record and
// clock started, a new speed means a new ticker.
func (w *Worker) reconcile(ctx context.Context) {
	if w.gs.ID() != w.gameID {
		w.abandon(ctx)
		w.record(ctx)
		return
	}
	if w.gs.Over() == nil && w.gs.Interval() != w.interval {
		w.startTicker()
	}
	w.last = w.gs.Snapshot()
	w.publish(w.last)
}

func (w *Worker) startTicker() {
	w.stopTicker()
	w.interval = w.gs.Interval()
	w.ticker = time.NewTicker(w.interval)
	w.tick = w.ticker.C
}

// stopTicker drops the ticker channel so a pending tick is never read.
func (w *Worker) stopTicker() {
	if w.ticker == nil {
		return
	}
	w.ticker.Stop()
	w.ticker = nil
	w.tick = nil
}
