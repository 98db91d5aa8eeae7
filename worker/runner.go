package worker

import (
	"context"
	"time"

	"github.com/battlesnakeio/arcade/controller"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// record stores a newly started game with its first frame and restarts the
// clock.
func (w *Worker) record(ctx context.Context) {
	frame := w.gs.Snapshot()
	w.gameID = frame.ID
	w.last = frame
	w.ended = false

	if err := w.Store.CreateGame(ctx, controller.NewGame(&frame, w.gs.Speed())); err != nil {
		log.WithError(err).WithField("game", frame.ID).Warn("failed to create game record")
	} else if err := w.Store.PushGameFrame(ctx, frame.ID, &frame); err != nil {
		log.WithError(err).WithField("game", frame.ID).Warn("failed to store first frame")
	}

	log.WithFields(log.Fields{
		"game":   frame.ID,
		"width":  frame.Width,
		"height": frame.Height,
		"speed":  w.gs.Speed(),
	}).Info("game started")

	w.startTicker()
	w.publish(frame)
}

// step runs a single tick of the game, stores the resulting frame and ends
// the game when the rules say so.
func (w *Worker) step(ctx context.Context) {
	start := time.Now()
	eaten := w.gs.BaseScore()
	err := w.gs.Tick()
	tickDuration.Observe(time.Since(start).Seconds())
	ticks.Inc()
	if n := w.gs.BaseScore() - eaten; n > 0 {
		foodEaten.Add(float64(n))
	}

	frame := w.gs.Snapshot()
	w.last = frame
	log.WithField("game", frame.ID).
		WithField("turn", frame.Turn).
		Debug("adding game frame")
	if perr := w.Store.PushGameFrame(ctx, frame.ID, &frame); perr != nil {
		log.WithError(perr).
			WithField("game", frame.ID).
			WithField("turn", frame.Turn).
			Warn("failed to store game frame")
	}
	w.publish(frame)

	if err == nil {
		return
	}
	var over *rules.GameOverError
	if !errors.As(err, &over) {
		log.WithError(err).WithField("game", frame.ID).Error("tick failed")
		return
	}
	w.end(ctx, over)
}

func (w *Worker) end(ctx context.Context, over *rules.GameOverError) {
	gameOvers.WithLabelValues(over.Cause).Inc()
	w.stopTicker()
	w.ended = true

	log.WithFields(log.Fields{
		"game":  w.gameID,
		"turn":  over.Turn,
		"cause": over.Cause,
		"score": over.Score,
	}).Info("ending game")
	if err := w.Store.EndGame(ctx, w.gameID, over); err != nil {
		log.WithError(err).WithField("game", w.gameID).Warn("failed to end game record")
	}

	if w.OnGameOver != nil {
		w.OnGameOver(over)
	}
	if !w.AutoRestart {
		return
	}
	if err := w.gs.Reset(); err != nil {
		log.WithError(err).WithField("game", w.gameID).Error("failed to restart game")
		return
	}
	w.record(ctx)
}

// abandon ends the record of a game that was replaced while still running,
// using the last frame played as its result.
func (w *Worker) abandon(ctx context.Context) {
	if w.ended || w.gameID == "" {
		return
	}
	over := &rules.GameOverError{
		Score:     w.last.Score,
		BaseScore: w.last.BaseScore,
		Turn:      w.last.Turn,
		Cause:     rules.DeathCauseAbandoned,
	}
	gameOvers.WithLabelValues(over.Cause).Inc()
	w.ended = true

	log.WithFields(log.Fields{
		"game":  w.gameID,
		"turn":  over.Turn,
		"score": over.Score,
	}).Info("abandoning game")
	if err := w.Store.EndGame(ctx, w.gameID, over); err != nil {
		log.WithError(err).WithField("game", w.gameID).Warn("failed to end game record")
	}
}
