package controller

import (
	"time"

	"github.com/battlesnakeio/arcade/controller/pb"
	"github.com/battlesnakeio/arcade/rules"
)

const (
	// GameStatusRunning represents a game that is being played
	GameStatusRunning = "running"
	// GameStatusComplete represents a game that is done
	GameStatusComplete = "complete"
)

// Game is the stored record of a single game. The frames of the game are
// stored separately and listed with Store.ListGameFrames.
type Game struct {
	ID        string    `json:"id"`
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	Speed     int       `json:"speed"`
	Status    string    `json:"status"`
	Turn      int       `json:"turn"`
	Score     int       `json:"score"`
	BaseScore int       `json:"baseScore"`
	Cause     string    `json:"cause,omitempty"`
	Created   time.Time `json:"created"`
}

// NewGame builds a running game record from the first frame of a game.
func NewGame(frame *rules.Snapshot, speed int) *Game {
	return &Game{
		ID:      frame.ID,
		Width:   frame.Width,
		Height:  frame.Height,
		Speed:   speed,
		Status:  GameStatusRunning,
		Created: time.Now().UTC(),
	}
}

// Complete marks the game as done with the result reported by the rules.
func (g *Game) Complete(over *rules.GameOverError) {
	g.Status = GameStatusComplete
	g.Turn = over.Turn
	g.Score = over.Score
	g.BaseScore = over.BaseScore
	g.Cause = over.Cause
}

// Proto converts the record into its wire form.
func (g *Game) Proto() *pb.Game {
	p := &pb.Game{
		ID:        g.ID,
		Width:     int32(g.Width),
		Height:    int32(g.Height),
		Speed:     int32(g.Speed),
		Status:    g.Status,
		Turn:      int32(g.Turn),
		Score:     int32(g.Score),
		BaseScore: int32(g.BaseScore),
		Cause:     g.Cause,
	}
	if !g.Created.IsZero() {
		p.Created = g.Created.UnixNano()
	}
	return p
}

// GameFromProto converts a wire record back into a Game.
func GameFromProto(p *pb.Game) *Game {
	g := &Game{
		ID:        p.ID,
		Width:     int(p.Width),
		Height:    int(p.Height),
		Speed:     int(p.Speed),
		Status:    p.Status,
		Turn:      int(p.Turn),
		Score:     int(p.Score),
		BaseScore: int(p.BaseScore),
		Cause:     p.Cause,
	}
	if p.Created != 0 {
		g.Created = time.Unix(0, p.Created).UTC()
	}
	return g
}
