package main

import (
	"context"
	"fmt"
	"image/color"

	"github.com/atotto/clipboard"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	log "github.com/sirupsen/logrus"
)

const (
	cellSize     = 20
	headerHeight = 36
	speedStep    = 10
)

var (
	colorBackground = color.RGBA{0x1e, 0x1e, 0x1e, 0xff}
	colorBoard      = color.RGBA{0x2b, 0x2b, 0x2b, 0xff}
	colorSnake      = color.RGBA{0x4c, 0xaf, 0x50, 0xff}
	colorHead       = color.RGBA{0x8b, 0xc3, 0x4a, 0xff}
	colorFood       = color.RGBA{0xff, 0xc1, 0x07, 0xff}
	colorAdversary  = color.RGBA{0xf4, 0x43, 0x36, 0xff}
)

var keyDirections = []struct {
	keys []ebiten.Key
	dir  rules.Direction
}{
	{[]ebiten.Key{ebiten.KeyUp, ebiten.KeyW}, rules.DirectionUp},
	{[]ebiten.Key{ebiten.KeyDown, ebiten.KeyS}, rules.DirectionDown},
	{[]ebiten.Key{ebiten.KeyLeft, ebiten.KeyA}, rules.DirectionLeft},
	{[]ebiten.Key{ebiten.KeyRight, ebiten.KeyD}, rules.DirectionRight},
}

// session is the part of the worker the window drives.
type session interface {
	Snapshot(ctx context.Context) (rules.Snapshot, error)
	Steer(ctx context.Context, d rules.Direction) (bool, error)
	SetSpeed(ctx context.Context, speed int) error
	Reset(ctx context.Context) error
	Subscribe() (<-chan rules.Snapshot, func())
}

// game implements ebiten.Game on top of a running worker. Rendering only
// ever reads the latest published frame.
type game struct {
	ctx         context.Context
	s           session
	frames      <-chan rules.Snapshot
	unsubscribe func()
	frame       rules.Snapshot
	notice      string
}

func newGame(ctx context.Context, s session) *game {
	frames, unsubscribe := s.Subscribe()
	g := &game{ctx: ctx, s: s, frames: frames, unsubscribe: unsubscribe}
	if frame, err := s.Snapshot(ctx); err == nil {
		g.frame = frame
	}
	return g
}

func (g *game) close() { g.unsubscribe() }

// drain keeps the newest pending frame.
func (g *game) drain() {
	for {
		select {
		case frame, ok := <-g.frames:
			if !ok {
				return
			}
			if frame.ID != g.frame.ID {
				g.notice = ""
			}
			g.frame = frame
		default:
			return
		}
	}
}

func windowSize(width, height int) (int, int) {
	return width * cellSize, height*cellSize + headerHeight
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func clampSpeed(speed int) int {
	if speed < rules.MinSpeed {
		return rules.MinSpeed
	}
	if speed > rules.MaxSpeed {
		return rules.MaxSpeed
	}
	return speed
}

func (g *game) changeSpeed(delta int) error {
	speed := clampSpeed(rules.SpeedForInterval(g.frame.Interval) + delta)
	return g.s.SetSpeed(g.ctx, speed)
}

func (g *game) copyID() {
	if err := clipboard.WriteAll(g.frame.ID); err != nil {
		log.WithError(err).Warn("unable to copy game id")
		g.notice = "clipboard unavailable"
		return
	}
	g.notice = "game id copied"
}

// Update handles input. Game time is kept by the worker, not by the frame
// rate of the window.
func (g *game) Update() error {
	g.drain()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, kd := range keyDirections {
		if anyJustPressed(kd.keys) {
			if _, err := g.s.Steer(g.ctx, kd.dir); err != nil {
				return err
			}
		}
	}

	var err error
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyR), g.frame.Over && inpututil.IsKeyJustPressed(ebiten.KeySpace):
		err = g.s.Reset(g.ctx)
	case anyJustPressed([]ebiten.Key{ebiten.KeyEqual, ebiten.KeyNumpadAdd}):
		err = g.changeSpeed(speedStep)
	case anyJustPressed([]ebiten.Key{ebiten.KeyMinus, ebiten.KeyNumpadSubtract}):
		err = g.changeSpeed(-speedStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.copyID()
	}
	return err
}

func (g *game) fillCell(screen *ebiten.Image, c rules.Cell, clr color.Color, inset float32) {
	x := float32(c.X*cellSize) + inset
	y := float32(headerHeight+c.Y*cellSize) + inset
	size := float32(cellSize) - inset*2
	vector.DrawFilledRect(screen, x, y, size, size, clr, false)
}

// Draw renders the latest frame.
func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	f := g.frame

	w, h := float32(f.Width*cellSize), float32(f.Height*cellSize)
	vector.DrawFilledRect(screen, 0, headerHeight, w, h, colorBoard, false)

	if f.Food != nil {
		g.fillCell(screen, *f.Food, colorFood, cellSize/4)
	}
	for _, a := range f.Adversaries {
		g.fillCell(screen, a.Cell, colorAdversary, 1)
	}
	for i, c := range f.Snake {
		clr := colorSnake
		if i == 0 {
			clr = colorHead
		}
		g.fillCell(screen, c, clr, 1)
	}

	ebitenutil.DebugPrintAt(screen, header(f, g.notice), 4, 2)
}

func header(f rules.Snapshot, notice string) string {
	line := fmt.Sprintf("Score %d  Eaten %d  Speed %d", f.Score, f.BaseScore, rules.SpeedForInterval(f.Interval))
	switch {
	case notice != "":
		line += "\n" + notice
	case f.Over:
		line += fmt.Sprintf("\nGame over (%s), space to restart", f.Cause)
	default:
		line += "\narrows steer, +/- speed, c copies the game id"
	}
	return line
}

// Layout keeps one logical pixel per board pixel and lets ebiten scale.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.frame.Width == 0 || g.frame.Height == 0 {
		return outsideWidth, outsideHeight
	}
	return windowSize(g.frame.Width, g.frame.Height)
}
