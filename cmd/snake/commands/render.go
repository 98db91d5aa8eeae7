package commands

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/battlesnakeio/arcade/rules"
	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"
)

const (
	defaultColor   = termbox.ColorDefault
	bgColor        = termbox.ColorDefault
	snakeColor     = termbox.ColorGreen
	headColor      = termbox.ColorYellow
	adversaryColor = termbox.ColorRed
)

func render(frame *rules.Snapshot, status string) error {
	if frame == nil {
		return errors.New("received nil frame")
	}
	err := termbox.Clear(defaultColor, defaultColor)
	if err != nil {
		return err
	}

	var (
		left   = 10
		top    = 2
		bottom = top + frame.Height + 1
	)

	renderTitle(left, top, frame)
	renderBoard(frame, top, bottom, left)
	renderFood(left, top, frame.Food)
	for _, a := range frame.Adversaries {
		termbox.SetCell(left+a.X, top+a.Y+1, ' ', adversaryColor, adversaryColor)
	}
	renderSnake(left, top, frame.Snake)

	if frame.Over {
		status = fmt.Sprintf("Game over (%s). %s", frame.Cause, status)
	}
	tbprint(left, bottom+1, defaultColor, defaultColor, status)

	return termbox.Flush()
}

func renderSnake(left, top int, body []rules.Cell) {
	for i, b := range body {
		color := snakeColor
		if i == 0 {
			color = headColor
		}
		termbox.SetCell(left+b.X, top+b.Y+1, ' ', color, color)
	}
}

func renderFood(left, top int, food *rules.Cell) {
	if food == nil {
		return
	}
	termbox.SetCell(left+food.X, top+food.Y+1, getFoodEmoji(*food), defaultColor, bgColor)
}

var foods = map[rules.Cell]rune{}

func getFoodEmoji(c rules.Cell) rune {
	r, ok := foods[c]
	if !ok {
		r = randomFoodEmoji()
		foods[c] = r
	}
	return r
}

func randomFoodEmoji() rune {
	f := []rune{
		'🍒',
		'🍍',
		'🍑',
		'🍇',
		'🍏',
		'🍌',
		'🍫',
		'🍭',
		'🍕',
		'🍩',
		'🍗',
		'🍖',
		'🍬',
		'🍤',
		'🍪',
	}

	return f[rand.Intn(len(f))]
}

func renderBoard(frame *rules.Snapshot, top, bottom, left int) {
	for i := top + 1; i < bottom; i++ {
		termbox.SetCell(left-1, i, '│', defaultColor, bgColor)
		termbox.SetCell(left+frame.Width, i, '│', defaultColor, bgColor)
	}

	termbox.SetCell(left-1, top, '┌', defaultColor, bgColor)
	termbox.SetCell(left-1, bottom, '└', defaultColor, bgColor)
	termbox.SetCell(left+frame.Width, top, '┐', defaultColor, bgColor)
	termbox.SetCell(left+frame.Width, bottom, '┘', defaultColor, bgColor)

	fill(left, top, frame.Width, 1, termbox.Cell{Ch: '─'})
	fill(left, bottom, frame.Width, 1, termbox.Cell{Ch: '─'})
}

func renderTitle(left, top int, frame *rules.Snapshot) {
	speed := rules.SpeedForInterval(frame.Interval)
	title := fmt.Sprintf("Snake! - Turn %d - Score %d (%d eaten) - Speed %d", frame.Turn, frame.Score, frame.BaseScore, speed)
	tbprint(left, top-1, defaultColor, defaultColor, title)
}

func fill(x, y, w, h int, cell termbox.Cell) {
	for ly := 0; ly < h; ly++ {
		for lx := 0; lx < w; lx++ {
			termbox.SetCell(x+lx, y+ly, cell.Ch, cell.Fg, cell.Bg)
		}
	}
}

func tbprint(x, y int, fg, bg termbox.Attribute, msg string) {
	for _, c := range msg {
		termbox.SetCell(x, y, c, fg, bg)
		x += runewidth.RuneWidth(c)
	}
}
