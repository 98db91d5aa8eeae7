package rules

import (
	"fmt"
	"math/rand"

	"github.com/pkg/errors"
)

// Cell is a single square on the board, 0-indexed from the top left corner.
type Cell struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Equal checks if 2 cells are the same x,y coordinate
func (c Cell) Equal(other Cell) bool {
	return c.X == other.X && c.Y == other.Y
}

// Move returns the neighbouring cell in the given direction.
func (c Cell) Move(d Direction) Cell {
	switch d {
	case DirectionUp:
		return Cell{X: c.X, Y: c.Y - 1}
	case DirectionDown:
		return Cell{X: c.X, Y: c.Y + 1}
	case DirectionLeft:
		return Cell{X: c.X - 1, Y: c.Y}
	case DirectionRight:
		return Cell{X: c.X + 1, Y: c.Y}
	}
	return c
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Direction is one of the four headings a snake or adversary can face.
type Direction string

const (
	// DirectionUp moves towards y = 0
	DirectionUp Direction = "up"
	// DirectionDown moves towards y = height-1
	DirectionDown Direction = "down"
	// DirectionLeft moves towards x = 0
	DirectionLeft Direction = "left"
	// DirectionRight moves towards x = width-1
	DirectionRight Direction = "right"
)

// Directions lists every valid direction, in a stable order.
var Directions = []Direction{DirectionUp, DirectionDown, DirectionLeft, DirectionRight}

// ErrInvalidDirection is returned when a direction name can't be parsed.
var ErrInvalidDirection = errors.New("rules: invalid direction")

// ParseDirection converts user input such as "up" into a Direction.
func ParseDirection(s string) (Direction, error) {
	d := Direction(s)
	if !d.Valid() {
		return "", errors.Wrapf(ErrInvalidDirection, "%q", s)
	}
	return d, nil
}

// Valid reports whether d is one of the four known directions.
func (d Direction) Valid() bool {
	switch d {
	case DirectionUp, DirectionDown, DirectionLeft, DirectionRight:
		return true
	}
	return false
}

// Opposite returns the 180 degree reversal of d.
func (d Direction) Opposite() Direction {
	switch d {
	case DirectionUp:
		return DirectionDown
	case DirectionDown:
		return DirectionUp
	case DirectionLeft:
		return DirectionRight
	case DirectionRight:
		return DirectionLeft
	}
	return d
}

func randomDirection(rng *rand.Rand) Direction {
	return Directions[rng.Intn(len(Directions))]
}

// Adversary is a hostile roaming entity. It walks in a straight line and picks
// a new random direction whenever its path is blocked.
type Adversary struct {
	Cell
	Direction Direction `json:"direction"`
}
