package rules

import (
	"math/rand"
)

// placementAttempts is how many random draws are tried before falling back to
// enumerating every free cell.
const placementAttempts = 32

type occupied map[Cell]struct{}

func occupiedCells(snake []Cell, food *Cell, adversaries []Adversary) occupied {
	o := make(occupied, len(snake)+len(adversaries)+1)
	for _, b := range snake {
		o[b] = struct{}{}
	}
	if food != nil {
		o[*food] = struct{}{}
	}
	for _, a := range adversaries {
		o[a.Cell] = struct{}{}
	}
	return o
}

func (o occupied) has(c Cell) bool {
	_, ok := o[c]
	return ok
}

// getUnoccupiedCell returns a uniformly random cell that is not occupied. A
// handful of random draws are tried first since boards are usually sparse;
// when they all hit something every free cell is enumerated instead. Returns
// ErrBoardFull when no cell is free.
func getUnoccupiedCell(rng *rand.Rand, width, height int, o occupied) (Cell, error) {
	if len(o) < width*height {
		for i := 0; i < placementAttempts; i++ {
			c := Cell{X: rng.Intn(width), Y: rng.Intn(height)}
			if !o.has(c) {
				return c, nil
			}
		}
	}

	open := getUnoccupiedCells(width, height, o)
	if len(open) == 0 {
		return Cell{}, ErrBoardFull
	}
	return open[rng.Intn(len(open))], nil
}

func getUnoccupiedCells(width, height int, o occupied) []Cell {
	n := width*height - len(o)
	if n < 0 {
		n = 0
	}
	candidates := make([]Cell, 0, n)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			c := Cell{X: x, Y: y}
			if !o.has(c) {
				candidates = append(candidates, c)
			}
		}
	}
	return candidates
}
