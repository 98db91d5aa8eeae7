package rules

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidConfiguration is returned when a board size or speed is
	// rejected. State is never mutated when this error is returned.
	ErrInvalidConfiguration = errors.New("rules: invalid configuration")
	// ErrBoardFull is returned when there is no free cell left to place food.
	ErrBoardFull = errors.New("rules: board is full")
)

// GameOverError is the terminal transition of a game. It is not a fault, it
// carries the result of the game back to the caller of Tick.
type GameOverError struct {
	Score     int
	BaseScore int
	Turn      int
	Cause     string
	Err       error
}

func (e *GameOverError) Error() string {
	return fmt.Sprintf("rules: game over on turn %d (%s), score %d", e.Turn, e.Cause, e.Score)
}

// Unwrap exposes ErrBoardFull when the game ended because the board filled up.
func (e *GameOverError) Unwrap() error { return e.Err }

// IsGameOver reports whether err is, or wraps, a GameOverError.
func IsGameOver(err error) bool {
	var over *GameOverError
	return errors.As(err, &over)
}
