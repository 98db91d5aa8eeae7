// Package rules holds the snake game state machine. It knows nothing about
// timers, rendering or input devices: callers drive it through Tick and
// SetDirection and read it back through Snapshot.
package rules

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

// StartCell is where a new snake is placed, clamped into smaller boards.
var StartCell = Cell{X: 10, Y: 10}

// AdversarySpawnInterval is the amount of elapsed tick time, in milliseconds,
// between two adversary spawns.
const AdversarySpawnInterval = 10000

// ValidateConfig checks a board size and speed setting.
func ValidateConfig(width, height, speed int) error {
	if width <= 0 || height <= 0 {
		return errors.Wrapf(ErrInvalidConfiguration, "board must be at least 1x1, got %dx%d", width, height)
	}
	if speed < MinSpeed || speed > MaxSpeed {
		return errors.Wrapf(ErrInvalidConfiguration, "speed must be between %d and %d, got %d", MinSpeed, MaxSpeed, speed)
	}
	return nil
}

// GameState is a single game of snake. It is not safe for concurrent use, the
// owner is expected to serialise Tick and SetDirection calls.
type GameState struct {
	id     string
	width  int
	height int
	speed  int
	rng    *rand.Rand

	turn        int
	snake       []Cell
	food        *Cell
	adversaries []Adversary
	heading     Direction
	pending     Direction
	baseScore   int
	weighted    int
	elapsed     int
	over        *GameOverError
}

// NewGameState validates the configuration and returns a freshly reset game.
// A nil rng uses a time seeded source.
func NewGameState(width, height, speed int, rng *rand.Rand) (*GameState, error) {
	if err := ValidateConfig(width, height, speed); err != nil {
		return nil, err
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	gs := &GameState{rng: rng, speed: speed}
	if err := gs.reset(width, height); err != nil {
		return nil, err
	}
	return gs, nil
}

// Reset discards the current game and starts a new one with the current
// configuration.
func (gs *GameState) Reset() error {
	return gs.reset(gs.width, gs.height)
}

// Resize reconfigures the board and starts a new game, since an in-progress
// snake may not fit the new board.
func (gs *GameState) Resize(width, height int) error {
	if err := ValidateConfig(width, height, gs.speed); err != nil {
		return err
	}
	return gs.reset(width, height)
}

// SetSpeed changes the tick interval used from the next tick on. The game is
// not reset and food already eaten keeps the multiplier it was eaten at.
func (gs *GameState) SetSpeed(speed int) error {
	if err := ValidateConfig(gs.width, gs.height, speed); err != nil {
		return err
	}
	gs.speed = speed
	return nil
}

// SetDirection queues a direction change for the next tick. A direction that
// would reverse the snake onto itself is ignored. Returns whether the change
// was accepted.
func (gs *GameState) SetDirection(d Direction) bool {
	if !d.Valid() || d == gs.heading.Opposite() {
		return false
	}
	gs.pending = d
	return true
}

// reset builds the new game before touching gs, so a failed reset leaves the
// previous game intact.
func (gs *GameState) reset(width, height int) error {
	start := Cell{X: StartCell.X, Y: StartCell.Y}
	if start.X >= width {
		start.X = width - 1
	}
	if start.Y >= height {
		start.Y = height - 1
	}
	snake := []Cell{start}

	food, err := getUnoccupiedCell(gs.rng, width, height, occupiedCells(snake, nil, nil))
	if err != nil {
		return errors.Wrapf(err, "unable to place food on a %dx%d board", width, height)
	}

	gs.id = uuid.NewV4().String()
	gs.width = width
	gs.height = height
	gs.turn = 0
	gs.snake = snake
	gs.food = &food
	gs.adversaries = nil
	gs.heading = DirectionRight
	gs.pending = DirectionRight
	gs.baseScore = 0
	gs.weighted = 0
	gs.elapsed = 0
	gs.over = nil

	log.WithFields(log.Fields{
		"GameID": gs.id,
		"Width":  width,
		"Height": height,
		"Speed":  gs.speed,
	}).Debug("game reset")
	return nil
}

// ID is the unique id of the current game, regenerated on every reset.
func (gs *GameState) ID() string { return gs.id }

// Width of the board in cells.
func (gs *GameState) Width() int { return gs.width }

// Height of the board in cells.
func (gs *GameState) Height() int { return gs.height }

// Speed is the current speed setting.
func (gs *GameState) Speed() int { return gs.speed }

// Interval is the time between two ticks at the current speed.
func (gs *GameState) Interval() time.Duration {
	return time.Duration(IntervalForSpeed(gs.speed)) * time.Millisecond
}

// Turn is the number of ticks played in the current game.
func (gs *GameState) Turn() int { return gs.turn }

// Direction is the direction the snake will move on the next tick.
func (gs *GameState) Direction() Direction { return gs.pending }

// BaseScore is the number of food items eaten.
func (gs *GameState) BaseScore() int { return gs.baseScore }

// Score is the displayed score: every food item counts for the speed
// multiplier in effect when it was eaten.
func (gs *GameState) Score() int { return roundHundredths(gs.weighted) }

// Over returns the GameOverError once the game has ended, nil otherwise.
func (gs *GameState) Over() *GameOverError { return gs.over }

// Snake returns a copy of the snake body, head first.
func (gs *GameState) Snake() []Cell {
	return append([]Cell(nil), gs.snake...)
}

// Food returns the current food cell. ok is false when the board is full.
func (gs *GameState) Food() (c Cell, ok bool) {
	if gs.food == nil {
		return Cell{}, false
	}
	return *gs.food, true
}

// Adversaries returns a copy of the adversary list.
func (gs *GameState) Adversaries() []Adversary {
	return append([]Adversary(nil), gs.adversaries...)
}

// Snapshot is a read only copy of a game, handed to renderers and persisted
// as a frame.
type Snapshot struct {
	ID          string      `json:"id"`
	Turn        int         `json:"turn"`
	Width       int         `json:"width"`
	Height      int         `json:"height"`
	Snake       []Cell      `json:"snake"`
	Food        *Cell       `json:"food,omitempty"`
	Adversaries []Adversary `json:"adversaries"`
	Direction   Direction   `json:"direction"`
	Interval    int         `json:"interval"`
	BaseScore   int         `json:"baseScore"`
	Score       int         `json:"score"`
	Over        bool        `json:"over"`
	Cause       string      `json:"cause,omitempty"`
}

// Snapshot copies the current state.
func (gs *GameState) Snapshot() Snapshot {
	s := Snapshot{
		ID:          gs.id,
		Turn:        gs.turn,
		Width:       gs.width,
		Height:      gs.height,
		Snake:       gs.Snake(),
		Adversaries: gs.Adversaries(),
		Direction:   gs.pending,
		Interval:    IntervalForSpeed(gs.speed),
		BaseScore:   gs.baseScore,
		Score:       gs.Score(),
	}
	if s.Adversaries == nil {
		s.Adversaries = []Adversary{}
	}
	if f, ok := gs.Food(); ok {
		s.Food = &f
	}
	if gs.over != nil {
		s.Over = true
		s.Cause = gs.over.Cause
	}
	return s
}

// Head returns the first cell of the snake in a snapshot.
func (s *Snapshot) Head() (Cell, bool) {
	if len(s.Snake) == 0 {
		return Cell{}, false
	}
	return s.Snake[0], true
}
