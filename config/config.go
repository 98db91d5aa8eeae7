package config

import (
	"os"
	"strconv"

	"github.com/battlesnakeio/arcade/rules"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

// Game defaults. Flags on the CLI take precedence over these.
var (
	Width  = getEnvInt("SNAKE_WIDTH", 20)
	Height = getEnvInt("SNAKE_HEIGHT", 20)
	Speed  = getEnvInt("SNAKE_SPEED", 100)
)

// Configuration variables. These aren't user facing but useful for tuning the
// details of engine performance.
var (
	MaxOpenConns = getEnvCount("MAX_OPEN_CONNS", 20)
	MaxIdleConns = getEnvCount("MAX_IDLE_CONNS", 20)
	MaxConns     = getEnvCount("MAX_CONNS", 64)
	InputRate    = rate.Limit(getEnvCount("INPUT_RPS", 30))
	InputBurst   = getEnvCount("INPUT_BURST", 5)
	FrameBuffer  = getEnvCount("FRAME_BUFFER", 16)
)

// Game is the user facing configuration surface of a game.
type Game struct {
	Width  int `json:"width"`
	Height int `json:"height"`
	Speed  int `json:"speed"`
}

// Default returns the configuration read from the environment.
func Default() Game {
	return Game{Width: Width, Height: Height, Speed: Speed}
}

// Validate rejects a configuration before any game state is touched.
func (g Game) Validate() error {
	return errors.Wrap(rules.ValidateConfig(g.Width, g.Height, g.Speed), "config")
}

func getEnvInt(varName string, defaults int) int {
	val := os.Getenv(varName)
	if val == "" {
		return defaults
	}
	intVal, err := strconv.ParseInt(val, 10, 32)
	if err != nil {
		return defaults
	}
	return int(intVal)
}

// getEnvCount reads a size or a limit. Negative values fall back to the
// default.
func getEnvCount(varName string, defaults int) int {
	if n := getEnvInt(varName, defaults); n >= 0 {
		return n
	}
	return defaults
}
