package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/battlesnakeio/arcade/config"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/battlesnakeio/arcade/worker"
	termbox "github.com/nsf/termbox-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const speedStep = 10

var playConfig = config.Default()

func init() {
	playCmd.Flags().IntVar(&playConfig.Width, "width", playConfig.Width, "board width in cells")
	playCmd.Flags().IntVar(&playConfig.Height, "height", playConfig.Height, "board height in cells")
	playCmd.Flags().IntVar(&playConfig.Speed, "speed", playConfig.Speed, "game speed, 1 (slow) to 199 (fast)")
}

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "plays snake in the terminal",
	Args: func(c *cobra.Command, args []string) error {
		return playConfig.Validate()
	},
	Run: func(*cobra.Command, []string) {
		if err := play(); err != nil {
			log.WithError(err).Fatal("play failed")
		}
	},
}

var keyDirections = map[termbox.Key]rules.Direction{
	termbox.KeyArrowUp:    rules.DirectionUp,
	termbox.KeyArrowDown:  rules.DirectionDown,
	termbox.KeyArrowLeft:  rules.DirectionLeft,
	termbox.KeyArrowRight: rules.DirectionRight,
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

func play() error {
	w, err := worker.New(playConfig, nil, nil)
	if err != nil {
		return err
	}
	frames, unsubscribe := w.Subscribe()
	defer unsubscribe()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go w.Run(ctx)

	if err = termbox.Init(); err != nil {
		return err
	}
	defer termbox.Close()
	// Log lines would draw over the board.
	log.SetOutput(io.Discard)

	const help = "arrows: steer, +/-: speed, r: restart, esc: quit"
	eventQueue := setupEventQueue()
	current := rules.Snapshot{}

	for {
		select {
		case ev := <-eventQueue:
			if ev.Type != termbox.EventKey {
				continue
			}
			if d, ok := keyDirections[ev.Key]; ok {
				if _, err := w.Steer(ctx, d); err != nil {
					return err
				}
				continue
			}
			switch {
			case ev.Key == termbox.KeyEsc || ev.Ch == 'q':
				return nil
			case ev.Ch == 'r':
				err = w.Reset(ctx)
			case ev.Ch == '+' || ev.Ch == '=':
				err = w.SetSpeed(ctx, clampSpeed(rules.SpeedForInterval(current.Interval)+speedStep))
			case ev.Ch == '-':
				err = w.SetSpeed(ctx, clampSpeed(rules.SpeedForInterval(current.Interval)-speedStep))
			}
			if err != nil {
				return err
			}
		case frame, ok := <-frames:
			if !ok {
				return nil
			}
			current = frame
			status := help
			if frame.Over {
				status = fmt.Sprintf("final score %d, r to play again", frame.Score)
			}
			if err := render(&current, status); err != nil {
				return err
			}
		}
	}
}
