package commands

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/battlesnakeio/arcade/controller"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/gorilla/websocket"
	termbox "github.com/nsf/termbox-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func init() {
	replayCmd.Flags().StringVarP(&gameID, "game-id", "g", "", "the game id of the game to replay")
}

var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "replays a recorded game in the terminal",
	Args: func(c *cobra.Command, args []string) error {
		if len(gameID) == 0 {
			return errors.New("game id is required")
		}
		return nil
	},
	Run: func(*cobra.Command, []string) {
		if err := replayGame(); err != nil {
			log.WithError(err).WithField("game", gameID).Fatal("replay failed")
		}
	},
}

func loadGame() (*controller.Game, *replayBuffer, error) {
	client := &http.Client{
		Timeout: 5 * time.Second,
	}

	resp, err := client.Get(fmt.Sprintf("%s/games/%s", apiAddr, gameID))
	if err != nil {
		return nil, nil, errors.Wrap(err, "error while getting game")
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, nil, errors.Errorf("error while getting game: %s", resp.Status)
	}
	game := &controller.Game{}
	if err = json.NewDecoder(resp.Body).Decode(game); err != nil {
		return nil, nil, errors.Wrap(err, "error while decoding game")
	}

	frames := newReplayBuffer()

	u := url.URL{Scheme: "ws", Host: strings.TrimPrefix(apiAddr, "http://"), Path: fmt.Sprintf("/games/%s/socket", gameID)}
	log.WithField("url", u.String()).Debug("connecting")

	c, _, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		return nil, nil, errors.Wrap(err, "dial")
	}

	go func() {
		defer c.Close()
		defer frames.finish()

		for {
			mt, message, err := c.ReadMessage()
			if err != nil {
				if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
					log.WithError(err).Warn("read failed")
				}
				return
			}

			switch mt {
			case websocket.TextMessage:
				frame := &rules.Snapshot{}
				err = json.Unmarshal(message, frame)
				if err != nil {
					log.WithError(err).Warn("unmarshal frame")
					return
				}

				frames.add(frame)
			default:
				log.WithField("type", mt).Warn("unhandled message type")
			}
		}
	}()

	return game, frames, nil
}

func replayInterval(game *controller.Game) time.Duration {
	speed := game.Speed
	if speed < rules.MinSpeed || speed > rules.MaxSpeed {
		speed = rules.MinSpeed
	}
	return time.Duration(rules.IntervalForSpeed(speed)) * time.Millisecond
}

func replayGame() error {
	game, frames, err := loadGame()
	if err != nil {
		return err
	}
	currentFrame, err := frames.first(time.Second)
	if err != nil {
		return err
	}

	if err = termbox.Init(); err != nil {
		return err
	}
	defer termbox.Close()

	const help = "space: pause, left/right: step, esc: quit"
	eventQueue := setupEventQueue()
	interval := replayInterval(game)
	cycle := time.NewTicker(interval)
	defer cycle.Stop()
	paused := false
	done := false

	for !done {
		select {
		case ev := <-eventQueue:
			if ev.Type != termbox.EventKey {
				continue
			}
			switch ev.Key {
			case termbox.KeyEsc:
				return nil
			case termbox.KeySpace:
				paused = !paused
				if paused {
					cycle.Stop()
				} else {
					cycle.Reset(interval)
				}
			case termbox.KeyArrowLeft:
				paused = true
				currentFrame = frames.back()
				if err = render(currentFrame, help); err != nil {
					return err
				}
			case termbox.KeyArrowRight:
				paused = true
				currentFrame, done = frames.forward()
				if err = render(currentFrame, help); err != nil {
					return err
				}
			}
		case <-cycle.C:
			if paused {
				continue
			}
			if err = render(currentFrame, help); err != nil {
				return err
			}
			currentFrame, done = frames.forward()
		}
	}

	tbprint(0, 0, defaultColor, defaultColor, "Press any key to exit...")
	if err = termbox.Flush(); err != nil {
		return err
	}
	termbox.PollEvent()
	return nil
}

func setupEventQueue() <-chan termbox.Event {
	eventQueue := make(chan termbox.Event)
	go func(ev chan<- termbox.Event) {
		for {
			ev <- termbox.PollEvent()
		}
	}(eventQueue)
	return eventQueue
}
