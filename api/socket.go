package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/battlesnakeio/arcade/config"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

const (
	writeWait      = 5 * time.Second
	replayPageSize = 100
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func writeFrame(ws *websocket.Conn, frame *rules.Snapshot) error {
	data, err := json.Marshal(frame)
	if err != nil {
		return err
	}
	if err := ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return ws.WriteMessage(websocket.TextMessage, data)
}

// gameSocket streams every frame of the live game to the client, and reads
// direction changes back from it.
func (s *Server) gameSocket(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("unable to upgrade connection")
		return
	}
	defer ws.Close()

	frames, cancel := s.game.Subscribe()
	defer cancel()

	// Send the current frame right away, the next one may be a tick away.
	current, err := s.game.Snapshot(r.Context())
	if err != nil {
		log.WithError(err).Warn("unable to read game")
		return
	}
	if err := writeFrame(ws, &current); err != nil {
		return
	}

	closed := make(chan struct{})
	go s.readInput(ws, closed)

	for {
		select {
		case <-closed:
			return
		case frame, ok := <-frames:
			if !ok {
				return
			}
			if err := writeFrame(ws, &frame); err != nil {
				log.WithError(err).Debug("socket write failed")
				return
			}
		}
	}
}

// readInput applies direction messages from a socket until it is closed.
// Messages over the input rate are dropped.
func (s *Server) readInput(ws *websocket.Conn, closed chan<- struct{}) {
	defer close(closed)
	limiter := rate.NewLimiter(config.InputRate, config.InputBurst)
	for {
		req := directionRequest{}
		if err := ws.ReadJSON(&req); err != nil {
			if _, ok := err.(*json.SyntaxError); ok {
				continue
			}
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.WithError(err).Debug("socket read failed")
			}
			return
		}
		if !limiter.Allow() {
			log.Debug("socket input rate limited")
			continue
		}
		d, err := rules.ParseDirection(req.Direction)
		if err != nil {
			log.WithError(err).Debug("ignoring socket input")
			continue
		}
		if _, err := s.game.Steer(context.Background(), d); err != nil {
			log.WithError(err).Warn("unable to steer")
			return
		}
	}
}

// replaySocket sends every stored frame of a game and closes the socket.
func (s *Server) replaySocket(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")
	if _, err := s.store.GetGame(r.Context(), id); err != nil {
		writeError(w, r, statusCode(err), err)
		return
	}

	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("unable to upgrade connection")
		return
	}
	defer ws.Close()

	for offset := 0; ; offset += replayPageSize {
		frames, err := s.store.ListGameFrames(r.Context(), id, replayPageSize, offset)
		if err != nil {
			log.WithError(err).WithField("game", id).Warn("unable to list frames")
			return
		}
		for _, f := range frames {
			if err := writeFrame(ws, f); err != nil {
				log.WithError(err).Debug("socket write failed")
				return
			}
		}
		if len(frames) < replayPageSize {
			break
		}
	}

	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	if err := ws.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait)); err != nil {
		log.WithError(err).Debug("unable to close socket")
	}
}
