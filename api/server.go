// Package api serves the live game and the game records over http and
// websockets.
package api

import (
	"context"
	"net"
	"net/http"

	"github.com/battlesnakeio/arcade/config"
	"github.com/battlesnakeio/arcade/controller"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/julienschmidt/httprouter"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
	"golang.org/x/net/netutil"
	"golang.org/x/time/rate"
)

// Game is the live game served by the api.
type Game interface {
	controller.Session
	Subscribe() (<-chan rules.Snapshot, func())
}

// Server is the http api.
type Server struct {
	hs *http.Server

	game  Game
	store controller.Store
	input *rate.Limiter
}

// New builds an api server for the live game and the store its games are
// recorded in.
func New(addr string, game Game, store controller.Store) *Server {
	s := &Server{
		game:  game,
		store: store,
		input: rate.NewLimiter(config.InputRate, config.InputBurst),
	}

	router := httprouter.New()
	router.GET("/game", s.getGame)
	router.POST("/game/direction", s.postDirection)
	router.POST("/game/resize", s.postResize)
	router.POST("/game/speed", s.postSpeed)
	router.POST("/game/reset", s.postReset)
	router.GET("/game/socket", s.gameSocket)
	router.GET("/games/:id", s.getRecord)
	router.GET("/games/:id/frames", s.getFrames)
	router.GET("/games/:id/socket", s.replaySocket)

	s.hs = &http.Server{
		Addr:    addr,
		Handler: cors.Default().Handler(router),
	}
	return s
}

// WaitForExit serves until the server is shut down. Open connections are
// capped at config.MaxConns.
func (s *Server) WaitForExit() error {
	l, err := net.Listen("tcp", s.hs.Addr)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"listen":   s.hs.Addr,
		"maxConns": config.MaxConns,
	}).Info("api listening")
	return s.hs.Serve(netutil.LimitListener(l, config.MaxConns))
}

// Shutdown stops accepting connections and waits for open requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.hs.Shutdown(ctx)
}
