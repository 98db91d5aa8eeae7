// Package server runs the live game with its api and controller.
package server

import (
	"context"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/battlesnakeio/arcade/api"
	"github.com/battlesnakeio/arcade/config"
	"github.com/battlesnakeio/arcade/controller"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/battlesnakeio/arcade/worker"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

var (
	apiListen   = ":3005"
	promEnable  = true
	promListen  = ":9000"
	autoRestart = false
	debug       = false
	game        = config.Default()
)

// RootCmd provides the root run command.
var RootCmd = &cobra.Command{
	Use:    "server",
	Short:  "serve the snake arcade",
	PreRun: func(c *cobra.Command, args []string) { prometheus() },
	Run: func(c *cobra.Command, args []string) {
		if debug {
			log.SetLevel(log.DebugLevel)
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := serve(ctx); err != nil {
			log.WithError(err).Fatal("server failed")
		}
	},
}

func init() {
	RootCmd.Flags().StringVar(&apiListen, "api-listen", apiListen, "api address to listen on")
	RootCmd.Flags().IntVar(&game.Width, "width", game.Width, "board width in cells")
	RootCmd.Flags().IntVar(&game.Height, "height", game.Height, "board height in cells")
	RootCmd.Flags().IntVar(&game.Speed, "speed", game.Speed, "game speed, 1 (slow) to 199 (fast)")
	RootCmd.Flags().BoolVar(&autoRestart, "auto-restart", autoRestart, "start a new game as soon as one ends")
	RootCmd.Flags().BoolVar(&debug, "debug", debug, "log every tick")
	RootCmd.Flags().BoolVar(&promEnable, "prometheus", promEnable, "enable prometheus metrics")
	RootCmd.Flags().StringVar(&promListen, "prometheus-listen", promListen, "prometheus http endpoint")
}

func serve(ctx context.Context) error {
	store, err := openStore(controllerBackend, controllerBackendArgs)
	if err != nil {
		return errors.Wrap(err, "unable to start up backend store")
	}
	if c, ok := store.(io.Closer); ok {
		defer func() {
			if err := c.Close(); err != nil {
				log.WithError(err).Error("unable to close store")
			}
		}()
	}
	store = controller.InstrumentStore(store)

	w, err := worker.New(game, store, nil)
	if err != nil {
		return err
	}
	w.AutoRestart = autoRestart
	w.OnGameOver = func(over *rules.GameOverError) {
		log.WithFields(log.Fields{
			"turn":      over.Turn,
			"cause":     over.Cause,
			"score":     over.Score,
			"baseScore": over.BaseScore,
		}).Info("game over")
	}

	ctrl := controller.New(w, store)
	srv := api.New(apiListen, w, store)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return w.Run(ctx)
	})
	g.Go(func() error {
		log.WithField("listen", controllerListen).Info("snake controller serving")
		return errors.Wrap(ctrl.Serve(controllerListen), "controller failed to serve")
	})
	g.Go(func() error {
		err := srv.WaitForExit()
		if err == http.ErrServerClosed {
			return nil
		}
		return errors.Wrap(err, "api server failed")
	})
	g.Go(func() error {
		<-ctx.Done()
		ctrl.Stop()
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})

	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		log.Info("snake server stopped")
		return nil
	}
	return err
}

func prometheus() {
	if !promEnable {
		log.Info("prometheus exporter not enabled")
		return
	}

	log.WithField("addr", promListen).Info("starting prometheus exporter")
	go func() {
		r := http.NewServeMux()
		r.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(promListen, r); err != nil {
			log.WithError(err).Warn("prometheus failed to listen")
		}
	}()
}
