// Command snake-desktop plays snake in a desktop window.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/battlesnakeio/arcade/config"
	"github.com/battlesnakeio/arcade/version"
	"github.com/battlesnakeio/arcade/worker"
	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var cfg = config.Default()

var rootCmd = &cobra.Command{
	Use:     "snake-desktop",
	Short:   "plays snake in a desktop window",
	Version: version.Version,
	Args: func(c *cobra.Command, args []string) error {
		return cfg.Validate()
	},
	Run: func(c *cobra.Command, args []string) {
		if err := run(); err != nil {
			log.WithError(err).Fatal("snake-desktop failed")
		}
	},
}

func init() {
	rootCmd.Flags().IntVar(&cfg.Width, "width", cfg.Width, "board width in cells")
	rootCmd.Flags().IntVar(&cfg.Height, "height", cfg.Height, "board height in cells")
	rootCmd.Flags().IntVar(&cfg.Speed, "speed", cfg.Speed, "game speed, 1 (slow) to 199 (fast)")
}

func run() error {
	w, err := worker.New(cfg, nil, nil)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		if err := w.Run(ctx); err != nil && err != context.Canceled {
			log.WithError(err).Error("game stopped")
		}
	}()

	g := newGame(ctx, w)
	defer g.close()

	ebiten.SetWindowTitle("Snake")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(windowSize(cfg.Width, cfg.Height))
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		return err
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
