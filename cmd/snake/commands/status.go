package commands

import (
	"context"
	"time"

	"github.com/battlesnakeio/arcade/controller"
	"github.com/battlesnakeio/arcade/controller/pb"
	"github.com/davecgh/go-spew/spew"
	grpcmiddleware "github.com/grpc-ecosystem/go-grpc-middleware"
	promgrpc "github.com/grpc-ecosystem/go-grpc-prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
)

const callTimeout = 5 * time.Second

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "dumps the live game, or a recorded game with --game-id",
	Run: func(*cobra.Command, []string) {
		withController(func(ctx context.Context, client controller.ControllerClient) error {
			if gameID != "" {
				resp, err := client.GetGame(ctx, &pb.GetGameRequest{ID: gameID})
				if err != nil {
					return err
				}
				spew.Dump(controller.GameFromProto(resp.Game))
				return nil
			}
			resp, err := client.Snapshot(ctx, &pb.SnapshotRequest{})
			if err != nil {
				return err
			}
			spew.Dump(resp.Frame.Snapshot())
			return nil
		})
	},
}

var (
	gameID string
)

func init() {
	statusCmd.Flags().StringVarP(&gameID, "game-id", "g", "", "the game id of a recorded game")
}

// withController dials the controller and runs fn with a bounded context.
func withController(fn func(context.Context, controller.ControllerClient) error) {
	client, err := controller.Dial(controllerAddr, grpc.WithUnaryInterceptor(
		grpcmiddleware.ChainUnaryClient(promgrpc.UnaryClientInterceptor),
	))
	if err != nil {
		log.WithError(err).
			WithField("address", controllerAddr).
			Fatal("failed to dial controller")
	}
	defer client.Close()

	ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
	defer cancel()
	if err := fn(ctx, client); err != nil {
		log.WithError(err).
			WithField("address", controllerAddr).
			Fatal("controller call failed")
	}
}
