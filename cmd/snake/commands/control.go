package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/battlesnakeio/arcade/controller"
	"github.com/battlesnakeio/arcade/controller/pb"
	"github.com/battlesnakeio/arcade/rules"
	"github.com/spf13/cobra"
)

var steerCmd = &cobra.Command{
	Use:       "steer [up|down|left|right]",
	Short:     "steers the snake of the live game",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"up", "down", "left", "right"},
	Run: func(c *cobra.Command, args []string) {
		withController(func(ctx context.Context, client controller.ControllerClient) error {
			resp, err := client.Steer(ctx, &pb.SteerRequest{Direction: args[0]})
			if err != nil {
				return err
			}
			if resp.Accepted {
				fmt.Println("ok")
			} else {
				fmt.Println("ignored, the snake can't reverse")
			}
			return nil
		})
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "starts a new live game",
	Run: func(c *cobra.Command, args []string) {
		withController(func(ctx context.Context, client controller.ControllerClient) error {
			_, err := client.Reset(ctx, &pb.ResetRequest{})
			return err
		})
	},
}

var (
	resizeWidth  int
	resizeHeight int
)

func init() {
	resizeCmd.Flags().IntVar(&resizeWidth, "width", 20, "board width in cells")
	resizeCmd.Flags().IntVar(&resizeHeight, "height", 20, "board height in cells")
}

var resizeCmd = &cobra.Command{
	Use:   "resize",
	Short: "resizes the board and starts a new live game",
	Run: func(c *cobra.Command, args []string) {
		withController(func(ctx context.Context, client controller.ControllerClient) error {
			_, err := client.Resize(ctx, &pb.ResizeRequest{Width: int32(resizeWidth), Height: int32(resizeHeight)})
			return err
		})
	},
}

var speedCmd = &cobra.Command{
	Use:   "speed [1-199]",
	Short: "changes the speed of the live game",
	Args: func(c *cobra.Command, args []string) error {
		if err := cobra.ExactArgs(1)(c, args); err != nil {
			return err
		}
		_, err := parseSpeed(args[0])
		return err
	},
	Run: func(c *cobra.Command, args []string) {
		speed, _ := parseSpeed(args[0])
		withController(func(ctx context.Context, client controller.ControllerClient) error {
			_, err := client.SetSpeed(ctx, &pb.SetSpeedRequest{Speed: int32(speed)})
			return err
		})
	},
}

func parseSpeed(s string) (int, error) {
	speed, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("speed must be a number, got %q", s)
	}
	if speed < rules.MinSpeed || speed > rules.MaxSpeed {
		return 0, fmt.Errorf("speed must be between %d and %d", rules.MinSpeed, rules.MaxSpeed)
	}
	return speed, nil
}
