package commands

import (
	"fmt"
	"os"

	"github.com/battlesnakeio/arcade/cmd/snake/commands/server"
	"github.com/battlesnakeio/arcade/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:     "snake",
	Short:   "snake runs and drives the snake arcade",
	Version: version.Version,
	Run: func(c *cobra.Command, args []string) {
		server.RootCmd.PreRun(c, args)
		server.RootCmd.Run(c, args)
	},
}

var (
	apiAddr        = "http://localhost:3005"
	controllerAddr = "127.0.0.1:3004"
)

// Execute runs the root command
func Execute() {
	rootCmd.PersistentFlags().StringVar(&apiAddr, "api-addr", apiAddr, "address of the api server")
	rootCmd.PersistentFlags().StringVarP(&controllerAddr, "controller-addr", "c", controllerAddr, "address of the controller")
	rootCmd.Flags().AddFlagSet(server.RootCmd.Flags())

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(steerCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(resizeCmd)
	rootCmd.AddCommand(speedCmd)
	rootCmd.AddCommand(server.RootCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
