package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/beetlebot/flyguide/cmd/flyguide/commands"
	"github.com/spf13/cobra"
)

const version = "v0.1.0"

func main() {
	root := &cobra.Command{
		Use:           "flyguide",
		Short:         "Nonstop fare finder and travel guide for trips out of Taiwan",
		Long:          "Compiles flight and point-of-interest searches into grounded Gemini queries and prints the typed results as JSON.",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	root.PersistentFlags().String("mode", "", "Provider mode: mock, live, hybrid (default from config/env)")
	root.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (default from config/env)")
	root.PersistentFlags().Bool("compact", false, "Print single-line JSON")

	root.AddCommand(commands.FlightsCmd())
	root.AddCommand(commands.GuideCmd())
	root.AddCommand(commands.HistoryCmd())
	root.AddCommand(commands.LinksCmd())
	root.AddCommand(commands.ProvidersCmd())
	root.AddCommand(commands.DoctorCmd())
	root.AddCommand(commands.ServeCmd())
	root.AddCommand(versionCmd())

	if err := root.Execute(); err != nil {
		if !errors.Is(err, commands.ErrReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print flyguide version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("flyguide " + version)
		},
	}
}
