package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/beetlebot/flyguide/internal/server"
	"github.com/spf13/cobra"
)

func ServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve flight and guide searches over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			e := setup(cmd)
			if port > 0 {
				e.cfg.Server.Port = port
			}

			store, err := e.historyStore()
			if err != nil {
				e.logger.WithError(err).Warn("search history disabled")
				store = nil
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(e.cfg, e.router, store, e.logger)
			return srv.Start(ctx)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "Listen port (default from config, 8080)")
	return cmd
}
