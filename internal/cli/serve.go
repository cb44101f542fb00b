package cli

import (
	"time"

	"github.com/spf13/cobra"

	"mannwallet/internal/logging"
	"mannwallet/internal/server"
)

// addServeCommand adds the HTTP API command.
func addServeCommand(rootCmd *cobra.Command, app *App) {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API for presentation clients",
		Long: `Serve the analytics engine over a local JSON API. The API exposes the
spending summary, insights and visible alerts, and accepts dismiss,
dismiss-all and regenerate commands.`,
		Example: `  mannwallet serve
  mannwallet serve --addr 127.0.0.1:9000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, _ := cmd.Flags().GetString("addr")
			if addr == "" {
				addr = app.Config.Server.Addr
			}

			api := server.NewWebAPI(logging.WithComponent(app.Logger, "server"), server.Config{
				Addr:            addr,
				ShutdownTimeout: 10 * time.Second,
				Engine:          app.Engine,
				Expenses:        app.Store,
			})
			return api.Start()
		},
	}

	cmd.Flags().String("addr", "", "listen address (default from config)")

	rootCmd.AddCommand(cmd)
}
