package cmd

import (
	"context"
	"github.com/spf13/cobra"
	"os"
	"os/signal"
	"statusdrafter/pkg/http/server"
	"syscall"
)

var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the statusdrafter http server",
	Long: `
Starts the REST API on Host:Port. Migrations run on startup.
When StaticDir is set the browser UI is served from the root path.
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return server.Start(ctx)
	},
}
