package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"textcrypt/internal/app"
)

func httpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "http",
		Short: "HTTP server",
	}
	cmd.AddCommand(httpServeCmd())
	return cmd
}

func httpServeCmd() *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve a directory over HTTP until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			addr := fmt.Sprintf(":%d", appCtx.Config.HTTPPort)
			return appCtx.Server(dir).ListenAndServe(ctx, addr)
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "directory to serve")
	cmd.Flags().IntP("port", "p", 8080, "listen port")
	bindConfig(cmd, "port", app.KeyHTTPPort)
	return cmd
}
