package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/rpgo/endowment-irr/internal/api"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve projections and quotes over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.cfg.HTTPAddr
			}
			engine, err := a.engine()
			if err != nil {
				return err
			}
			handler := api.NewHandler(engine, a.log)
			router := api.NewRouter(handler, api.RouterOptions{
				AllowedOrigins: a.cfg.CORSAllowedOrigins,
				RequestLogger:  a.log,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return api.Serve(ctx, addr, router, a.log)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to HTTP_ADDR or :8080)")
	return cmd
}
