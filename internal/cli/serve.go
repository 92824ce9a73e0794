package cli

import (
	"os/signal"
	"syscall"

	"github.com/TudorHulban/slotledger"
	"github.com/TudorHulban/slotledger/internal/httpapi"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the ledger over HTTP",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, l, errSetup := setup(cmd)
			if errSetup != nil {
				return errSetup
			}
			defer l.Sync() //nolint:errcheck

			if cfg.IsProduction() {
				gin.SetMode(gin.ReleaseMode)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			router := httpapi.NewRouter(
				&httpapi.ParamsNewRouter{
					Ledger:            slotledger.NewLedger(),
					Logger:            l,
					MaxRequestsPerMin: cfg.MaxRequestsPerMin,
				},
			)

			return httpapi.Serve(ctx, cfg.HTTPAddr, router, l)
		},
	}
}
