package cli

import (
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/example/fitlog/internal/config"
	"github.com/example/fitlog/internal/wire"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		Long: `Run the HTTP API server.

Routes:
  POST /api/users                    register a user
  GET  /api/users                    list users
  POST /api/users/{id}/exercises     record an exercise
  GET  /api/users/{id}/logs          query a user's log (from, to, limit)

The listen address comes from --addr, FITLOG_ADDR, or the config file,
in that order.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			listenAddr := cfg.ListenAddr
			if addr != "" {
				listenAddr = addr
			}

			handler := wire.HTTPHandler()

			log.Printf("fitlog listening on %s", listenAddr)
			return http.ListenAndServe(listenAddr, handler)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")

	return cmd
}
