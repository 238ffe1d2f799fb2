package cli

import (
	"github.com/spf13/cobra"

	"github.com/Ananya54321/handwritten/internal/server"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr       string
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the handwriting HTTP API",
		Long: `Run the handwriting HTTP API.

The server exposes POST /v1/generate, accepting the same options as the
generate command as JSON, and GET /healthz. Configuration is read from a
TOML file when --config is given; --addr overrides the listen address.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := server.DefaultConfig()
			if configPath != "" {
				loaded, err := server.LoadConfig(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if addr != "" {
				cfg.Addr = addr
			}

			srv, err := server.New(cmd.Context(), cfg, c.Logger)
			if err != nil {
				return err
			}
			return srv.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")
	cmd.Flags().StringVar(&configPath, "config", "", "path to TOML config file")

	return cmd
}
