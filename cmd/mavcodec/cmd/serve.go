/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ssargent/mavcodec/pkg/api"
	"github.com/ssargent/mavcodec/pkg/config"
)

// autoAPIKey asks serve to generate a key for the lifetime of the process
const autoAPIKey = "auto"

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long: `Start the mavcodec REST API server. Clients open channels, pack messages on
them and decode frames; Prometheus metrics are served on /metrics and API
documentation on /swagger/.

An api_key of "auto" generates a key at startup and logs it. An empty key
disables authentication.

Examples:
  mavcodec serve
  mavcodec serve --port 9000 --bind 0.0.0.0 --api-key mysecretkey`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := configFrom(cmd)
		logger := loggerFrom(cmd)

		if cmd.Flags().Changed("port") {
			cfg.Port, _ = cmd.Flags().GetInt("port")
		}
		if cmd.Flags().Changed("bind") {
			cfg.Bind, _ = cmd.Flags().GetString("bind")
		}
		if cmd.Flags().Changed("api-key") {
			cfg.Security.APIKey, _ = cmd.Flags().GetString("api-key")
		}

		serverConfig, err := newServerConfig(cfg)
		if err != nil {
			return err
		}
		switch {
		case serverConfig.APIKey == "":
			logger.Warn("authentication disabled")
		case cfg.Security.APIKey == autoAPIKey:
			logger.Warn("generated API key for this run", "api_key", serverConfig.APIKey)
		}

		d, err := loadDialect(cmd)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		starter := container.GetServerFactory().CreateServerStarter()
		if err := starter.StartServer(ctx, d, serverConfig, logger); err != nil {
			return fmt.Errorf("error starting server: %w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on (default from config)")
	serveCmd.Flags().String("bind", "127.0.0.1", "Address to bind server to (default from config)")
	serveCmd.Flags().String("api-key", "", "API key for authentication (default from config)")
}

func newServerConfig(cfg *config.Config) (api.ServerConfig, error) {
	apiKey := cfg.Security.APIKey
	if apiKey == autoAPIKey {
		key, err := config.GenerateSecureKey(32)
		if err != nil {
			return api.ServerConfig{}, err
		}
		apiKey = key
	}
	return api.ServerConfig{
		Bind:        cfg.Bind,
		Port:        cfg.Port,
		APIKey:      apiKey,
		SystemID:    cfg.SystemID,
		ComponentID: cfg.ComponentID,
	}, nil
}
