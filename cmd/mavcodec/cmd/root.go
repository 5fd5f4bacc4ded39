/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssargent/mavcodec/pkg/codec"
	"github.com/ssargent/mavcodec/pkg/config"
	"github.com/ssargent/mavcodec/pkg/di"
)

type contextKey string

const (
	configKey contextKey = "config"
	loggerKey contextKey = "logger"
)

var container *di.Container

// SetContainer injects the dependency container
func SetContainer(c *di.Container) {
	container = c
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mavcodec",
	Short: "mavcodec - MAVLink frame codec",
	Long: `mavcodec packs, validates and decodes MAVLink v1 and v2 frames for the
OpenHD ground station dialect, and generates typed Go message code from
MAVLink XML definitions.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		level, err := cfg.Logging.SlogLevel()
		if err != nil {
			return err
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

		// Store in command context
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		ctx = context.WithValue(ctx, configKey, cfg)
		ctx = context.WithValue(ctx, loggerKey, logger)
		cmd.SetContext(ctx)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default: ~/.config/mavcodec/config.yaml if present)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("dialect", "", "Dialect to use (default from config, openhd)")
	rootCmd.PersistentFlags().StringSlice("definition", nil, "Extra MAVLink XML definition merged into the dialect (repeatable)")
}

// loadConfig reads the config file named by --config, or the default file
// when it exists, then applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")

	cfg := config.DefaultConfig()
	switch {
	case configPath != "":
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	case config.ConfigExists(config.GetDefaultConfigPath()):
		loaded, err := config.LoadConfig(config.GetDefaultConfigPath())
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}
	if dialect, _ := cmd.Flags().GetString("dialect"); dialect != "" {
		cfg.Dialect = dialect
	}
	if defs, _ := cmd.Flags().GetStringSlice("definition"); len(defs) > 0 {
		cfg.Definitions = append(cfg.Definitions, defs...)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func configFrom(cmd *cobra.Command) *config.Config {
	if cfg, ok := cmd.Context().Value(configKey).(*config.Config); ok {
		return cfg
	}
	return config.DefaultConfig()
}

func loggerFrom(cmd *cobra.Command) *slog.Logger {
	if logger, ok := cmd.Context().Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// loadDialect builds the configured dialect through the container.
func loadDialect(cmd *cobra.Command) (*codec.Dialect, error) {
	if container == nil {
		return nil, fmt.Errorf("dependency container not initialized")
	}
	cfg := configFrom(cmd)
	d, err := container.GetDialectFactory().CreateDialect(cfg.Dialect, cfg.Definitions)
	if err != nil {
		return nil, fmt.Errorf("failed to load dialect: %w", err)
	}
	loggerFrom(cmd).Debug("dialect loaded", "name", d.Name(), "messages", d.Len())
	return d, nil
}
