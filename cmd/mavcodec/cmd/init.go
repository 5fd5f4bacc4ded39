/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ssargent/mavcodec/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a configuration file with a generated API key",
	Long: `Write a configuration file with default identity, dialect and server settings
and a freshly generated API key.

Examples:
  mavcodec init
  mavcodec init --config ./mavcodec.yaml --force --print-key`,
	Args: cobra.NoArgs,
	// The file may not exist yet, so the root config loading is skipped.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, _ := cmd.Flags().GetString("config")
		dialect, _ := cmd.Flags().GetString("dialect")
		force, _ := cmd.Flags().GetBool("force")
		printKey, _ := cmd.Flags().GetBool("print-key")

		if configPath == "" {
			configPath = config.GetDefaultConfigPath()
		}

		if config.ConfigExists(configPath) && !force {
			cmd.Printf("Configuration already exists at %s. Use --force to overwrite.\n", configPath)
			return nil
		}

		cfg, err := config.BootstrapConfig(configPath, dialect)
		if err != nil {
			return fmt.Errorf("error bootstrapping config: %w", err)
		}

		cmd.Printf("Configuration created at %s\n", configPath)
		if printKey {
			cmd.Printf("API key: %s\n", cfg.Security.APIKey)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "Overwrite an existing configuration")
	initCmd.Flags().Bool("print-key", false, "Print the generated API key")
}
