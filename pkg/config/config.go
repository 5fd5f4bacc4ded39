/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the mavcodec configuration
type Config struct {
	SystemID    uint8    `yaml:"system_id"`
	ComponentID uint8    `yaml:"component_id"`
	Dialect     string   `yaml:"dialect"`
	Definitions []string `yaml:"definitions,omitempty"`
	Port        int      `yaml:"port"`
	Bind        string   `yaml:"bind"`
	Security    Security `yaml:"security"`
	Logging     Logging  `yaml:"logging"`
}

// Security contains security-related configuration
type Security struct {
	APIKey string `yaml:"api_key"`
}

// Logging contains logging configuration
type Logging struct {
	Level string `yaml:"level"`
}

// SlogLevel parses Level. An empty level means info.
func (l Logging) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", l.Level, err)
	}
	return level, nil
}

// DefaultConfig returns a default configuration. The ids are the ones a
// ground control station conventionally sends with.
func DefaultConfig() *Config {
	return &Config{
		SystemID:    255,
		ComponentID: 190,
		Dialect:     "openhd",
		Port:        8080,
		Bind:        "127.0.0.1",
		Security: Security{
			APIKey: "auto",
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// Validate reports the first setting that cannot be used.
func (c *Config) Validate() error {
	if c.SystemID == 0 {
		return fmt.Errorf("system_id must be between 1 and 255")
	}
	if c.Dialect == "" {
		return fmt.Errorf("dialect is required")
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if _, err := c.Logging.SlogLevel(); err != nil {
		return err
	}
	for _, def := range c.Definitions {
		if !ConfigExists(def) {
			return fmt.Errorf("definition file does not exist: %s", def)
		}
	}
	return nil
}

// LoadConfig loads configuration from the specified path
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	// Validate path to prevent directory traversal
	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Definition paths are relative to the config file.
	for i, def := range config.Definitions {
		if !filepath.IsAbs(def) {
			config.Definitions[i] = filepath.Join(filepath.Dir(configPath), def)
		}
	}

	return config, nil
}

// SaveConfig saves the configuration to the specified path with secure permissions
func SaveConfig(config *Config, configPath string) error {
	// Ensure config directory exists
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	// Write with secure permissions (0600)
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GenerateSecureKey generates a cryptographically secure random key
func GenerateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate secure key: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// BootstrapConfig creates a new configuration with a generated API key and
// writes it to configPath.
func BootstrapConfig(configPath string, dialect string) (*Config, error) {
	config := DefaultConfig()
	if dialect != "" {
		config.Dialect = dialect
	}

	apiKey, err := GenerateSecureKey(32) // 256 bits
	if err != nil {
		return nil, fmt.Errorf("failed to generate API key: %w", err)
	}
	config.Security.APIKey = apiKey

	// Save the configuration
	if err := SaveConfig(config, configPath); err != nil {
		return nil, fmt.Errorf("failed to save bootstrap config: %w", err)
	}

	return config, nil
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "./mavcodec.yaml"
	}

	// For Linux/macOS, use ~/.config/mavcodec/config.yaml
	configDir := filepath.Join(homeDir, ".config", "mavcodec")
	return filepath.Join(configDir, "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
