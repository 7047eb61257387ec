package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Load loads the configuration from file and environment
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set default values
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		// Look for config in standard locations
		v.SetConfigName("config")
		v.SetConfigType("yaml")

		// Check current directory first
		v.AddConfigPath(".")

		// Check home directory
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".webfaction-stats"))
		}

		// Check /etc
		v.AddConfigPath("/etc/webfaction-stats/")
	}

	// Credentials may come from the environment instead of the file
	v.BindEnv("webfaction.username", "WEBFACTION_USERNAME")
	v.BindEnv("webfaction.password", "WEBFACTION_PASSWORD")
	v.BindEnv("webfaction.server", "WEBFACTION_SERVER")

	// Read config file; a missing file is fine as long as the environment
	// fills the gaps
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Validate configuration
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// WebFaction defaults
	v.SetDefault("webfaction.api_url", "https://api.webfaction.com")

	// Safety defaults
	v.SetDefault("safety.confirm_delete", true)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.color", true)
}

// validate checks if the configuration is valid
func validate(cfg *Config) error {
	if cfg.WebFaction.APIURL == "" {
		return fmt.Errorf("webfaction.api_url is required")
	}

	if cfg.WebFaction.Username == "" {
		return fmt.Errorf("webfaction.username is required (config file or WEBFACTION_USERNAME)")
	}

	if cfg.WebFaction.Server == "" {
		return fmt.Errorf("webfaction.server is required (config file or WEBFACTION_SERVER)")
	}

	// Validate logging level
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s", cfg.Logging.Level)
	}

	// Validate logging format
	validFormats := map[string]bool{
		"console": true,
		"json":    true,
	}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s", cfg.Logging.Format)
	}

	return nil
}
