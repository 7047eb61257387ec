package config

// Config represents the complete configuration structure
type Config struct {
	WebFaction WebFactionConfig `mapstructure:"webfaction"`
	Safety     SafetyConfig     `mapstructure:"safety"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// WebFactionConfig holds the API endpoint and account credentials
type WebFactionConfig struct {
	APIURL   string `mapstructure:"api_url"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Server   string `mapstructure:"server"`
}

// SafetyConfig contains safety-related settings
type SafetyConfig struct {
	ConfirmDelete bool `mapstructure:"confirm_delete"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
