package cli

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds all service configuration
type Config struct {
	HTTPAddress string
	MongoURI    string

	OneDriveClientID     string
	OneDriveClientSecret string
	OneDriveTenantID     string
	OneDriveRootFolder   string

	NotionToken      string
	NotionDatabaseID string

	AllowedOrigins    string
	CleanupMaxAgeDays int
}

// Origins splits the comma-separated allowed-origin list.
func (c *Config) Origins() []string {
	if c.AllowedOrigins == "" {
		return nil
	}

	parts := strings.Split(c.AllowedOrigins, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}

	return origins
}

// LoadConfig loads configuration from files and environment variables
func LoadConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	// Configure environment variables - do this BEFORE reading config
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set up explicit mappings between struct fields and environment variables
	envMappings := map[string]string{
		"HTTPAddress":          "HTTP_ADDRESS",
		"MongoURI":             "MONGO_URI",
		"OneDriveClientID":     "ONEDRIVE_CLIENT_ID",
		"OneDriveClientSecret": "ONEDRIVE_CLIENT_SECRET",
		"OneDriveTenantID":     "ONEDRIVE_TENANT_ID",
		"OneDriveRootFolder":   "ONEDRIVE_ROOT_FOLDER",
		"NotionToken":          "NOTION_TOKEN",
		"NotionDatabaseID":     "NOTION_DATABASE_ID",
		"AllowedOrigins":       "ALLOWED_ORIGINS",
		"CleanupMaxAgeDays":    "CLEANUP_MAX_AGE_DAYS",
	}

	for configKey, envVar := range envMappings {
		if err := v.BindEnv(configKey, envVar); err != nil {
			log.Warn().Err(err).Msgf("Failed to bind environment variable %s for %s", envVar, configKey)
		}
	}

	v.SetConfigName("jobdeck_config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("$HOME/.jobdeck")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
		log.Debug().Msg("Config file not found, using environment variables and defaults")
	} else {
		log.Info().Msgf("Using config file: %s", v.ConfigFileUsed())
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("HTTPAddress", ":8000")
	v.SetDefault("OneDriveRootFolder", "Job Applications")
	v.SetDefault("CleanupMaxAgeDays", 30)
	v.SetDefault("AllowedOrigins", "http://localhost:8000,http://localhost:3000")
}

// validateConfig validates the required configuration fields. The OneDrive
// and Notion credentials are optional; their absence disables the matching
// side channel instead of failing startup.
func validateConfig(config *Config) error {
	if config.MongoURI == "" {
		return fmt.Errorf("missing required environment variable: MONGO_URI")
	}

	return nil
}
