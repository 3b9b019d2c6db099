package configs

import (
	"fmt"
	"strings"

	"site-analytics/internal/shared/validators"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. SITE_ANALYTICS_CLOUDFLARE_API_TOKEN.
const EnvPrefix = "SITE_ANALYTICS"

var defaults = map[string]any{
	"server.port":                          8080,
	"server.read_header_timeout":           5,
	"server.read_timeout":                  10,
	"server.write_timeout":                 30,
	"server.idle_timeout":                  60,
	"log.level":                            "info",
	"settings_storage.root_dir":            "./data",
	"cloudflare.graphql_endpoint":          "https://api.cloudflare.com/client/v4/graphql",
	"cloudflare.api_base_url":              "https://api.cloudflare.com/client/v4",
	"cloudflare.request_timeout":           15,
	"cloudflare.api_token":                 "",
	"cloudflare.zone_id":                   "",
	"cloudflare.domain":                    "",
	"cloudflare.account_id":                "",
	"cloudflare.project_name":              "",
	"analytics.chunk_days":                 5,
	"analytics.max_fields_per_query":       15,
	"analytics.breakdown_max_window_hours": 24,
	"analytics.max_days":                   90,
}

// LoadConfig reads configuration from file, applies environment overrides and validates it.
var LoadConfig = func(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// Every key needs a default so that Unmarshal picks up env-only values
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read from file
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", configPath, err)
	}

	// Unmarshal into Config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := validators.New("mapstructure").Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %s", strings.Join(validators.Describe(err), ", "))
	}

	return &cfg, nil
}
