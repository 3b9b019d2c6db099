package configs

// Config holds all configuration for the application.
type Config struct {
	Server          ServerConfig          `mapstructure:"server" validate:"required"`
	Log             LogConfig             `mapstructure:"log" validate:"required"`
	SettingsStorage SettingsStorageConfig `mapstructure:"settings_storage" validate:"required"`
	Cloudflare      CloudflareConfig      `mapstructure:"cloudflare" validate:"required"`
	Analytics       AnalyticsConfig       `mapstructure:"analytics" validate:"required"`
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port              int `mapstructure:"port" validate:"required,min=1,max=65535"`
	ReadHeaderTimeout int `mapstructure:"read_header_timeout" validate:"required,min=1"` // seconds
	ReadTimeout       int `mapstructure:"read_timeout" validate:"required,min=1"`        // seconds (headers+body)
	WriteTimeout      int `mapstructure:"write_timeout" validate:"required,min=1"`       // seconds (response)
	IdleTimeout       int `mapstructure:"idle_timeout" validate:"required,min=1"`        // seconds (keep-alive)
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=trace debug info warn error"`
}

// SettingsStorageConfig is where the site settings file is kept.
type SettingsStorageConfig struct {
	RootDir string `mapstructure:"root_dir" validate:"required"`
}

// CloudflareConfig holds the upstream endpoints and the fallback connection values
// used when no settings were saved.
type CloudflareConfig struct {
	GraphQLEndpoint string `mapstructure:"graphql_endpoint" validate:"required,url"`
	APIBaseURL      string `mapstructure:"api_base_url" validate:"required,url"`
	RequestTimeout  int    `mapstructure:"request_timeout" validate:"required,min=1"` // seconds

	APIToken    string `mapstructure:"api_token"`
	ZoneID      string `mapstructure:"zone_id" validate:"omitempty,hexadecimal,len=32"`
	Domain      string `mapstructure:"domain" validate:"omitempty,fqdn"`
	AccountID   string `mapstructure:"account_id" validate:"omitempty,hexadecimal,len=32"`
	ProjectName string `mapstructure:"project_name"`
}

// AnalyticsConfig tunes query planning.
type AnalyticsConfig struct {
	ChunkDays               int `mapstructure:"chunk_days" validate:"required,min=1"`
	MaxFieldsPerQuery       int `mapstructure:"max_fields_per_query" validate:"required,min=2"`
	BreakdownMaxWindowHours int `mapstructure:"breakdown_max_window_hours" validate:"required,min=1,max=24"`
	MaxDays                 int `mapstructure:"max_days" validate:"required,min=1,max=365"`
}
