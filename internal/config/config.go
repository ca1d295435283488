package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database"`
	Catalog  CatalogConfig  `mapstructure:"catalog" validate:"required"`
	Deck     DeckConfig     `mapstructure:"deck" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// ShutdownTimeoutSeconds bounds graceful shutdown of in-flight requests.
	ShutdownTimeoutSeconds int `mapstructure:"shutdown_timeout_seconds" validate:"gte=0"`
}

// DatabaseConfig contains all database-related configuration settings.
// The URL is required when the catalog is read from PostgreSQL.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"omitempty,url"`
	// AutoMigrate applies pending catalog migrations at startup.
	AutoMigrate bool `mapstructure:"auto_migrate"`
}

// Catalog sources.
const (
	CatalogSourcePostgres = "postgres"
	CatalogSourceFile     = "file"
)

// CatalogConfig selects where divisions and units are read from.
type CatalogConfig struct {
	Source   string `mapstructure:"source" validate:"required,oneof=postgres file"`
	FilePath string `mapstructure:"file_path" validate:"required_if=Source file"`
}

// DeckConfig contains settings of the deck drafting service.
type DeckConfig struct {
	// Policy is "advisory" (limits are reported) or "strict" (over-limit
	// purchases are rejected).
	Policy string `mapstructure:"policy" validate:"required,oneof=advisory strict"`
	// MaxDrafts caps the number of open drafts. Zero means unlimited.
	MaxDrafts int `mapstructure:"max_drafts" validate:"gte=0"`
}
