package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"`
}

// Environment names accepted by ServerConfig.Environment.
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port        int    `mapstructure:"port"        validate:"required,gt=0,lt=65536"`
	LogLevel    string `mapstructure:"log_level"   validate:"required,oneof=debug info warn error"`
	Environment string `mapstructure:"environment" validate:"required,oneof=development test production"`
}

// ExposeErrorDetail reports whether internal error detail may be returned
// to API clients. Only development deployments expose it.
func (c ServerConfig) ExposeErrorDetail() bool {
	return c.Environment == EnvDevelopment
}

// Supported document store backends.
const (
	BackendMongoDB  = "mongodb"
	BackendPostgres = "postgres"
	BackendSQLite   = "sqlite"
	BackendMemory   = "memory"
)

// DatabaseConfig selects and configures the document store backend.
type DatabaseConfig struct {
	Backend string `mapstructure:"backend" validate:"required,oneof=mongodb postgres sqlite memory"`
	// URL is a MongoDB connection string, a PostgreSQL DSN or a SQLite file path.
	URL string `mapstructure:"url" validate:"required_unless=Backend memory"`
	// Name is the MongoDB database name. Unused by the other backends.
	Name                  string `mapstructure:"name"                    validate:"required"`
	ConnectTimeoutSeconds int    `mapstructure:"connect_timeout_seconds" validate:"gt=0"`
	MigrateOnStart        bool   `mapstructure:"migrate_on_start"`
}

// AuthConfig contains the bearer token settings for mutating routes.
type AuthConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	JWTSecret string `mapstructure:"jwt_secret"`
	Issuer    string `mapstructure:"issuer"`
	Audience  string `mapstructure:"audience"`
}

// minJWTSecretLength is the shortest HS256 secret accepted when auth is enabled.
const minJWTSecretLength = 32
