package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable the service reads,
// e.g. BOARDGAMES_DATABASE_URL.
const EnvPrefix = "BOARDGAMES"

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config.yaml, and
// variables already set in the process take precedence over a .env file.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error reading .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the struct tags of cfg and the rules that depend on more
// than one field.
func Validate(cfg *Config) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	if cfg.Auth.Enabled && len(cfg.Auth.JWTSecret) < minJWTSecretLength {
		return fmt.Errorf(
			"config validation failed: auth.jwt_secret must be at least %d characters when auth is enabled",
			minJWTSecretLength,
		)
	}
	return nil
}

// setDefaults registers every key so AutomaticEnv can resolve it during
// Unmarshal, including keys without a meaningful default.
func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.environment", EnvProduction)

	v.SetDefault("database.backend", BackendMongoDB)
	v.SetDefault("database.url", "")
	v.SetDefault("database.name", "boardgames")
	v.SetDefault("database.connect_timeout_seconds", 10)
	v.SetDefault("database.migrate_on_start", true)

	v.SetDefault("auth.enabled", false)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.issuer", "")
	v.SetDefault("auth.audience", "")
}
