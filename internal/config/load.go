package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults for everything that has a sensible one. Secrets have no
	// default on purpose.
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("auth.bcrypt_cost", 12)
	v.SetDefault("auth.token_lifetime_minutes", 30)
	v.SetDefault("auth.refresh_token_lifetime_minutes", 10080)
	v.SetDefault("swap.permissive_transitions", false)

	// Optional config file in the working directory.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables: SKILLSWAP_SERVER_PORT, SKILLSWAP_DATABASE_URL,
	// SKILLSWAP_AUTH_JWT_SECRET, etc.
	v.SetEnvPrefix("SKILLSWAP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv alone does not surface env-only keys to Unmarshal, so
	// bind the ones without defaults explicitly.
	for _, key := range []string{
		"database.url",
		"auth.jwt_secret",
		"bootstrap.admin_email",
		"bootstrap.admin_username",
		"bootstrap.admin_password",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
