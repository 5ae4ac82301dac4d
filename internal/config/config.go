package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server" validate:"required"`
	Database  DatabaseConfig  `mapstructure:"database" validate:"required"`
	Auth      AuthConfig      `mapstructure:"auth" validate:"required"`
	Swap      SwapConfig      `mapstructure:"swap"`
	Bootstrap BootstrapConfig `mapstructure:"bootstrap"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error fatal"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
}

// AuthConfig contains all authentication and authorization settings.
type AuthConfig struct {
	JWTSecret                   string `mapstructure:"jwt_secret"                     validate:"required,min=32"`
	BcryptCost                  int    `mapstructure:"bcrypt_cost"                    validate:"omitempty,gte=4,lte=31"`
	TokenLifetimeMinutes        int    `mapstructure:"token_lifetime_minutes"         validate:"required,gt=0"`
	RefreshTokenLifetimeMinutes int    `mapstructure:"refresh_token_lifetime_minutes" validate:"required,gt=0"`
}

// BootstrapConfig describes the optional administrator account provisioned
// at startup. There is no API for minting the first admin, so it has to come
// from configuration. All fields empty means no bootstrap.
type BootstrapConfig struct {
	AdminEmail    string `mapstructure:"admin_email"    validate:"omitempty,email"`
	AdminUsername string `mapstructure:"admin_username" validate:"omitempty,min=3,max=50"`
	AdminPassword string `mapstructure:"admin_password" validate:"omitempty,min=8,max=72"`
}

// SwapConfig contains swap request lifecycle settings.
type SwapConfig struct {
	// PermissiveTransitions relaxes status updates to the legacy behavior:
	// any party-authorized target status is accepted regardless of the
	// request's current status. The strict transition table is the default.
	PermissiveTransitions bool `mapstructure:"permissive_transitions"`
}
