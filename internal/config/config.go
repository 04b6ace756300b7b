package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	App      AppConfig      `mapstructure:"app"      validate:"required"`
}

// ServerConfig contains all HTTP server related settings.
// Timeouts are expressed in seconds.
type ServerConfig struct {
	Port            int    `mapstructure:"port"             validate:"required,gt=0,lt=65536"`
	LogLevel        string `mapstructure:"log_level"        validate:"required,oneof=debug info warn error"`
	ReadTimeout     int    `mapstructure:"read_timeout"     validate:"gt=0"`
	WriteTimeout    int    `mapstructure:"write_timeout"    validate:"gt=0"`
	IdleTimeout     int    `mapstructure:"idle_timeout"     validate:"gt=0"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout" validate:"gt=0"`
}

// DatabaseConfig contains all database related settings.
// Every storage call runs under QueryTimeout so a wedged query maps to a
// generic storage failure instead of hanging the request.
type DatabaseConfig struct {
	URL             string `mapstructure:"url"                validate:"required"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"     validate:"gt=0"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"     validate:"gte=0"`
	ConnMaxIdleTime int    `mapstructure:"conn_max_idle_time" validate:"gt=0"`
	ConnectTimeout  int    `mapstructure:"connect_timeout"    validate:"gt=0"`
	QueryTimeout    int    `mapstructure:"query_timeout"      validate:"gt=0"`
}

// AppConfig contains resource-service level settings.
type AppConfig struct {
	// DefaultUserRole is the role name attached to every newly
	// registered user. The role must exist in the roles table.
	DefaultUserRole string `mapstructure:"default_user_role" validate:"required"`

	// BcryptCost is the cost factor for password hashing.
	// Zero selects the bcrypt default.
	BcryptCost int `mapstructure:"bcrypt_cost" validate:"gte=0,lte=31"`
}
