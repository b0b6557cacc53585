package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig      `mapstructure:"app"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Database DatabaseConfig `mapstructure:"database"`
	Auth     AuthConfig     `mapstructure:"auth"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Environment string `mapstructure:"environment"`
}

type HTTPConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type DatabaseConfig struct {
	URL             string        `mapstructure:"url"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	TimeZone        string        `mapstructure:"timezone"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	AutoMigrate     bool          `mapstructure:"auto_migrate"`
	LogQueries      bool          `mapstructure:"log_queries"`
}

// DSN returns the configured URL, or builds a key/value DSN from the parts.
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=%s",
		c.Host, c.User, c.Password, c.Name, c.Port, c.TimeZone,
	)
}

type AuthConfig struct {
	// Enforce requires a bearer token on the API and the ADMIN role for
	// catalog, pump and registration writes. Off by default.
	Enforce   bool          `mapstructure:"enforce"`
	JWTSecret string        `mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads .env (if present), an optional config.yaml and the environment.
// Environment variables win; APP_ prefixed keys map to nested fields with
// "_" in place of "." (APP_HTTP_PORT -> http.port).
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath(".")

	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// common names without the APP_ prefix
	bind(v, "http.port", "PORT", "HTTP_PORT")
	bind(v, "database.url", "DATABASE_URL")
	bind(v, "database.host", "DB_HOST")
	bind(v, "database.port", "DB_PORT")
	bind(v, "database.user", "DB_USER")
	bind(v, "database.password", "DB_PASSWORD")
	bind(v, "database.name", "DB_NAME")
	bind(v, "auth.jwt_secret", "JWT_SECRET")
	bind(v, "auth.enforce", "AUTH_ENFORCE")
	bind(v, "logging.level", "LOG_LEVEL")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func bind(v *viper.Viper, key string, envs ...string) {
	_ = v.BindEnv(append([]string{key, "APP_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))}, envs...)...)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "Fuel Station API v1.0")
	v.SetDefault("app.environment", "development")

	v.SetDefault("http.port", 3000)
	v.SetDefault("http.read_timeout", 10*time.Second)
	v.SetDefault("http.write_timeout", 10*time.Second)

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.name", "fuelstation")
	v.SetDefault("database.timezone", "UTC")
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.conn_max_lifetime", time.Hour)
	v.SetDefault("database.auto_migrate", true)
	v.SetDefault("database.log_queries", false)

	v.SetDefault("auth.enforce", false)
	v.SetDefault("auth.token_ttl", 24*time.Hour)

	v.SetDefault("logging.level", "info")
}
