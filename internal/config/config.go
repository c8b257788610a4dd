package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	apperrors "pokedex/browser/internal/errors"
)

// Config holds all configuration for the application
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Catalog    CatalogConfig    `mapstructure:"catalog"`
	Pagination PaginationConfig `mapstructure:"pagination"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Log        LogConfig        `mapstructure:"log"`
}

// ServerConfig holds browser-facing HTTP server configuration
type ServerConfig struct {
	Port       int           `mapstructure:"port"`
	Host       string        `mapstructure:"host"`
	SessionTTL time.Duration `mapstructure:"session_ttl"`
}

// Addr returns the listen address
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// CatalogConfig holds remote catalog service configuration
type CatalogConfig struct {
	BaseURL              string        `mapstructure:"base_url"`
	Timeout              time.Duration `mapstructure:"timeout"` // Per request
	MaxWorkers           int           `mapstructure:"max_workers"`
	MaxRequestsPerSecond int           `mapstructure:"max_requests_per_second"` // 0 disables the limiter
	Language             string        `mapstructure:"language"`
	Cooldown             time.Duration `mapstructure:"cooldown"`
	UserAgent            string        `mapstructure:"user_agent"`
	Proxies              []string      `mapstructure:"proxies"`
}

// PaginationConfig holds list screen page sizes
type PaginationConfig struct {
	InitialPageSize     int `mapstructure:"initial_page_size"`
	IncrementalPageSize int `mapstructure:"incremental_page_size"`
}

// RedisConfig holds Redis connection details for the selection store
type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	Database int    `mapstructure:"database"`
}

// Addr returns the redis endpoint
func (r RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// LogConfig holds logrus settings
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load loads configuration from config.yaml in the working directory, or
// from path when it is not empty, with POKEDEX_* environment overrides.
// A missing config.yaml is not an error; defaults apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	setDefaults(v)

	v.SetEnvPrefix("pokedex")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks the values no component can work without
func (c *Config) Validate() error {
	vb := apperrors.NewValidationBuilder()

	apperrors.ValidatePositive("server.port", c.Server.Port, vb)
	apperrors.ValidateRequired("catalog.base_url", c.Catalog.BaseURL, vb)
	apperrors.ValidateRequired("catalog.language", c.Catalog.Language, vb)
	apperrors.ValidatePositive("catalog.max_workers", c.Catalog.MaxWorkers, vb)
	apperrors.ValidateNonNegative("catalog.max_requests_per_second", c.Catalog.MaxRequestsPerSecond, vb)
	apperrors.ValidatePositive("pagination.initial_page_size", c.Pagination.InitialPageSize, vb)
	apperrors.ValidatePositive("pagination.incremental_page_size", c.Pagination.IncrementalPageSize, vb)
	apperrors.ValidateEnum("log.level", c.Log.Level, []string{"trace", "debug", "info", "warn", "error"}, vb)
	apperrors.ValidateEnum("log.format", c.Log.Format, []string{"text", "json"}, vb)

	if c.Catalog.Timeout <= 0 {
		vb.Field("catalog.timeout", "must be positive")
	}
	if c.Server.SessionTTL <= 0 {
		vb.Field("server.session_ttl", "must be positive")
	}
	if c.Redis.Enabled {
		apperrors.ValidateRequired("redis.host", c.Redis.Host, vb)
		apperrors.ValidatePositive("redis.port", c.Redis.Port, vb)
	}

	return vb.Build()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.session_ttl", 30*time.Minute)

	v.SetDefault("catalog.base_url", "https://pokeapi.co/api/v2")
	v.SetDefault("catalog.timeout", 10*time.Second)
	v.SetDefault("catalog.max_workers", 16)
	v.SetDefault("catalog.max_requests_per_second", 0)
	v.SetDefault("catalog.language", "de")
	v.SetDefault("catalog.cooldown", time.Minute)
	v.SetDefault("catalog.user_agent", "pokedex-browser/1.0")
	v.SetDefault("catalog.proxies", []string{})

	v.SetDefault("pagination.initial_page_size", 151)
	v.SetDefault("pagination.incremental_page_size", 100)

	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.database", 0)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}
