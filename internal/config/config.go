package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Geocoder GeocoderConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `mapstructure:"SERVER_HOST"`
	Port         int           `mapstructure:"SERVER_PORT"`
	ReadTimeout  time.Duration `mapstructure:"SERVER_READ_TIMEOUT"`
	WriteTimeout time.Duration `mapstructure:"SERVER_WRITE_TIMEOUT"`
	IdleTimeout  time.Duration `mapstructure:"SERVER_IDLE_TIMEOUT"`
}

// DatabaseConfig holds the local SQLite catalog settings.
type DatabaseConfig struct {
	Path    string `mapstructure:"DATABASE_PATH"`
	SeedDir string `mapstructure:"SEED_DIR"`
}

// RedisConfig holds Redis geocode-cache settings. Redis is optional:
// when Enabled is false the service caches geocode lookups in SQLite.
type RedisConfig struct {
	Enabled  bool          `mapstructure:"REDIS_ENABLED"`
	Host     string        `mapstructure:"REDIS_HOST"`
	Port     int           `mapstructure:"REDIS_PORT"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	CacheTTL time.Duration `mapstructure:"REDIS_CACHE_TTL"`
}

// GeocoderConfig holds settings for the upstream geocoding service.
type GeocoderConfig struct {
	BaseURL   string        `mapstructure:"GEOCODER_BASE_URL"`
	UserAgent string        `mapstructure:"GEOCODER_USER_AGENT"`
	Timeout   time.Duration `mapstructure:"GEOCODER_TIMEOUT"`
}

// Addr returns the Redis address in host:port format.
func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// ServerAddr returns the HTTP listen address in host:port format.
func (s *ServerConfig) ServerAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// Load reads configuration from environment variables and .env file.
func Load() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_HOST", "0.0.0.0")
	viper.SetDefault("SERVER_PORT", 8080)
	viper.SetDefault("SERVER_READ_TIMEOUT", "5s")
	viper.SetDefault("SERVER_WRITE_TIMEOUT", "15s")
	viper.SetDefault("SERVER_IDLE_TIMEOUT", "120s")

	viper.SetDefault("DATABASE_PATH", "evtrip.db")
	viper.SetDefault("SEED_DIR", "data/seeds")

	viper.SetDefault("REDIS_ENABLED", false)
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", 6379)
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("REDIS_CACHE_TTL", "720h")

	viper.SetDefault("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org")
	viper.SetDefault("GEOCODER_USER_AGENT", "ev-trip-service/1.0")
	viper.SetDefault("GEOCODER_TIMEOUT", "10s")

	// Try to read .env file. If it doesn't exist (e.g., inside Docker),
	// env vars injected by docker-compose env_file are used instead.
	_ = viper.ReadInConfig()

	cfg := &Config{}

	cfg.Server = ServerConfig{
		Host:         viper.GetString("SERVER_HOST"),
		Port:         viper.GetInt("SERVER_PORT"),
		ReadTimeout:  viper.GetDuration("SERVER_READ_TIMEOUT"),
		WriteTimeout: viper.GetDuration("SERVER_WRITE_TIMEOUT"),
		IdleTimeout:  viper.GetDuration("SERVER_IDLE_TIMEOUT"),
	}

	cfg.Database = DatabaseConfig{
		Path:    viper.GetString("DATABASE_PATH"),
		SeedDir: viper.GetString("SEED_DIR"),
	}

	cfg.Redis = RedisConfig{
		Enabled:  viper.GetBool("REDIS_ENABLED"),
		Host:     viper.GetString("REDIS_HOST"),
		Port:     viper.GetInt("REDIS_PORT"),
		Password: viper.GetString("REDIS_PASSWORD"),
		DB:       viper.GetInt("REDIS_DB"),
		CacheTTL: viper.GetDuration("REDIS_CACHE_TTL"),
	}

	cfg.Geocoder = GeocoderConfig{
		BaseURL:   viper.GetString("GEOCODER_BASE_URL"),
		UserAgent: viper.GetString("GEOCODER_USER_AGENT"),
		Timeout:   viper.GetDuration("GEOCODER_TIMEOUT"),
	}

	return cfg, nil
}
