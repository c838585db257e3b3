package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Redis     RedisConfig     `yaml:"redis"`
	Auth      AuthConfig      `yaml:"auth"`
	Storage   StorageConfig   `yaml:"storage"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	CORS      CORSConfig      `yaml:"cors"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Port                int `yaml:"port"`
	ReadTimeoutSeconds  int `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int `yaml:"write_timeout_seconds"`
	IdleTimeoutSeconds  int `yaml:"idle_timeout_seconds"`
}

// DatabaseConfig contains PostgreSQL connection settings
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Database string `yaml:"database"`
	SSLMode  string `yaml:"sslmode"`
}

// RedisConfig contains Redis connection settings
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// AuthConfig contains token settings
type AuthConfig struct {
	AccessTokenSecret  string `yaml:"access_token_secret"`
	RefreshTokenSecret string `yaml:"refresh_token_secret"`
	AccessTokenMinutes int    `yaml:"access_token_minutes"`
	RefreshTokenHours  int    `yaml:"refresh_token_hours"`
}

// StorageConfig contains document storage settings
type StorageConfig struct {
	Root                 string `yaml:"root"`
	URLSecret            string `yaml:"url_secret"`
	URLTTLMinutes        int    `yaml:"url_ttl_minutes"`
	URLRefreshMarginMins int    `yaml:"url_refresh_margin_minutes"`
}

// RateLimitConfig contains API rate limiting settings
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requests_per_minute"`
	RequestsPerHour   int  `yaml:"requests_per_hour"`
}

// SchedulerConfig contains the daily billing job settings
type SchedulerConfig struct {
	Enabled      bool   `yaml:"enabled"`
	DailyRunTime string `yaml:"daily_run_time"`
	BatchSize    int    `yaml:"batch_size"`
	BatchDelayMs int    `yaml:"batch_delay_ms"`
}

// CORSConfig contains allowed browser origins
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// DefaultConfig returns default configuration
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:                8080,
			ReadTimeoutSeconds:  10,
			WriteTimeoutSeconds: 30,
			IdleTimeoutSeconds:  60,
		},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			User:     "propo",
			Database: "propo",
			SSLMode:  "disable",
		},
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Auth: AuthConfig{
			AccessTokenMinutes: 15,
			RefreshTokenHours:  30 * 24,
		},
		Storage: StorageConfig{
			Root:                 "data/storage",
			URLTTLMinutes:        15,
			URLRefreshMarginMins: 5,
		},
		RateLimit: RateLimitConfig{
			Enabled:           true,
			RequestsPerMinute: 120,
			RequestsPerHour:   3600,
		},
		Scheduler: SchedulerConfig{
			Enabled:      true,
			DailyRunTime: "02:00",
			BatchSize:    25,
			BatchDelayMs: 200,
		},
		CORS: CORSConfig{
			AllowedOrigins: []string{"http://localhost:5173"},
		},
	}
}

// LoadConfig loads configuration from a YAML file, then applies
// environment overrides for secrets and connection settings.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// FromEnv returns the default configuration with environment overrides
// applied. Used when no config file is present.
func FromEnv() *Config {
	cfg := DefaultConfig()
	cfg.applyEnvOverrides()
	return cfg
}

const defaultConfigPath = "config.yaml"

// Load resolves configuration for the given path. An explicitly named file
// must exist; an empty path tries config.yaml and falls back to
// environment-only configuration when the file is absent.
func Load(path string) (*Config, error) {
	if path != "" {
		return LoadConfig(path)
	}

	cfg, err := LoadConfig(defaultConfigPath)
	if errors.Is(err, os.ErrNotExist) {
		return FromEnv(), nil
	}
	return cfg, err
}

func (c *Config) applyEnvOverrides() {
	c.Database.Host = getEnv("DB_HOST", c.Database.Host)
	c.Database.User = getEnv("DB_USERNAME", c.Database.User)
	c.Database.Password = getEnv("DB_PASSWORD", c.Database.Password)
	c.Database.Database = getEnv("DB_DATABASE", c.Database.Database)
	c.Redis.Addr = getEnv("REDIS_ADDR", c.Redis.Addr)
	c.Redis.Password = getEnv("REDIS_PASSWORD", c.Redis.Password)
	c.Auth.AccessTokenSecret = getEnv("ACCESS_TOKEN_SECRET", c.Auth.AccessTokenSecret)
	c.Auth.RefreshTokenSecret = getEnv("REFRESH_TOKEN_SECRET", c.Auth.RefreshTokenSecret)
	c.Storage.URLSecret = getEnv("STORAGE_URL_SECRET", c.Storage.URLSecret)
	c.Storage.Root = getEnv("STORAGE_ROOT", c.Storage.Root)
}

// AccessTokenTTL returns the access token lifetime
func (c *AuthConfig) AccessTokenTTL() time.Duration {
	return time.Duration(c.AccessTokenMinutes) * time.Minute
}

// RefreshTokenTTL returns the refresh token lifetime
func (c *AuthConfig) RefreshTokenTTL() time.Duration {
	return time.Duration(c.RefreshTokenHours) * time.Hour
}

// URLTTL returns the signed URL lifetime
func (c *StorageConfig) URLTTL() time.Duration {
	return time.Duration(c.URLTTLMinutes) * time.Minute
}

// URLRefreshMargin returns how close to expiry a signed URL is re-issued
func (c *StorageConfig) URLRefreshMargin() time.Duration {
	return time.Duration(c.URLRefreshMarginMins) * time.Minute
}

// BatchDelay returns the pause between scheduler batches
func (c *SchedulerConfig) BatchDelay() time.Duration {
	return time.Duration(c.BatchDelayMs) * time.Millisecond
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
