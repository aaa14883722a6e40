package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/continuum-hq/model-router/internal/core/domain"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Store     StoreConfig     `mapstructure:"store"`
	Redis     RedisConfig     `mapstructure:"redis"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Registry  RegistryConfig  `mapstructure:"registry"`
}

type ServerConfig struct {
	Port    string   `mapstructure:"port"`
	Env     string   `mapstructure:"env"`
	APIKeys []string `mapstructure:"api_keys"`
}

type StoreConfig struct {
	DSN string `mapstructure:"dsn"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Enabled  bool   `mapstructure:"enabled"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

// RegistryConfig holds the raw model catalog from config.yaml. When empty,
// the built-in catalog is used instead.
type RegistryConfig struct {
	Models []ModelEntry `mapstructure:"models"`
}

// ModelEntry is one raw registry row before validation.
type ModelEntry struct {
	ID            string   `mapstructure:"id"`
	Provider      string   `mapstructure:"provider"`
	Capabilities  []string `mapstructure:"capabilities"`
	ContextWindow int      `mapstructure:"context_window"`
	Default       bool     `mapstructure:"default"`
}

// Descriptors validates the configured catalog into domain descriptors.
// Unknown providers or capabilities fail here, at load time, instead of
// silently never matching during routing.
func (r RegistryConfig) Descriptors() ([]domain.ModelDescriptor, error) {
	models := make([]domain.ModelDescriptor, 0, len(r.Models))
	for _, e := range r.Models {
		m, err := domain.NewModelDescriptor(e.ID, e.Provider, e.Capabilities, e.ContextWindow, e.Default)
		if err != nil {
			return nil, fmt.Errorf("registry config: %w", err)
		}
		models = append(models, m)
	}
	return models, nil
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig() (*Config, error) {
	// Load .env file if present
	_ = godotenv.Load()

	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Default Values
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.env", "development")
	v.SetDefault("store.dsn", "file:continuum.db?cache=shared&mode=rwc&_journal_mode=WAL&_busy_timeout=5000")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("rate_limit.requests_per_second", 10.0)
	v.SetDefault("rate_limit.burst", 20)

	// Environment Variables
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	// Resolve ENV:-indirected secrets
	for i, k := range cfg.Server.APIKeys {
		cfg.Server.APIKeys[i] = resolveSecret(v, k)
	}
	cfg.Redis.Password = resolveSecret(v, cfg.Redis.Password)

	return &cfg, nil
}

func resolveSecret(v *viper.Viper, raw string) string {
	if !strings.HasPrefix(raw, "ENV:") {
		return raw
	}
	envVar := strings.TrimPrefix(raw, "ENV:")
	// Process environment is the explicit override
	if val := os.Getenv(envVar); val != "" {
		return val
	}
	return v.GetString(envVar)
}
