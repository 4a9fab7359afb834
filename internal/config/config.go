package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the console.
type Config struct {
	Backend BackendConfig
	Console ConsoleConfig
	Redis   RedisConfig
}

type BackendConfig struct {
	BaseURL string        `mapstructure:"BACKEND_BASE_URL"`
	Timeout time.Duration `mapstructure:"BACKEND_TIMEOUT"`
}

type ConsoleConfig struct {
	Port         int           `mapstructure:"CONSOLE_PORT"`
	GinMode      string        `mapstructure:"GIN_MODE"`
	RateLimit    int           `mapstructure:"CONSOLE_RATE_LIMIT"`
	ReadTimeout  time.Duration `mapstructure:"CONSOLE_READ_TIMEOUT"`
	WriteTimeout time.Duration `mapstructure:"CONSOLE_WRITE_TIMEOUT"`
}

type RedisConfig struct {
	URL string `mapstructure:"REDIS_URL"`
}

// Load reads console configuration from environment variables.
func Load() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("BACKEND_BASE_URL", "http://localhost:5109/api")
	viper.SetDefault("BACKEND_TIMEOUT", "15s")
	viper.SetDefault("CONSOLE_PORT", 8080)
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("CONSOLE_RATE_LIMIT", 100)
	viper.SetDefault("CONSOLE_READ_TIMEOUT", "10s")
	viper.SetDefault("CONSOLE_WRITE_TIMEOUT", "30s")
	viper.SetDefault("REDIS_URL", "redis://localhost:6379/0")

	_ = viper.ReadInConfig()

	cfg := &Config{}
	cfg.Backend.BaseURL = viper.GetString("BACKEND_BASE_URL")
	cfg.Backend.Timeout = viper.GetDuration("BACKEND_TIMEOUT")
	cfg.Console.Port = viper.GetInt("CONSOLE_PORT")
	cfg.Console.GinMode = viper.GetString("GIN_MODE")
	cfg.Console.RateLimit = viper.GetInt("CONSOLE_RATE_LIMIT")
	cfg.Console.ReadTimeout = viper.GetDuration("CONSOLE_READ_TIMEOUT")
	cfg.Console.WriteTimeout = viper.GetDuration("CONSOLE_WRITE_TIMEOUT")
	cfg.Redis.URL = viper.GetString("REDIS_URL")

	return cfg, nil
}
