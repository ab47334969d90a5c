package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Task management specifics
	Storage   StorageConfig
	Auth      AuthConfig
	Generator GeneratorConfig
	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// StorageConfig locates the JSON snapshot files for tasks and the session.
type StorageConfig struct {
	DataDir string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
	// Latency simulates the round trip of a real credential check.
	Latency time.Duration
}

type GeneratorConfig struct {
	Latency time.Duration
}

type RateLimitConfig struct {
	GeneratePerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.Storage.DataDir = viper.GetString("storage.data_dir")
	if dataDir := viper.GetString("storage_data_dir"); dataDir != "" {
		cfg.Storage.DataDir = dataDir
	}

	// Auth
	cfg.Auth.JWTSecret = viper.GetString("auth.jwt_secret")
	if secret := viper.GetString("auth_jwt_secret"); secret != "" {
		cfg.Auth.JWTSecret = secret
	}
	cfg.Auth.TokenTTL = viper.GetDuration("auth.token_ttl")
	cfg.Auth.Latency = viper.GetDuration("auth.latency")
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("auth.jwt_secret is required - set it in config.yaml or AUTH_JWT_SECRET")
	}

	// Generator
	cfg.Generator.Latency = viper.GetDuration("generator.latency")

	// Rate limiting
	cfg.RateLimit.GeneratePerMin = viper.GetInt("rate_limit.generate_per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("storage.data_dir", "./data")
	viper.SetDefault("auth.token_ttl", "24h")
	viper.SetDefault("auth.latency", "500ms")
	viper.SetDefault("generator.latency", "1500ms")
	viper.SetDefault("rate_limit.generate_per_min", 30)
}
