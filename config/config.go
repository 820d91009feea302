package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all Taskie configuration, client and server.
type Config struct {
	// Environment
	Environment EnvironmentConfig
	Logger      LoggerConfig

	// Client
	Client ClientConfig

	// Reference server
	HTTPServer HTTPServerConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	RateLimit  RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type ClientConfig struct {
	BaseURL     string
	Timeout     time.Duration
	LogBodies   bool
	SessionFile string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type DatabaseConfig struct {
	Path string
}

type JWTConfig struct {
	Secret   string
	TokenTTL time.Duration
	Issuer   string
}

type RateLimitConfig struct {
	RequestsPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/taskie/.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/taskie/")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}

	cfg.Environment.Name = v.GetString("environment.name")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")

	// Client
	cfg.Client.BaseURL = v.GetString("client.base_url")
	if baseURL := v.GetString("taskie_base_url"); baseURL != "" {
		cfg.Client.BaseURL = baseURL
	}
	cfg.Client.Timeout = v.GetDuration("client.timeout")
	cfg.Client.LogBodies = v.GetBool("client.log_bodies")
	cfg.Client.SessionFile = v.GetString("client.session_file")
	if cfg.Client.SessionFile == "" {
		cfg.Client.SessionFile = defaultSessionFile()
	}

	// Server
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Database.Path = v.GetString("database.path")
	cfg.JWT.Secret = v.GetString("jwt.secret")
	if secret := v.GetString("taskie_jwt_secret"); secret != "" {
		cfg.JWT.Secret = secret
	}
	cfg.JWT.TokenTTL = v.GetDuration("jwt.token_ttl")
	cfg.JWT.Issuer = v.GetString("jwt.issuer")
	cfg.RateLimit.RequestsPerMin = v.GetInt("rate_limit.requests_per_min")

	if err := cfg.validateClient(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", "development")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)

	v.SetDefault("client.base_url", "https://taskie-rw.herokuapp.com")
	v.SetDefault("client.timeout", "10s")
	v.SetDefault("client.log_bodies", false)

	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("database.path", "taskie.db")
	v.SetDefault("jwt.token_ttl", "720h")
	v.SetDefault("jwt.issuer", "taskie")
	v.SetDefault("rate_limit.requests_per_min", 120)
}

func (cfg *Config) validateClient() error {
	u, err := url.Parse(cfg.Client.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("client.base_url %q is not an absolute URL", cfg.Client.BaseURL)
	}
	if cfg.Client.Timeout <= 0 {
		return fmt.Errorf("client.timeout must be positive, got %s", cfg.Client.Timeout)
	}
	return nil
}

// ValidateServer checks the settings only the reference server needs.
func (cfg *Config) ValidateServer() error {
	if cfg.JWT.Secret == "" {
		return fmt.Errorf("jwt.secret is required (or set TASKIE_JWT_SECRET)")
	}
	if cfg.JWT.TokenTTL <= 0 {
		return fmt.Errorf("jwt.token_ttl must be positive")
	}
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive")
	}
	if cfg.RateLimit.RequestsPerMin < 0 {
		return fmt.Errorf("rate_limit.requests_per_min must not be negative")
	}
	return nil
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".taskie-session.yaml"
	}
	return filepath.Join(dir, "taskie", "session.yaml")
}
