package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

//go:generate go run ../../cmd/schema/main.go schema.json

// Config holds the application configuration
type Config struct {
	Server struct {
		Listen  string        `yaml:"listen" json:"listen" jsonschema:"default=:8080,description=Data API listen address"`
		Timeout time.Duration `yaml:"timeout" json:"timeout" jsonschema:"default=30s,description=HTTP server timeout"`
	} `yaml:"server" json:"server" jsonschema:"description=Data API server configuration"`

	Database struct {
		DSN             string `yaml:"dsn" json:"dsn" jsonschema:"description=Database connection string, DATABASE_URL overrides it"`
		MaxOpenConns    int    `yaml:"max_open_conns" json:"max_open_conns" jsonschema:"default=10,description=Maximum number of open connections"`
		MaxIdleConns    int    `yaml:"max_idle_conns" json:"max_idle_conns" jsonschema:"default=5,description=Maximum number of idle connections"`
		ConnMaxLifetime int    `yaml:"conn_max_lifetime" json:"conn_max_lifetime" jsonschema:"default=3600,description=Connection maximum lifetime in seconds"`
	} `yaml:"database" json:"database" jsonschema:"description=Database configuration"`

	News NewsConfig `yaml:"news" json:"news" jsonschema:"description=News listing configuration"`

	Dashboard struct {
		WindowDays int `yaml:"window_days" json:"window_days" jsonschema:"default=30,minimum=1,description=Days covered when no date range is given"`
	} `yaml:"dashboard" json:"dashboard" jsonschema:"description=Dashboard configuration"`

	Auth AuthConfig `yaml:"auth" json:"auth" jsonschema:"description=Auth gate configuration"`
}

// NewsConfig holds listing defaults
type NewsConfig struct {
	WindowDays   int `yaml:"window_days" json:"window_days" jsonschema:"default=30,minimum=1,description=Days listed when no date range is given"`
	DefaultLimit int `yaml:"default_limit" json:"default_limit" jsonschema:"default=50,minimum=1,description=Page size when no limit is given"`
	MaxLimit     int `yaml:"max_limit" json:"max_limit" jsonschema:"default=100,minimum=1,description=Largest accepted page size"`
}

// AuthConfig holds auth gate settings
type AuthConfig struct {
	Listen         string        `yaml:"listen" json:"listen" jsonschema:"default=:8081,description=Auth gate listen address"`
	TokenTTL       time.Duration `yaml:"token_ttl" json:"token_ttl" jsonschema:"default=8h,description=Issued token lifetime"`
	MaxAttempts    int           `yaml:"max_attempts" json:"max_attempts" jsonschema:"default=5,minimum=1,description=Login attempts allowed per client in a window"`
	AttemptWindow  time.Duration `yaml:"attempt_window" json:"attempt_window" jsonschema:"default=5m,description=Login attempts window"`
	AllowedOrigins []string      `yaml:"allowed_origins" json:"allowed_origins" jsonschema:"description=Origins allowed by CORS, FRONTEND_URL is added"`
}

// Load reads config from a YAML file, environment variables in it are expanded
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // config path comes from the command line
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return finish(&cfg)
}

// Default returns the configuration used when no file is given
func Default() *Config {
	cfg, err := finish(&Config{})
	if err != nil {
		panic(fmt.Sprintf("default config is invalid: %v", err))
	}
	return cfg
}

func finish(cfg *Config) (*Config, error) {
	setDefaults(cfg)
	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func setDefaults(cfg *Config) {
	if cfg.Server.Listen == "" {
		cfg.Server.Listen = ":8080"
	}
	if cfg.Server.Timeout == 0 {
		cfg.Server.Timeout = 30 * time.Second
	}

	if cfg.Database.MaxOpenConns == 0 {
		cfg.Database.MaxOpenConns = 10
	}
	if cfg.Database.MaxIdleConns == 0 {
		cfg.Database.MaxIdleConns = 5
	}
	if cfg.Database.ConnMaxLifetime == 0 {
		cfg.Database.ConnMaxLifetime = 3600
	}

	if cfg.News.WindowDays == 0 {
		cfg.News.WindowDays = 30
	}
	if cfg.News.DefaultLimit == 0 {
		cfg.News.DefaultLimit = 50
	}
	if cfg.News.MaxLimit == 0 {
		cfg.News.MaxLimit = 100
	}
	if cfg.Dashboard.WindowDays == 0 {
		cfg.Dashboard.WindowDays = 30
	}

	if cfg.Auth.Listen == "" {
		cfg.Auth.Listen = ":8081"
	}
	if cfg.Auth.TokenTTL == 0 {
		cfg.Auth.TokenTTL = 8 * time.Hour
	}
	if cfg.Auth.MaxAttempts == 0 {
		cfg.Auth.MaxAttempts = 5
	}
	if cfg.Auth.AttemptWindow == 0 {
		cfg.Auth.AttemptWindow = 5 * time.Minute
	}
}

// validate checks configuration for correctness
func validate(cfg *Config) error {
	if cfg.Server.Timeout < time.Second {
		return fmt.Errorf("server timeout must be at least 1 second")
	}
	if cfg.News.WindowDays < 1 || cfg.Dashboard.WindowDays < 1 {
		return fmt.Errorf("window_days must be at least 1")
	}
	if cfg.News.DefaultLimit < 1 || cfg.News.MaxLimit < 1 {
		return fmt.Errorf("news limits must be positive")
	}
	if cfg.News.DefaultLimit > cfg.News.MaxLimit {
		return fmt.Errorf("news.default_limit %d is above news.max_limit %d", cfg.News.DefaultLimit, cfg.News.MaxLimit)
	}
	if cfg.Auth.TokenTTL < time.Minute {
		return fmt.Errorf("auth.token_ttl must be at least 1 minute")
	}
	if cfg.Auth.MaxAttempts < 1 {
		return fmt.Errorf("auth.max_attempts must be at least 1")
	}
	for _, o := range cfg.Auth.AllowedOrigins {
		if !strings.HasPrefix(o, "http://") && !strings.HasPrefix(o, "https://") {
			return fmt.Errorf("auth.allowed_origins entry %q must start with http:// or https://", o)
		}
	}
	return nil
}

// GetServerConfig returns the data API listen address and timeout
func (c *Config) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Server.Listen, c.Server.Timeout
}

// AuthServerConfig adapts the auth gate listen address to the server config shape
type AuthServerConfig struct{ *Config }

// GetServerConfig returns the auth gate listen address and the shared timeout
func (c AuthServerConfig) GetServerConfig() (listen string, timeout time.Duration) {
	return c.Auth.Listen, c.Server.Timeout
}
