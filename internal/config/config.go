package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	HTTPPort           string        `yaml:"http_port"`
	SQLitePath         string        `yaml:"sqlite_path"`
	RedisAddr          string        `yaml:"redis_addr"`
	RedisPassword      string        `yaml:"redis_password"`
	RequestTimeout     time.Duration `yaml:"request_timeout"`
	ShutdownTimeout    time.Duration `yaml:"shutdown_timeout"`
	MaxRequestBodySize int64         `yaml:"max_request_body_size"`
}

func defaultConfig() *Config {
	return &Config{
		HTTPPort:           "8080",
		SQLitePath:         "database.db",
		RedisAddr:          "localhost:6379",
		RequestTimeout:     30 * time.Second,
		ShutdownTimeout:    10 * time.Second,
		MaxRequestBodySize: 1 << 20, // 1MB
	}
}

// Load reads the optional yaml file at path, then applies env overrides.
// A missing file is not an error; env vars win over file values.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if path != "" {
		file, err := os.ReadFile(path)
		if err == nil {
			if e2 := yaml.Unmarshal(file, cfg); e2 != nil {
				return nil, e2
			}
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}

	cfg.HTTPPort = getEnv("HTTP_PORT", cfg.HTTPPort)
	cfg.SQLitePath = getEnv("SQLITE_PATH", cfg.SQLitePath)
	cfg.RedisAddr = getEnv("REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", cfg.RedisPassword)

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
