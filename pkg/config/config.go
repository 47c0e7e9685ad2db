package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		URI    string `yaml:"uri"`
		DBName string `yaml:"dbname"`
	} `yaml:"database"`
	JWT struct {
		Secret string `yaml:"secret"`
	} `yaml:"jwt"`
	GIS struct {
		BaseURL               string `yaml:"base_url"`
		RequestTimeoutSeconds int    `yaml:"request_timeout_seconds"`
		MaxPages              int    `yaml:"max_pages"`
		UserAgent             string `yaml:"user_agent"`
	} `yaml:"gis"`
	Cache struct {
		DefaultTTLSeconds int `yaml:"default_ttl_seconds"`
	} `yaml:"cache"`
}

// RequestTimeout returns the GIS request timeout as a duration.
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.GIS.RequestTimeoutSeconds) * time.Second
}

// DefaultTTL returns the cache TTL as a duration.
func (c *Config) DefaultTTL() time.Duration {
	return time.Duration(c.Cache.DefaultTTLSeconds) * time.Second
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %v", err)
	}

	// Override with environment variables if set
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		cfg.Database.URI = uri
	}
	if dbname := os.Getenv("DB_NAME"); dbname != "" {
		cfg.Database.DBName = dbname
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		cfg.JWT.Secret = secret
	}
	if baseURL := os.Getenv("GIS_BASE_URL"); baseURL != "" {
		cfg.GIS.BaseURL = baseURL
	}
	if port := os.Getenv("SERVER_PORT"); port != "" {
		portNum, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid SERVER_PORT value: %v", err)
		}
		cfg.Server.Port = portNum
	}

	// Set default values
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.GIS.RequestTimeoutSeconds == 0 {
		cfg.GIS.RequestTimeoutSeconds = 30
	}
	if cfg.GIS.MaxPages == 0 {
		cfg.GIS.MaxPages = 20
	}
	if cfg.GIS.UserAgent == "" {
		cfg.GIS.UserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"
	}
	if cfg.Cache.DefaultTTLSeconds == 0 {
		cfg.Cache.DefaultTTLSeconds = 30
	}

	// Validation
	if cfg.Database.URI == "" {
		return nil, fmt.Errorf("MONGO_URI is required")
	}
	if cfg.Database.DBName == "" {
		return nil, fmt.Errorf("DB_NAME is required")
	}
	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.GIS.BaseURL == "" {
		return nil, fmt.Errorf("GIS_BASE_URL is required")
	}

	return &cfg, nil
}
