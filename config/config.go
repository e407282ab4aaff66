package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DriverFile     = "file"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Config holds application configuration
type Config struct {
	Port           string
	Environment    string
	LogLevel       string
	CORSOrigins    []string
	MetricsEnabled bool
	Store          StoreConfig
}

// StoreConfig selects and configures the document backend.
type StoreConfig struct {
	Driver      string
	DataFile    string
	DatabaseURL string
	RedisURL    string
	Key         string
}

// Load reads configuration from a .env file, if present, and the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:           getEnv("PORT", "3001"),
		Environment:    getEnv("NODE_ENV", getEnv("APP_ENV", "development")),
		LogLevel:       strings.ToLower(getEnv("LOG_LEVEL", "info")),
		CORSOrigins:    splitOrigins(getEnv("CORS_ORIGIN", "*")),
		MetricsEnabled: getBool("METRICS_ENABLED", true),
		Store: StoreConfig{
			Driver:      strings.ToLower(getEnv("STORE_DRIVER", DriverFile)),
			DataFile:    getEnv("DATA_FILE", "data.json"),
			DatabaseURL: getEnv("DATABASE_URL", ""),
			RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379"),
			Key:         getEnv("STORE_KEY", "yahudim"),
		},
	}

	switch cfg.Store.Driver {
	case DriverFile, DriverPostgres, DriverRedis:
	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Store.Driver)
	}
	return cfg, nil
}

// AllowsAnyOrigin reports whether CORS is open to every origin.
func (c *Config) AllowsAnyOrigin() bool {
	for _, o := range c.CORSOrigins {
		if o == "*" {
			return true
		}
	}
	return false
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func getEnv(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return fallback
	}
	return v
}
