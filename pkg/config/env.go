package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// EnvFile is the dotenv file read for local development.
const EnvFile = ".env.local"

// LoadEnv loads environment variables from .env.local if APP_ENV is "local".
// It reports whether the file was loaded; a missing file is returned as the error
// and callers fall back to the system environment.
func LoadEnv() (bool, error) {
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "development" // Default to development if not set
		os.Setenv("APP_ENV", appEnv)
	}

	if appEnv != "local" {
		return false, nil
	}
	if err := godotenv.Load(EnvFile); err != nil {
		return false, fmt.Errorf("load %s: %w", EnvFile, err)
	}
	return true, nil
}

const (
	DefaultPort           = "8081"
	DefaultCartStorageKey = "cart"
	DefaultCatalogSize    = 105
	DefaultCatalogSeed    = 42
)

var defaultAllowedOrigins = []string{"http://localhost:3000", "http://localhost:3001"}

// DBConfig holds the PostgreSQL connection settings.
type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

// Enabled reports whether a database was configured at all.
func (c DBConfig) Enabled() bool {
	return c.Host != ""
}

// DSN renders the lib/pq connection string.
func (c DBConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Host, c.Port, c.User, c.Password, c.Name)
}

// Config is the storefront configuration read from the environment.
type Config struct {
	AppEnv         string
	Port           string
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	DB             DBConfig
	CartStorageKey string
	CatalogSize    int
	CatalogSeed    int64
	AllowedOrigins []string

	// EnvFileLoaded and EnvFileErr record the outcome of LoadEnv for logging.
	EnvFileLoaded bool
	EnvFileErr    error
}

// RedisEnabled reports whether carts should be stored in Redis.
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

// IsLocal reports whether the process runs on a developer machine.
func (c *Config) IsLocal() bool {
	return c.AppEnv == "local" || c.AppEnv == "development"
}

// Load reads the configuration, loading .env.local first when APP_ENV is "local".
func Load() (*Config, error) {
	loaded, envErr := LoadEnv()

	cfg := &Config{
		EnvFileLoaded:  loaded,
		EnvFileErr:     envErr,
		AppEnv:         os.Getenv("APP_ENV"),
		Port:           getEnv("PORT", DefaultPort),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		RedisPassword:  os.Getenv("REDIS_PASSWORD"),
		CartStorageKey: getEnv("CART_STORAGE_KEY", DefaultCartStorageKey),
		AllowedOrigins: defaultAllowedOrigins,
		DB: DBConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
		},
	}

	var err error
	if cfg.RedisDB, err = getInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.CatalogSize, err = getInt("CATALOG_SIZE", DefaultCatalogSize); err != nil {
		return nil, err
	}
	if cfg.CatalogSize < 1 {
		return nil, fmt.Errorf("CATALOG_SIZE must be positive, got %d", cfg.CatalogSize)
	}
	seed, err := getInt("CATALOG_SEED", DefaultCatalogSeed)
	if err != nil {
		return nil, err
	}
	cfg.CatalogSeed = int64(seed)

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		cfg.AllowedOrigins = splitList(origins)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
