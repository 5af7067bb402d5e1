// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	Session     SessionConfig
	Admin       AdminConfig
	I18n        I18nConfig
	Inventory   InventoryConfig
}

type ServerConfig struct {
	Port          string
	Host          string
	ReadTimeout   int
	WriteTimeout  int
	IdleTimeout   int
	TemplatesGlob string
}

type DatabaseConfig struct {
	Driver   string // "sqlite" (default) or "postgres"
	Path     string // sqlite database file
	Host     string
	Port     string
	User     string
	Password string
	Database string
	SSLMode  string
	LogLevel string
}

type SessionConfig struct {
	Secret     string
	CookieName string
	MaxAge     int // in seconds
}

type AdminConfig struct {
	Username     string
	Password     string
	PasswordHash string // bcrypt; takes precedence over Password when set
}

type I18nConfig struct {
	DefaultLocale string
	LocalesPath   string
}

type InventoryConfig struct {
	DefaultType string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:          getEnv("SERVER_PORT", "8080"),
			Host:          getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:   getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout:  getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:   getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
			TemplatesGlob: getEnv("TEMPLATES_GLOB", "./web/templates/*.html"),
		},
		Database: DatabaseConfig{
			Driver:   getEnv("DB_DRIVER", "sqlite"),
			Path:     getEnv("DB_PATH", "./data/inventory.db"),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "makhzan"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
			LogLevel: getEnv("DB_LOG_LEVEL", "silent"),
		},
		Session: SessionConfig{
			Secret:     getEnv("SESSION_SECRET", "fallback_secret_key"),
			CookieName: getEnv("SESSION_COOKIE_NAME", "makhzan_session"),
			MaxAge:     getEnvAsInt("SESSION_MAX_AGE", 86400),
		},
		Admin: AdminConfig{
			Username:     getEnv("ADMIN_USERNAME", "admin"),
			Password:     getEnv("ADMIN_PASSWORD", "123"),
			PasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),
		},
		I18n: I18nConfig{
			DefaultLocale: getEnv("DEFAULT_LOCALE", "ar"),
			LocalesPath:   getEnv("LOCALES_PATH", "./internal/i18n/locales"),
		},
		Inventory: InventoryConfig{
			DefaultType: getEnv("DEFAULT_PRODUCT_TYPE", "كباس"),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.Environment == "production" {
		if c.Session.Secret == "fallback_secret_key" {
			return fmt.Errorf("session secret must be changed in production")
		}
		if c.Admin.PasswordHash == "" && c.Admin.Password == "123" {
			return fmt.Errorf("admin password must be changed in production")
		}
	}

	if c.Database.Driver != "sqlite" && c.Database.Driver != "postgres" {
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(strings.ToLower(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
