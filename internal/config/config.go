package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/ini.v1"
)

// Config holds the server settings. The Azure credentials are not part of
// it: they live in credstore so they stay editable at runtime.
type Config struct {
	HTTPAddr    string
	EnvFile     string
	StaticDir   string
	Log         LogConfig
	CORSOrigins []string
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string // "text" or "json"
}

// Load loads configuration from environment variables
func Load() *Config {
	// Load .env file if exists (ignore error if not found)
	_ = godotenv.Load()

	return &Config{
		HTTPAddr:  getEnv("HTTP_ADDR", ":8080"),
		EnvFile:   getEnv("ENV_FILE", ".env"),
		StaticDir: getEnv("STATIC_DIR", "static"),
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
		CORSOrigins: splitOrigins(getEnv("CORS_ORIGINS", "*")),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// splitOrigins parses a comma-separated origin list, falling back to the
// allow-all wildcard when nothing usable remains.
func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return origins
}

// LoadFromINI loads configuration from an INI file with environment variable
// override. Priority: ENV > INI > default.
func LoadFromINI(iniPath string) (*Config, error) {
	cfgFile, err := ini.Load(iniPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load INI file: %w", err)
	}

	getValue := func(envKey, iniSection, iniKey, defaultValue string) string {
		// Priority 1: Environment variable
		if value := os.Getenv(envKey); value != "" {
			return value
		}
		// Priority 2: INI file
		if value := cfgFile.Section(iniSection).Key(iniKey).String(); value != "" {
			return value
		}
		// Priority 3: Default value
		return defaultValue
	}

	return &Config{
		HTTPAddr:  getValue("HTTP_ADDR", "http", "addr", ":8080"),
		EnvFile:   getValue("ENV_FILE", "app", "env_file", ".env"),
		StaticDir: getValue("STATIC_DIR", "app", "static_dir", "static"),
		Log: LogConfig{
			Level:  getValue("LOG_LEVEL", "log", "level", "info"),
			Format: getValue("LOG_FORMAT", "log", "format", "text"),
		},
		CORSOrigins: splitOrigins(getValue("CORS_ORIGINS", "http", "cors_origins", "*")),
	}, nil
}
