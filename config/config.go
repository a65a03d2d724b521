package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Config holds all configuration for the application
type Config struct {
	Environment Environment

	// Server configuration
	ServerPort  string
	ServerHost  string
	CORSOrigins []string

	// Database configuration. DBDriver is "postgres" or "sqlite"; for sqlite
	// DBName is the database file path.
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Redis configuration
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	RedisURL      string

	// JWT configuration
	JWTSecret string

	// Logging
	LogLevel  string
	LogFormat string

	// Matching
	RelevanceLimit     int
	SuggestionLimit    int
	RateLimitPerMinute int
}

// Defaults for the tuning knobs.
const (
	DefaultRelevanceLimit     = 100
	DefaultSuggestionLimit    = 10
	DefaultRateLimitPerMinute = 120
)

// source looks up one setting by its environment variable name.
type source func(envName string) string

// LoadConfig creates a new Config instance with values from environment variables or secrets
func LoadConfig() (*Config, error) {
	env := DetectEnvironment()

	cfg, err := load(env.source())
	if err != nil {
		return nil, fmt.Errorf("failed to load %s configuration: %w", env, err)
	}
	cfg.Environment = env

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

func load(get source) (*Config, error) {
	cfg := &Config{
		ServerPort:    withDefault(get("SERVER_PORT"), "8080"),
		ServerHost:    withDefault(get("SERVER_HOST"), "0.0.0.0"),
		DBDriver:      withDefault(get("DB_DRIVER"), "postgres"),
		DBHost:        get("DB_HOST"),
		DBPort:        withDefault(get("DB_PORT"), "5432"),
		DBUser:        get("DB_USER"),
		DBPassword:    get("DB_PASSWORD"),
		DBName:        get("DB_NAME"),
		DBSSLMode:     withDefault(get("DB_SSL_MODE"), "disable"),
		RedisHost:     get("REDIS_HOST"),
		RedisPort:     withDefault(get("REDIS_PORT"), "6379"),
		RedisPassword: get("REDIS_PASSWORD"),
		RedisURL:      get("REDIS_URL"),
		JWTSecret:     get("JWT_SECRET"),
		LogLevel:      withDefault(get("LOG_LEVEL"), "info"),
		LogFormat:     withDefault(get("LOG_FORMAT"), "json"),
	}
	if origins := get("CORS_ORIGINS"); origins != "" {
		for _, o := range strings.Split(origins, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	var err error
	if cfg.RedisDB, err = intSetting(get, "REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.RelevanceLimit, err = intSetting(get, "RELEVANCE_LIMIT", DefaultRelevanceLimit); err != nil {
		return nil, err
	}
	if cfg.SuggestionLimit, err = intSetting(get, "DEFAULT_SUGGESTION_LIMIT", DefaultSuggestionLimit); err != nil {
		return nil, err
	}
	if cfg.RateLimitPerMinute, err = intSetting(get, "RATE_LIMIT_PER_MINUTE", DefaultRateLimitPerMinute); err != nil {
		return nil, err
	}
	return cfg, nil
}

func intSetting(get source, name string, def int) (int, error) {
	raw := get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ValidationError{Field: name, Message: fmt.Sprintf("%q is not an integer", raw)}
	}
	return v, nil
}

func withDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// DatabaseDSN returns the connection string for the configured driver.
func (c *Config) DatabaseDSN() string {
	if c.DBDriver == "sqlite" {
		return c.DBName
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSSLMode)
}

// secretOrEnv prefers a Docker secret and falls back to the environment.
func secretOrEnv(envName string) string {
	if v := readSecretFor(envName); v != "" {
		return v
	}
	return os.Getenv(envName)
}

// readSecretFor maps DB_PASSWORD to the db_password secret file.
func readSecretFor(envName string) string {
	return readSecret(strings.ToLower(envName))
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}
