package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	Redis    RedisConfig
	Search   SearchConfig
	Gemini   GeminiConfig
	Chat     ChatConfig
	Env      string
	LogLevel string
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host string
	Port int
}

// StorageConfig holds key-value store configuration.
// Backend is one of "memory", "file", "redis".
type StorageConfig struct {
	Backend string
	DataDir string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// SearchConfig holds Typesense configuration
type SearchConfig struct {
	Enabled bool
	URL     string
	APIKey  string
}

// GeminiConfig holds the AI collaborator configuration
type GeminiConfig struct {
	APIKey string
	Model  string
}

// ChatConfig holds mentorship chat simulation settings
type ChatConfig struct {
	AutoReplyDelay time.Duration
	PaymentDelay   time.Duration
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Storage: StorageConfig{
			Backend: getEnv("STORAGE_BACKEND", "file"),
			DataDir: getEnv("STORAGE_DATA_DIR", "./data"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Search: SearchConfig{
			Enabled: getEnvAsBool("SEARCH_ENABLED", false),
			URL:     getEnv("TYPESENSE_URL", "http://localhost:8108"),
			APIKey:  getEnv("TYPESENSE_API_KEY", "xyz"),
		},
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		},
		Chat: ChatConfig{
			AutoReplyDelay: getEnvAsDuration("CHAT_AUTO_REPLY_DELAY", 2*time.Second),
			PaymentDelay:   getEnvAsDuration("PAYMENT_CONFIRM_DELAY", 1500*time.Millisecond),
		},
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}, nil
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
