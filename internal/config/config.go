package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServiceName string
	ServerPort  int
	LogLevel    string

	GeminiAPIKey       string
	GeminiChatModel    string
	GeminiSummaryModel string

	SessionTTL time.Duration
}

// Load reads configuration from the environment, optionally seeded from a
// .env file. GEMINI_API_KEY may be empty: the assistant then runs in
// permanent-fallback mode instead of failing startup.
func Load() Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	return Config{
		ServiceName: EnvDefault("SERVICE_NAME", "storefront"),
		ServerPort:  EnvIntDefault("SERVER_PORT", 8080),
		LogLevel:    EnvDefault("LOG_LEVEL", "info"),

		GeminiAPIKey:       os.Getenv("GEMINI_API_KEY"),
		GeminiChatModel:    EnvDefault("GEMINI_CHAT_MODEL", "gemini-3-flash-preview"),
		GeminiSummaryModel: EnvDefault("GEMINI_SUMMARY_MODEL", "gemini-3-pro-preview"),

		SessionTTL: EnvDurationDefault("SESSION_TTL", 30*time.Minute),
	}
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func EnvDurationDefault(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
