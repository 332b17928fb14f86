package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string

	// Upstream completion API
	OpenAIAPIKey  string
	OpenAIBaseURL string

	// Frontend allowed by CORS
	AllowedOrigin string

	// Logging
	LogLevel string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		Port:          getEnvOrDefault("PORT", "5000"),
		Env:           getEnvOrDefault("ENV", getEnvOrDefault("NODE_ENV", "development")),
		OpenAIAPIKey:  mustGetEnv("OPENAI_API_KEY"),
		OpenAIBaseURL: getEnvOrDefault("OPENAI_BASE_URL", "https://api.openai.com"),
		AllowedOrigin: getEnvOrDefault("ALLOWED_ORIGIN", "https://wellmade-ai.vercel.app"),
		LogLevel:      getEnvOrDefault("LOG_LEVEL", "info"),
	}

	return cfg
}

func mustGetEnv(key string) string {
	val := os.Getenv(key)
	if val == "" {
		panic(fmt.Sprintf("required environment variable %s is not set", key))
	}
	return val
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}
