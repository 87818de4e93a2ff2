package config

import (
	"log"
	"os"
	"strconv"
)

// DefaultAPIKey is the key shipped for local development.
const DefaultAPIKey = "your-secret-key"

// Config holds process configuration.
type Config struct {
	Env         string
	LibraryPort string
	CinemaPort  string
	APIKey      string
	PageSize    int
	MaxPageSize int
}

// Load reads configuration from the environment.
func Load() *Config {
	pageSize, _ := strconv.Atoi(getEnv("PAGE_SIZE", "25"))
	maxPageSize, _ := strconv.Atoi(getEnv("MAX_PAGE_SIZE", "50"))

	env := getEnv("APP_ENV", "development")
	apiKey := getEnv("API_KEY", DefaultAPIKey)
	if env == "production" && apiKey == DefaultAPIKey {
		log.Println("WARNING: production is running with the default API key; set API_KEY")
	}

	return &Config{
		Env:         env,
		LibraryPort: getEnv("LIBRARY_PORT", "8080"),
		CinemaPort:  getEnv("CINEMA_PORT", "8081"),
		APIKey:      apiKey,
		PageSize:    pageSize,
		MaxPageSize: maxPageSize,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
