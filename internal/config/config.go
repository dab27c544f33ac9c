// Package config handles application configuration from environment variables.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Default external endpoints and settings.
const (
	DefaultCatalogBaseURL   = "https://api.themoviedb.org/3"
	DefaultTranslateBaseURL = "https://translate.googleapis.com"
)

// Config holds the application configuration.
type Config struct {
	CatalogAPIKey    string
	CatalogBaseURL   string
	TranslateBaseURL string
	DatabasePath     string
	ListenAddr       string
	Language         string
	TranslateTarget  string
	LogLevel         string
}

// Load reads configuration from the environment, after loading a .env file
// if one is present in the working directory.
func Load() (*Config, error) {
	_ = godotenv.Load()

	apiKey := os.Getenv("TMDB_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("TMDB_API_KEY is required")
	}

	return &Config{
		CatalogAPIKey:    apiKey,
		CatalogBaseURL:   envOrDefault("TMDB_BASE_URL", DefaultCatalogBaseURL),
		TranslateBaseURL: envOrDefault("TRANSLATE_BASE_URL", DefaultTranslateBaseURL),
		DatabasePath:     envOrDefault("DATABASE_PATH", "./data/movies.db"),
		ListenAddr:       envOrDefault("LISTEN_ADDR", ":8080"),
		Language:         envOrDefault("LANGUAGE", "en-US"),
		TranslateTarget:  envOrDefault("TRANSLATE_TARGET", "id"),
		LogLevel:         envOrDefault("LOG_LEVEL", "info"),
	}, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
