package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration loaded from environment
// variables.
type Config struct {
	Port            string
	DataPath        string // root folder holding one subfolder per region
	RegionsManifest string // optional YAML manifest overriding dataset paths
	AuthSecret      string // enables bearer auth when non-empty
	DefaultMinScore float64
	RateLimit       int
	RateWindow      time.Duration
}

// Load reads configuration from environment variables with defaults.
func Load() *Config {
	return &Config{
		Port:            getEnv("PORT", ":8080"),
		DataPath:        getEnv("DATA_PATH", "./data/outputs"),
		RegionsManifest: getEnv("REGIONS_MANIFEST", ""),
		AuthSecret:      getEnv("AUTH_SECRET", ""),
		DefaultMinScore: getEnvFloat("MIN_SCORE_DEFAULT", 0.45),
		RateLimit:       getEnvInt("RATE_LIMIT", 100),
		RateWindow:      time.Duration(getEnvInt("RATE_WINDOW_SECONDS", 60)) * time.Second,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}
