package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the runtime configuration, read from the environment with
// an optional .env file for local development.
type Config struct {
	Port         string
	DBPath       string
	JWTSecret    string
	LocationsCSV string // snapshot file re-imported by the refresh job
	MovementsCSV string
	RefreshSpec  string // cron spec; empty disables the refresh job
}

// Load reads the configuration.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Printf("[Config] loaded .env")
	}

	return &Config{
		Port:         getEnv("PORT", ":8080"),
		DBPath:       getEnv("DB_PATH", "./data/cowtrack.db"),
		JWTSecret:    getEnv("JWT_SECRET", "change-me-in-production"),
		LocationsCSV: getEnv("LOCATIONS_CSV", ""),
		MovementsCSV: getEnv("MOVEMENTS_CSV", ""),
		RefreshSpec:  getEnv("REFRESH_CRON", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
