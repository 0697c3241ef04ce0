package config

import "os"

type Config struct {
	Port         string
	DatabasePath string
	Env          string
	HomeState    string
}

// Load loads configuration from environment with sensible defaults.
// Precedence: explicit env var > .env file (if loaded by caller) > default.
func Load() Config {
	cfg := Config{}
	cfg.Port = getEnv("PORT", "8080")
	cfg.DatabasePath = getEnv("DATABASE_PATH", "billing.db")
	cfg.Env = getEnv("APP_ENV", "development")
	// Home state decides intra-state (CGST+SGST) vs inter-state (IGST) tax treatment.
	cfg.HomeState = getEnv("HOME_STATE", "Tamil Nadu")
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
