package config

import "os"

// Config is the serving shell's configuration. The client itself
// takes no configuration; all application state lives in the browser.
type Config struct {
	Addr    string
	BaseURL string
	Env     string
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads configuration from the environment with defaults for
// local development.
func Load() Config {
	return Config{
		Addr:    getEnv("GLRS_ADDR", ":8000"),
		BaseURL: getEnv("GLRS_BASE_URL", "http://localhost:8000"),
		Env:     getEnv("GLRS_ENV", "development"),
	}
}
