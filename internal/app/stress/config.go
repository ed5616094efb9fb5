package stress

import (
	"os"
	"strings"
)

// Config carries environment-driven settings for the stress-service process.
type Config struct {
	Port string
}

// LoadConfig reads environment variables and applies defaults.
func LoadConfig() Config {
	return Config{
		Port: envDefault("PORT", "8084"),
	}
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}
