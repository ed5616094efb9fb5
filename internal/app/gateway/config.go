package gateway

import (
	"os"
	"strings"
)

// Config carries environment-driven settings for the gateway process.
type Config struct {
	Port              string
	UserServiceURL    string
	ProductServiceURL string
	OrderServiceURL   string
	StressServiceURL  string
}

// LoadConfig reads environment variables and applies defaults.
func LoadConfig() Config {
	return Config{
		Port:              envDefault("PORT", "8080"),
		UserServiceURL:    envDefault("USER_SERVICE_URL", "http://user_service:8081"),
		ProductServiceURL: envDefault("PRODUCT_SERVICE_URL", "http://product_service:8082"),
		OrderServiceURL:   envDefault("ORDER_SERVICE_URL", "http://order_service:8083"),
		StressServiceURL:  envDefault("STRESS_SERVICE_URL", "http://cpu_stress_service:8084"),
	}
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}
