package orders

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config carries environment-driven settings for the order-service process.
type Config struct {
	Port              string
	UserServiceURL    string
	ProductServiceURL string
	UpstreamTimeout   time.Duration
	MaxQuantity       int64
}

// LoadConfig reads environment variables, applies defaults, and validates
// basic constraints.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:              envDefault("PORT", "8083"),
		UserServiceURL:    envDefault("USER_SERVICE_URL", "http://user_service:8081"),
		ProductServiceURL: envDefault("PRODUCT_SERVICE_URL", "http://product_service:8082"),
		UpstreamTimeout:   3 * time.Second,
	}
	if raw := strings.TrimSpace(os.Getenv("UPSTREAM_TIMEOUT_SECONDS")); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			return Config{}, fmt.Errorf("UPSTREAM_TIMEOUT_SECONDS must be a positive integer")
		}
		cfg.UpstreamTimeout = time.Duration(seconds) * time.Second
	}
	if raw := strings.TrimSpace(os.Getenv("ORDER_MAX_QUANTITY")); raw != "" {
		max, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || max < 0 {
			return Config{}, fmt.Errorf("ORDER_MAX_QUANTITY must be a non-negative integer")
		}
		cfg.MaxQuantity = max
	}
	return cfg, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}
