// Package gateway implements the edge prefix router. Routing is pure
// string-prefix dispatch: no retries, no load balancing, no rewrites.
package gateway

import "strings"

// Backends holds the base URL of every routable service.
type Backends struct {
	UserServiceURL    string
	ProductServiceURL string
	OrderServiceURL   string
	StressServiceURL  string
}

// route names, used for proxy lookup and logging.
const (
	routeUsers    = "users"
	routeProducts = "products"
	routeOrders   = "orders"
	routeStress   = "stress"
)

// resolve maps a request path to a backend route by its first segment.
// The user service also owns the login and register endpoints.
func resolve(path string) (string, bool) {
	trimmed := strings.TrimPrefix(path, "/")
	switch {
	case hasSegmentPrefix(trimmed, "users"), hasSegmentPrefix(trimmed, "login"), hasSegmentPrefix(trimmed, "register"):
		return routeUsers, true
	case hasSegmentPrefix(trimmed, "products"):
		return routeProducts, true
	case hasSegmentPrefix(trimmed, "orders"):
		return routeOrders, true
	case hasSegmentPrefix(trimmed, "stress"):
		return routeStress, true
	default:
		return "", false
	}
}

func hasSegmentPrefix(path, segment string) bool {
	if !strings.HasPrefix(path, segment) {
		return false
	}
	rest := path[len(segment):]
	return rest == "" || strings.HasPrefix(rest, "/") || strings.HasPrefix(rest, "?")
}
