package gateway

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/soocrates/minishop/internal/gateway/middleware"
	apierrors "github.com/soocrates/minishop/internal/shared/errors"
)

// Proxy dispatches requests to backend services by path prefix.
type Proxy struct {
	proxies map[string]*httputil.ReverseProxy
	logger  *slog.Logger
}

type Option func(*Proxy)

func WithLogger(logger *slog.Logger) Option {
	return func(p *Proxy) {
		p.logger = logger
	}
}

// NewProxy builds one reverse proxy per backend. An unreachable backend
// surfaces as a 503 problem response; the gateway never retries.
func NewProxy(backends Backends, opts ...Option) (*Proxy, error) {
	targets := map[string]string{
		routeUsers:    backends.UserServiceURL,
		routeProducts: backends.ProductServiceURL,
		routeOrders:   backends.OrderServiceURL,
		routeStress:   backends.StressServiceURL,
	}
	p := &Proxy{proxies: make(map[string]*httputil.ReverseProxy, len(targets))}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	for route, raw := range targets {
		target, err := url.Parse(raw)
		if err != nil || target.Scheme == "" || target.Host == "" {
			return nil, fmt.Errorf("invalid %s backend URL %q", route, raw)
		}
		proxy := httputil.NewSingleHostReverseProxy(target)
		proxy.ErrorHandler = p.backendDown(route)
		p.proxies[route] = proxy
	}
	return p, nil
}

// Handler is the catch-all gin handler: resolve the prefix, forward, or 404.
func (p *Proxy) Handler(c *gin.Context) {
	route, ok := resolve(c.Request.URL.Path)
	if !ok {
		apierrors.Respond(c, apierrors.ErrNotFound.WithDetail("route not found"))
		return
	}
	p.proxies[route].ServeHTTP(c.Writer, c.Request)
}

func (p *Proxy) backendDown(route string) func(http.ResponseWriter, *http.Request, error) {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		if p.logger != nil {
			p.logger.Warn("backend unreachable",
				slog.String("route", route),
				slog.String("path", r.URL.Path),
				slog.String("error", err.Error()))
		}
		problem := apierrors.NewUpstreamUnavailableProblem(route).WithInstance(r.URL.Path)
		w.Header().Set("Content-Type", apierrors.ContentTypeProblemJSON)
		w.WriteHeader(problem.Status)
		_ = json.NewEncoder(w).Encode(problem)
	}
}

// Router assembles the gateway gin engine: request-id middleware, its own
// status endpoint, and the prefix dispatcher for everything else.
func Router(p *Proxy, mw ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID())
	router.Use(mw...)
	router.GET("/status", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"service": "gateway-service", "status": "up"})
	})
	router.NoRoute(p.Handler)
	return router
}
