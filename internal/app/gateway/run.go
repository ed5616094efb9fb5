// Package gateway boots the edge gateway process.
package gateway

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	gatewayproxy "github.com/soocrates/minishop/internal/gateway"
	platformobservability "github.com/soocrates/minishop/internal/platform/observability"
)

// Run boots the prefix-routing edge gateway.
func Run(ctx context.Context) error {
	const serviceName = "gateway-service"
	cfg := LoadConfig()
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	proxy, err := gatewayproxy.NewProxy(gatewayproxy.Backends{
		UserServiceURL:    cfg.UserServiceURL,
		ProductServiceURL: cfg.ProductServiceURL,
		OrderServiceURL:   cfg.OrderServiceURL,
		StressServiceURL:  cfg.StressServiceURL,
	}, gatewayproxy.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("build gateway proxy: %w", err)
	}

	router := gatewayproxy.Router(proxy, otelgin.Middleware(serviceName))

	addr := ":" + cfg.Port
	logger.Info("gateway listening",
		slog.String("addr", addr),
		slog.String("user_service", cfg.UserServiceURL),
		slog.String("product_service", cfg.ProductServiceURL),
		slog.String("order_service", cfg.OrderServiceURL),
		slog.String("stress_service", cfg.StressServiceURL))
	if err := router.Run(addr); err != nil {
		logger.Error("gateway exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}
