// Package orders boots the order-service process.
package orders

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/soocrates/minishop/internal/clients/http/inventory"
	"github.com/soocrates/minishop/internal/clients/http/userdirectory"
	ordershttp "github.com/soocrates/minishop/internal/domains/orders/adapters/http"
	ordersmemory "github.com/soocrates/minishop/internal/domains/orders/adapters/memory"
	ordersobs "github.com/soocrates/minishop/internal/domains/orders/adapters/observability"
	ordersapp "github.com/soocrates/minishop/internal/domains/orders/application"
	platformobservability "github.com/soocrates/minishop/internal/platform/observability"
)

// Run boots the order coordinator HTTP API with observability and the two
// remote-call adapters wired.
func Run(ctx context.Context) error {
	const serviceName = "order-service"
	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
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

	users, err := userdirectory.New(cfg.UserServiceURL, userdirectory.WithTimeout(cfg.UpstreamTimeout))
	if err != nil {
		return fmt.Errorf("build user directory client: %w", err)
	}
	ledger, err := inventory.New(cfg.ProductServiceURL, inventory.WithTimeout(cfg.UpstreamTimeout))
	if err != nil {
		return fmt.Errorf("build inventory ledger client: %w", err)
	}

	coreService := ordersapp.NewService(ordersmemory.NewRepository(), users, ledger,
		ordersapp.WithLogger(logger),
		ordersapp.WithMaxQuantity(cfg.MaxQuantity),
	)
	orderService := ordersobs.New(
		coreService,
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.domains.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.domains.orders.application")),
	)

	router := gin.New()
	router.Use(gin.Recovery(), otelgin.Middleware(serviceName))
	ordershttp.NewHandler(orderService).Register(router)

	addr := ":" + cfg.Port
	logger.Info("order service listening",
		slog.String("addr", addr),
		slog.String("user_service", cfg.UserServiceURL),
		slog.String("product_service", cfg.ProductServiceURL))
	if err := router.Run(addr); err != nil {
		logger.Error("order service exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}
