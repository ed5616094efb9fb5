// Package products boots the product-service process.
package products

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	productshttp "github.com/soocrates/minishop/internal/domains/products/adapters/http"
	productsmemory "github.com/soocrates/minishop/internal/domains/products/adapters/memory"
	productsapp "github.com/soocrates/minishop/internal/domains/products/application"
	"github.com/soocrates/minishop/internal/domains/products/domain"
	platformobservability "github.com/soocrates/minishop/internal/platform/observability"
)

// Run boots the inventory ledger HTTP API with the demo catalog seeded.
func Run(ctx context.Context) error {
	const serviceName = "product-service"
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

	repo := productsmemory.NewRepository()
	if err := seedCatalog(repo); err != nil {
		return fmt.Errorf("seed product catalog: %w", err)
	}
	productService := productsapp.NewService(repo)

	router := gin.New()
	router.Use(gin.Recovery(), otelgin.Middleware(serviceName))
	productshttp.NewHandler(productService).Register(router)

	addr := ":" + cfg.Port
	logger.Info("product service listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("product service exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// seedCatalog loads the fixed demo products.
func seedCatalog(repo *productsmemory.Repository) error {
	seeds := []struct {
		id    int64
		name  string
		price float64
		stock int64
	}{
		{101, "Laptop", 999.99, 10},
		{102, "Smartphone", 499.99, 20},
		{103, "Headphones", 199.99, 5},
	}
	for _, seed := range seeds {
		product, err := domain.NewProduct(seed.id, seed.name, seed.price, seed.stock)
		if err != nil {
			return err
		}
		if err := repo.Seed(product); err != nil {
			return err
		}
	}
	return nil
}
