// Package stress boots the CPU stress-service process.
package stress

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	platformobservability "github.com/soocrates/minishop/internal/platform/observability"
	stresssvc "github.com/soocrates/minishop/internal/stress"
)

// Run boots the CPU load generator HTTP API.
func Run(ctx context.Context) error {
	const serviceName = "cpu-stress-service"
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

	router := gin.New()
	router.Use(gin.Recovery(), otelgin.Middleware(serviceName))
	stresssvc.NewHandler(stresssvc.NewBurner()).Register(router)

	addr := ":" + cfg.Port
	logger.Info("stress service listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("stress service exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}
