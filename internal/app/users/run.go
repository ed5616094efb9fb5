// Package users boots the user-service process.
package users

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	usershttp "github.com/soocrates/minishop/internal/domains/users/adapters/http"
	usersmemory "github.com/soocrates/minishop/internal/domains/users/adapters/memory"
	usersapp "github.com/soocrates/minishop/internal/domains/users/application"
	"github.com/soocrates/minishop/internal/domains/users/domain"
	platformobservability "github.com/soocrates/minishop/internal/platform/observability"
)

// Run boots the user directory HTTP API with the demo directory seeded.
func Run(ctx context.Context) error {
	const serviceName = "user-service"
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

	repo := usersmemory.NewRepository()
	if err := seedDirectory(repo); err != nil {
		return fmt.Errorf("seed user directory: %w", err)
	}
	userService := usersapp.NewService(repo)

	router := gin.New()
	router.Use(gin.Recovery(), otelgin.Middleware(serviceName))
	usershttp.NewHandler(userService).Register(router)

	addr := ":" + cfg.Port
	logger.Info("user service listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("user service exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

// seedDirectory loads the fixed demo users.
func seedDirectory(repo *usersmemory.Repository) error {
	seeds := []struct {
		id     int64
		name   string
		email  string
		wallet float64
	}{
		{1, "Alice", "alice@example.com", 100.0},
		{2, "Bob", "bob@example.com", 50.0},
		{3, "Charlie", "charlie@example.com", 1200.0},
	}
	for _, seed := range seeds {
		user, err := domain.NewUser(seed.id, seed.name, seed.email, seed.wallet)
		if err != nil {
			return err
		}
		if err := repo.Seed(user); err != nil {
			return err
		}
	}
	return nil
}
