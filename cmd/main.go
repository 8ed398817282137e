package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/JeongHyeonYang123/RealAssetPJT/config"
	"github.com/JeongHyeonYang123/RealAssetPJT/db"
	"github.com/JeongHyeonYang123/RealAssetPJT/internal/auth/handler"
	repo "github.com/JeongHyeonYang123/RealAssetPJT/internal/auth/repository/postgres"
	"github.com/JeongHyeonYang123/RealAssetPJT/internal/auth/service"
	"github.com/JeongHyeonYang123/RealAssetPJT/internal/metrics"
	"github.com/JeongHyeonYang123/RealAssetPJT/internal/middleware"
	"github.com/JeongHyeonYang123/RealAssetPJT/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logg := logger.New(cfg.Env)
	defer logg.Sync() //nolint:errcheck

	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		logg.Fatalw("failed to connect to database", "error", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(ctx, cfg.DBURL); err != nil {
		logg.Fatalw("failed to run migrations", "error", err)
	}

	tokenService, err := service.NewTokenService(cfg.JWTSecret, cfg.AccessExpiryMin, cfg.RefreshExpiryMin)
	if err != nil {
		logg.Fatalw("failed to build token service", "error", err)
	}

	userRepo := repo.NewPostgresRepository(pool)
	userService := service.NewUserService(userRepo, tokenService, logg)

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	authHandler := handler.NewAuthHandler(userService, collector)
	userHandler := handler.NewUserHandler(userService)
	guard := middleware.NewAuthGuard(tokenService, userRepo, collector)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.NewErrorHandler(logg),
	})
	app.Use(recover.New())
	app.Get("/metrics", metrics.Handler(registry))
	app.Use(guard.Handle())
	handler.RegisterRoutes(app, authHandler, userHandler)

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			logg.Fatalw("server stopped", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logg.Infow("shutting down")
	if err := app.Shutdown(); err != nil {
		logg.Errorw("shutdown failed", "error", err)
	}
}
