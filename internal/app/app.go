package app

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"go.uber.org/zap"

	"github.com/RobertCastro/e-commerce-payment-service/internal/config"
	"github.com/RobertCastro/e-commerce-payment-service/internal/db"
	httpdelivery "github.com/RobertCastro/e-commerce-payment-service/internal/delivery/http"
	"github.com/RobertCastro/e-commerce-payment-service/internal/logging"
	"github.com/RobertCastro/e-commerce-payment-service/internal/metrics"
)

type App struct {
	f   *fiber.App
	cfg config.Config
	log *zap.Logger
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}

	pool, err := db.NewPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("db connect failed: %w", err)
	}

	f := fiber.New(fiber.Config{
		AppName: "e-commerce-payment-service",
	})

	f.Use(recover.New())
	f.Use(logger.New())

	httpdelivery.RegisterRoutes(f, cfg, pool, log, metrics.New())

	return &App{f: f, cfg: cfg, log: log}, nil
}

func (a *App) Run() error {
	a.log.Info("listening", zap.String("port", a.cfg.Port))
	return a.f.Listen(":" + a.cfg.Port)
}
