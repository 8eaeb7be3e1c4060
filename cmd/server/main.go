package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/weathermate/backend/internal/delivery/http"
	"github.com/weathermate/backend/internal/repository/postgres"
	"github.com/weathermate/backend/internal/service"
	"github.com/weathermate/backend/pkg/config"
	"github.com/weathermate/backend/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logger.Level); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	// Database connection; runs with in-memory history when unavailable
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var repo service.LookupRepository
	var pool *pgxpool.Pool
	if cfg.Database.URL != "" {
		pool, err = pgxpool.New(ctx, cfg.Database.URL)
	}
	if pool == nil || err != nil {
		if err != nil {
			log.Warn("could not connect to database, using in-memory history", zap.Error(err))
		} else {
			log.Warn("no DATABASE_URL configured, using in-memory history")
		}
		repo = postgres.NewMockRepository()
	} else {
		defer pool.Close()
		pgRepo := postgres.NewPostgresRepository(pool)
		if err := pgRepo.EnsureSchema(ctx); err != nil {
			log.Warn("database unreachable, using in-memory history", zap.Error(err))
			repo = postgres.NewMockRepository()
		} else {
			log.Info("connected to PostgreSQL")
			repo = pgRepo
		}
	}

	// Dependency Injection: Services
	weatherSvc := service.NewWeatherService(cfg.Weather, log)
	engine := service.NewRecommendationEngine(service.DefaultRuleSet())
	adviceSvc := service.NewAdviceService(weatherSvc, engine, repo, log)

	// Fiber App
	app := fiber.New(fiber.Config{
		AppName:      "WeatherMate API v1.0",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Routes
	http.SetupRoutes(app, adviceSvc, repo)

	go func() {
		log.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := app.Listen(":" + cfg.Server.Port); err != nil {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	// Let pending lookup saves finish before the pool closes
	adviceSvc.WaitBackground()
	log.Info("server exited gracefully")
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
