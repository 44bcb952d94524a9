package main

import (
	stdlog "log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"

	"contentsift/internal/adapters/cache"
	"contentsift/internal/adapters/web"
	"contentsift/internal/config"
	"contentsift/internal/usecases"
	"contentsift/pkg/log"
)

const configPath = "config/server.yaml"

func main() {
	// .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		stdlog.Fatalf("Failed to load configuration: %v", err)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		stdlog.Fatalf("Failed to parse log level %q: %v", cfg.LogLevel, err)
	}
	logger := log.New(level, log.NewStdout())
	log.SetDefault(logger)
	defer logger.Close()

	// Adapters
	store := cache.NewMemoryStore(cfg.CacheTTL)

	// Use cases
	classifyX := usecases.NewClassifyXUseCase(store)
	classifyYouTube := usecases.NewClassifyYouTubeUseCase(store)

	// Web layer
	handlers := web.NewHandlers(classifyX, classifyYouTube)
	rateLimiter := web.NewRateLimiter(cfg.RateLimitPerMin, time.Minute)

	app := fiber.New(fiber.Config{
		AppName: "Contentsift",
	})

	app.Use(recover.New())
	app.Use(requestid.New(web.RequestIDConfig()))
	app.Use(web.RequestIDToContextMiddleware())
	app.Use(web.RequestLoggerMiddleware())

	web.SetupRoutes(app, handlers, rateLimiter)

	logger.Info("starting server", "port", cfg.Port, "pid", os.Getpid())
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Fatal("server stopped", "error", err)
		os.Exit(1)
	}
}
