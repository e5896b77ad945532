package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"highscore-backend/internal/database"
	"highscore-backend/internal/handlers"
	"highscore-backend/internal/repository"
	"highscore-backend/internal/routes"
	"highscore-backend/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve()
		},
	}
}

func serve() error {
	db, closeDB, err := openDatabase(cfg.Database)
	if err != nil {
		return err
	}
	defer closeDB()

	gameRepo := repository.NewGameRepository(db, cfg.Highscore.DeletePolicy)
	genreRepo := repository.NewGenreRepository(db)
	scoreRepo := repository.NewScoreRepository(db, cfg.Highscore.FeedDedup)
	highscoreService := services.NewHighscoreService(gameRepo, genreRepo, scoreRepo, log)

	var presigner handlers.CoverPresigner
	if cfg.MinIO.Enabled {
		coverStore, err := services.NewCoverStore(&cfg.MinIO, log)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := coverStore.EnsureBucket(ctx); err != nil {
			log.WithError(err).Warn("Cover bucket is not ready, uploads may fail")
		}
		cancel()

		if hs, ok := highscoreService.(interface{ SetCoverRemover(services.CoverRemover) }); ok {
			hs.SetCoverRemover(coverStore)
		}
		presigner = coverStore
	} else {
		log.Info("Cover storage disabled, presign endpoint will answer 503")
	}

	app := fiber.New(fiber.Config{
		AppName:               "Highscore Backend API",
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		IdleTimeout:           120 * time.Second,
		DisableStartupMessage: false,
		ErrorHandler:          customErrorHandler(log),
	})

	setupMiddleware(app)

	app.Get("/health", healthCheckHandler(db))

	// Swagger documentation
	app.Get("/swagger/*", fiberSwagger.WrapHandler)

	routes.Setup(app,
		handlers.NewGameHandler(highscoreService, log),
		handlers.NewScoreHandler(highscoreService, log),
		handlers.NewGenreHandler(highscoreService, log),
		handlers.NewUploadHandler(presigner, log),
	)

	go gracefulShutdown(app, log)

	log.Infof("Highscore Backend API starting on port %s", cfg.Server.Port)
	if err := app.Listen(":" + cfg.Server.Port); err != nil {
		log.WithError(err).Error("Failed to start HTTP server")
		return err
	}
	return nil
}

func setupMiddleware(app *fiber.App) {
	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
	}))

	app.Use(logger.New(logger.Config{
		Format:     "${time} | ${status} | ${latency} | ${ip} | ${method} | ${path} | ${error}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowMethods:     "GET, POST, DELETE, OPTIONS",
		AllowCredentials: false,
		MaxAge:           86400, // 24 hours
	}))
}

func healthCheckHandler(db *database.Database) fiber.Handler {
	return func(c *fiber.Ctx) error {
		dbStatus := "healthy"
		if err := db.HealthCheck(); err != nil {
			dbStatus = "unhealthy"
		}

		return c.JSON(fiber.Map{
			"status":    "ok",
			"service":   "highscore-backend",
			"version":   "1.0.0",
			"database":  dbStatus,
			"driver":    db.Driver(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func customErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		log.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
			"status": code,
		}).Error("Request error")

		return c.Status(code).JSON(fiber.Map{
			"status":  "error",
			"code":    code,
			"message": err.Error(),
		})
	}
}

func gracefulShutdown(app *fiber.App, log *logrus.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	if err := app.ShutdownWithTimeout(30 * time.Second); err != nil {
		log.Errorf("Error during shutdown: %v", err)
	}

	log.Info("Server shutdown complete")
}
