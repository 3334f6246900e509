package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "movia-backend/docs"
	"movia-backend/internal/database"
	"movia-backend/internal/routes"
	"movia-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	fiberSwagger "github.com/swaggo/fiber-swagger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the catalog HTTP API",
	Long: `Serve exposes the synced catalog, the sync trigger, catalog statistics
and user recommendations over HTTP. Swagger UI is available at /swagger/.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := setupLogger()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		app, err := newApplication(cfg, log, nil)
		if err != nil {
			return err
		}
		defer app.Close()

		server := newServer(app)

		go gracefulShutdown(server, log)

		log.Infof("Movia API starting on port %s", cfg.Server.Port)
		return server.Listen(":" + cfg.Server.Port)
	},
}

func init() {
	serveCmd.Flags().String("port", "", "HTTP port (overrides SERVER_PORT)")
	_ = viper.BindPFlag("server.port", serveCmd.Flags().Lookup("port"))
	rootCmd.AddCommand(serveCmd)
}

func newServer(app *application) *fiber.App {
	server := fiber.New(fiber.Config{
		AppName:               "Movia API",
		ReadTimeout:           app.cfg.Server.ReadTimeout,
		WriteTimeout:          app.cfg.Server.WriteTimeout,
		IdleTimeout:           120 * time.Second,
		DisableStartupMessage: true,
		ErrorHandler:          customErrorHandler(app.log),
	})

	setupMiddleware(server)

	server.Get("/health", healthCheckHandler(app.db))
	server.Get("/swagger/*", fiberSwagger.WrapHandler)

	routes.Setup(server, app.routeHandlers())

	return server
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
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
		AllowMethods: "GET, POST, OPTIONS",
		MaxAge:       86400,
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
			"service":   "movia",
			"version":   version,
			"database":  dbStatus,
			"driver":    db.Driver(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}

func customErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
		}

		log.WithError(err).WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
			"status": code,
		}).Error("Request error")

		return utils.ErrorResponse(c, code, err.Error())
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
