package main

import (
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"Attendance-Tracker/config"
	"Attendance-Tracker/pkg/logger"
	"Attendance-Tracker/router"
	"Attendance-Tracker/seeder"

	_ "time/tzdata"
)

// @title Attendance Tracker API
// @version 1.0
// @description Employee attendance and daily report tracking: employees mark daily attendance and submit status reports, administrators view summaries, manage records and provision accounts.
//
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
//
// @host localhost:3000
// @BasePath /api/v1
// @schemes http https
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the PASETO token.
//
// @tag.name Auth
// @tag.description Authentication endpoints
//
// @tag.name Attendance
// @tag.description Attendance and daily report endpoints
//
// @tag.name Admin
// @tag.description Administrator-only endpoints
func main() {
	log := logger.Must(logger.New())
	defer log.Sync()

	if err := godotenv.Load(); err != nil {
		log.Warn(".env file not found, using system environment variables")
	}

	cfg := config.LoadConfig()

	location, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatal("invalid TIMEZONE", zap.String("timezone", cfg.Timezone), zap.Error(err))
	}

	config.MongoConnect()
	config.InitDatabase()
	defer config.DisconnectDB()

	seeder.SeedAdminUser(logger.Named(log, "seeder"))

	app := fiber.New()

	config.SetupCORS(app)
	app.Use(fiberlogger.New())

	router.SetupRoutes(app, location, logger.Named(log, "router"))

	log.Info("server starting",
		zap.String("port", cfg.Port),
		zap.String("docs", "http://localhost:"+cfg.Port+"/docs/index.html"),
		zap.Strings("cors_origins", config.GetAllowedOrigins()),
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
