package router

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"

	"Attendance-Tracker/config/middleware"
	"Attendance-Tracker/handlers"
	"Attendance-Tracker/repository"

	_ "Attendance-Tracker/docs"
)

func SetupRoutes(app *fiber.App, location *time.Location, log *zap.Logger) {
	userRepo := repository.NewUserRepository()
	attendanceRepo := repository.NewAttendanceRepository()
	reportRepo := repository.NewReportRepository()
	credentialRepo := repository.NewCredentialRepository()

	authHandler := handlers.NewAuthHandler(userRepo)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceRepo, reportRepo, userRepo, location, log)
	adminHandler := handlers.NewAdminHandler(userRepo, attendanceRepo, reportRepo, credentialRepo, location, log)

	app.Get("/docs/*", swagger.HandlerDefault)

	// Role-based home redirect
	app.Get("/", middleware.AuthMiddleware(), authHandler.Home)

	api := app.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", middleware.AuthMiddleware(), authHandler.Logout)

	userGroup := api.Group("/users", middleware.AuthMiddleware())
	userGroup.Post("/change-password", authHandler.ChangePassword)

	attendanceGroup := api.Group("/attendance", middleware.AuthMiddleware())
	attendanceGroup.Get("/", attendanceHandler.GetAttendancePage)
	attendanceGroup.Post("/", attendanceHandler.PostAttendancePage)
	attendanceGroup.Get("/history", attendanceHandler.GetMyAttendanceHistory)
	attendanceGroup.Post("/scan", attendanceHandler.ScanCheckInCode)

	adminGroup := api.Group("/admin", middleware.AuthMiddleware(), middleware.StaffMiddleware())
	adminGroup.Get("/dashboard", adminHandler.Dashboard)
	adminGroup.Put("/attendance/:id", adminHandler.EditAttendance)
	adminGroup.Delete("/attendance/:id", adminHandler.DeleteAttendance)
	adminGroup.Post("/employees", adminHandler.AddEmployee)
	adminGroup.Get("/credentials", adminHandler.GetCredentials)
	adminGroup.Get("/attendance/qr", adminHandler.GenerateCheckInCode)

	log.Info("application routes registered")
}
