package seeder

import (
	"context"
	"os"
	"time"

	"go.uber.org/zap"

	"Attendance-Tracker/models"
	"Attendance-Tracker/pkg/password"
	"Attendance-Tracker/repository"
)

// SeedAdminUser ensures an initial staff account exists so the admin
// dashboard is reachable on a fresh database. Credentials come from the
// environment with development defaults.
func SeedAdminUser(log *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userRepo := repository.NewUserRepository()

	adminUsername := os.Getenv("ADMIN_USERNAME")
	if adminUsername == "" {
		adminUsername = "admin"
	}

	existing, err := userRepo.FindUserByUsername(ctx, adminUsername)
	if err != nil {
		log.Error("failed to check for admin user", zap.Error(err))
		return
	}
	if existing != nil {
		log.Info("admin user already exists, seeding skipped", zap.String("username", adminUsername))
		return
	}

	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "ChangeMe123"
	}

	hashedPassword, err := password.HashPassword(adminPassword)
	if err != nil {
		log.Error("failed to hash admin password", zap.Error(err))
		return
	}

	admin := &models.User{
		Username:     adminUsername,
		Email:        os.Getenv("ADMIN_EMAIL"),
		FirstName:    "Admin",
		Password:     hashedPassword,
		IsStaff:      true,
		IsSuperuser:  true,
		IsFirstLogin: true,
	}

	if _, err := userRepo.CreateUser(ctx, admin); err != nil {
		log.Error("failed to seed admin user", zap.Error(err))
		return
	}

	log.Info("admin user seeded", zap.String("username", adminUsername))
}
