package handlers

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"Attendance-Tracker/models"
	"Attendance-Tracker/pkg/paseto"
	"Attendance-Tracker/pkg/password"
	util "Attendance-Tracker/pkg/utils"
	"Attendance-Tracker/repository"
)

type AuthHandler struct {
	userRepo repository.UserRepository
}

func NewAuthHandler(userRepo repository.UserRepository) *AuthHandler {
	return &AuthHandler{
		userRepo: userRepo,
	}
}

// Home godoc
// @Summary Home redirect
// @Description Redirects staff and superusers to the admin dashboard and regular employees to the attendance page
// @Tags Auth
// @Security BearerAuth
// @Success 302 "Redirect to role-appropriate page"
// @Failure 401 {object} models.UnauthorizedErrorResponse
// @Router / [get]
func (h *AuthHandler) Home(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or corrupted session data"})
	}

	if claims.IsStaff || claims.IsSuperuser {
		return c.Redirect("/api/v1/admin/dashboard", fiber.StatusFound)
	}
	return c.Redirect("/api/v1/attendance", fiber.StatusFound)
}

// Register godoc
// @Summary Register Account
// @Description Self-registration with username and password only; no role is assigned
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body models.UserRegisterPayload true "Registration data"
// @Success 201 {object} models.RegisterSuccessResponse "Account registered"
// @Failure 400 {object} models.ErrorResponse "Invalid request body or validation error"
// @Failure 409 {object} models.ConflictErrorResponse "Username already taken"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var payload models.UserRegisterPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	hashedPassword, err := password.HashPassword(payload.Password)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "failed to hash password"})
	}

	newUser := &models.User{
		Username: payload.Username,
		Password: hashedPassword,
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	result, err := h.userRepo.CreateUser(ctx, newUser)
	if err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Username already taken"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("failed to register account: %v", err)})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Account registered successfully",
		"user_id": result.InsertedID,
	})
}

// Login godoc
// @Summary Login
// @Description Verifies the username and password and returns a PASETO token
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.UserLoginPayload true "Login credentials"
// @Success 200 {object} models.LoginSuccessResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid payload or validation error"
// @Failure 401 {object} models.UnauthorizedErrorResponse "Wrong username and password combination"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var payload models.UserLoginPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, err := h.userRepo.FindUserByUsername(ctx, payload.Username)
	if err != nil || user == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Wrong username and password combination"})
	}

	if !password.CheckPasswordHash(payload.Password, user.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Wrong username and password combination"})
	}

	token, err := paseto.GenerateToken(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate token"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":        "Login successful",
		"token":          token,
		"user_id":        user.ID.Hex(),
		"is_staff":       user.IsStaff,
		"is_first_login": user.IsFirstLogin,
	})
}

// ChangePassword godoc
// @Summary Change Password
// @Description Changes the password of the logged-in account and clears the first-login flag
// @Tags Auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param password body models.ChangePasswordPayload true "Password change data"
// @Success 200 {object} object{message=string} "Password changed"
// @Failure 400 {object} models.ErrorResponse "Invalid request body or validation error"
// @Failure 401 {object} models.UnauthorizedErrorResponse "Not authenticated or old password mismatch"
// @Router /users/change-password [post]
func (h *AuthHandler) ChangePassword(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or corrupted session data"})
	}

	var payload models.ChangePasswordPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	user, err := h.userRepo.FindUserByID(ctx, claims.UserID)
	if err != nil || user == nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "User not found"})
	}

	if !password.CheckPasswordHash(payload.OldPassword, user.Password) {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Old password does not match"})
	}

	if payload.NewPassword == payload.OldPassword {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "New password must differ from the old password"})
	}

	newHashedPassword, err := password.HashPassword(payload.NewPassword)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash new password"})
	}

	if err := h.userRepo.UpdateUserPassword(ctx, claims.UserID, newHashedPassword); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": fmt.Sprintf("Failed to update password: %v", err)})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Password changed successfully."})
}

// Logout godoc
// @Summary Logout
// @Description Logs the user out; tokens are stateless, so the client discards its copy
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} object{message=string} "Logout successful"
// @Failure 401 {object} models.UnauthorizedErrorResponse "Not authenticated"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	_, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated"})
	}

	// Stateless tokens cannot be revoked server-side; the client drops it.
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Logout successful. Remove the token on the client side.",
	})
}
