package handlers

import (
	"context"
	"encoding/base64"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	qrcode "github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"Attendance-Tracker/models"
	"Attendance-Tracker/pkg/password"
	util "Attendance-Tracker/pkg/utils"
	"Attendance-Tracker/repository"
)

type AdminHandler struct {
	userRepo       repository.UserRepository
	attendanceRepo repository.AttendanceRepository
	reportRepo     repository.ReportRepository
	credentialRepo repository.CredentialRepository
	location       *time.Location
	logger         *zap.Logger
}

func NewAdminHandler(
	userRepo repository.UserRepository,
	attendanceRepo repository.AttendanceRepository,
	reportRepo repository.ReportRepository,
	credentialRepo repository.CredentialRepository,
	location *time.Location,
	logger *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		userRepo:       userRepo,
		attendanceRepo: attendanceRepo,
		reportRepo:     reportRepo,
		credentialRepo: credentialRepo,
		location:       location,
		logger:         logger,
	}
}

type reportKey struct {
	userID primitive.ObjectID
	date   string
}

// Dashboard godoc
// @Summary Admin dashboard
// @Description Filtered attendance records with joined daily reports plus per-employee summary counts. Staff and superuser accounts are excluded from both lists.
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param employee query string false "Case-insensitive username substring"
// @Param date query string false "Exact date (2006-01-02); wins over the range parameters"
// @Param start_date query string false "Inclusive range start (2006-01-02)"
// @Param end_date query string false "Inclusive range end (2006-01-02)"
// @Success 200 {object} models.DashboardResponse
// @Failure 401 {object} models.UnauthorizedErrorResponse
// @Failure 403 {object} models.ForbiddenErrorResponse
// @Router /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *fiber.Ctx) error {
	filter := repository.DashboardFilter{
		Employee:  c.Query("employee"),
		Date:      c.Query("date"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	records, err := h.attendanceRepo.GetAllAttendancesWithUserDetails(ctx, filter)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load attendance records"})
	}

	if err := h.attachReports(ctx, records); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load daily reports"})
	}

	employees, err := h.userRepo.FindEmployees(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load employees"})
	}

	userSummary := make([]models.AttendanceSummary, 0, len(employees))
	for _, employee := range employees {
		history, err := h.attendanceRepo.FindAttendanceByUserID(ctx, employee.ID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to summarize attendance"})
		}
		summary := models.Summarize(history)
		summary.Username = employee.Username
		userSummary = append(userSummary, summary)
	}

	return c.Status(fiber.StatusOK).JSON(models.DashboardResponse{
		Records:     records,
		UserSummary: userSummary,
	})
}

// attachReports joins each record with the daily report sharing its
// (employee, date) pair. Records without a report keep a nil report;
// no placeholder is attached.
func (h *AdminHandler) attachReports(ctx context.Context, records []models.AttendanceWithUser) error {
	if len(records) == 0 {
		return nil
	}

	userIDs := make([]primitive.ObjectID, 0, len(records))
	dates := make([]string, 0, len(records))
	for i := range records {
		userIDs = append(userIDs, records[i].UserID)
		dates = append(dates, records[i].Date)
	}

	reports, err := h.reportRepo.FindReportsByPairs(ctx, userIDs, dates)
	if err != nil {
		return err
	}

	byPair := make(map[reportKey]*models.DailyReport, len(reports))
	for i := range reports {
		byPair[reportKey{reports[i].UserID, reports[i].Date}] = &reports[i]
	}

	for i := range records {
		records[i].DailyReport = byPair[reportKey{records[i].UserID, records[i].Date}]
	}
	return nil
}

// EditAttendance godoc
// @Summary Edit attendance record
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Attendance record ID"
// @Param attendance body models.AttendanceUpdatePayload true "Updated fields"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} models.ErrorResponse "Invalid id, body or status"
// @Failure 404 {object} models.NotFoundErrorResponse
// @Router /admin/attendance/{id} [put]
func (h *AdminHandler) EditAttendance(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid attendance record ID"})
	}

	var payload models.AttendanceUpdatePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}
	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := h.attendanceRepo.UpdateAttendance(ctx, id, &payload); err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Attendance record not found"})
		case errors.Is(err, repository.ErrInvalidStatus):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid attendance status."})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update attendance record"})
		}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Attendance updated successfully."})
}

// DeleteAttendance godoc
// @Summary Delete attendance record
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Attendance record ID"
// @Success 200 {object} object{message=string}
// @Failure 400 {object} models.ErrorResponse "Invalid id"
// @Failure 404 {object} models.NotFoundErrorResponse
// @Router /admin/attendance/{id} [delete]
func (h *AdminHandler) DeleteAttendance(c *fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid attendance record ID"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := h.attendanceRepo.DeleteAttendance(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Attendance record not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete attendance record"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Record deleted successfully."})
}

// AddEmployee godoc
// @Summary Provision employee account
// @Description Creates the user, its employee profile and a generated credential in one action. The plaintext password is returned once here and archived in the credential log.
// @Tags Admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param employee body models.AddEmployeePayload true "Employee data"
// @Success 201 {object} models.AddEmployeeResponse
// @Failure 400 {object} models.ErrorResponse "Invalid request body or validation error"
// @Failure 409 {object} models.ConflictErrorResponse "Username already taken"
// @Router /admin/employees [post]
func (h *AdminHandler) AddEmployee(c *fiber.Ctx) error {
	var payload models.AddEmployeePayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}
	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 10*time.Second)
	defer cancel()

	existing, err := h.userRepo.FindUserByUsername(ctx, payload.Username)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to check username"})
	}
	if existing != nil {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Username already taken"})
	}

	plainPassword, err := password.Generate()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate password"})
	}
	hashedPassword, err := password.HashPassword(plainPassword)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	newUser := &models.User{
		Username:     payload.Username,
		Email:        payload.Email,
		FirstName:    payload.FirstName,
		LastName:     payload.LastName,
		Password:     hashedPassword,
		IsFirstLogin: true,
	}

	if _, err := h.userRepo.CreateUser(ctx, newUser); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Username already taken"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create employee account"})
	}

	profile := &models.EmployeeProfile{
		UserID: newUser.ID,
		Team:   payload.Team,
	}
	if _, err := h.userRepo.CreateProfile(ctx, profile); err != nil {
		h.rollbackProvisioning(ctx, newUser.ID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create employee profile"})
	}

	credential := &models.GeneratedCredential{
		UserID:   newUser.ID,
		Username: newUser.Username,
		Password: plainPassword,
	}
	if _, err := h.credentialRepo.CreateCredential(ctx, credential); err != nil {
		h.rollbackProvisioning(ctx, newUser.ID)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record generated credential"})
	}

	h.logger.Info("employee account provisioned",
		zap.String("username", newUser.Username),
		zap.String("team", payload.Team),
	)

	return c.Status(fiber.StatusCreated).JSON(models.AddEmployeeResponse{
		Message:  "Employee account created",
		UserID:   newUser.ID.Hex(),
		Username: newUser.Username,
		Password: plainPassword,
	})
}

// rollbackProvisioning undoes a half-finished employee creation so the
// conflict check and the created rows stay all-or-nothing.
func (h *AdminHandler) rollbackProvisioning(ctx context.Context, userID primitive.ObjectID) {
	if err := h.userRepo.DeleteProfileByUserID(ctx, userID); err != nil {
		h.logger.Warn("failed to roll back employee profile", zap.String("user_id", userID.Hex()), zap.Error(err))
	}
	if _, err := h.userRepo.DeleteUser(ctx, userID); err != nil {
		h.logger.Warn("failed to roll back employee user", zap.String("user_id", userID.Hex()), zap.Error(err))
	}
}

// GetCredentials godoc
// @Summary Generated credential log
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.GeneratedCredential
// @Router /admin/credentials [get]
func (h *AdminHandler) GetCredentials(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	credentials, err := h.credentialRepo.GetAllCredentials(ctx)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load generated credentials"})
	}

	return c.Status(fiber.StatusOK).JSON(credentials)
}

// GenerateCheckInCode issues today's QR check-in code. The code value is a
// random UUID and expires at the end of the working day.
func (h *AdminHandler) GenerateCheckInCode(c *fiber.Ctx) error {
	now := time.Now().In(h.location)
	expiresAt := time.Date(now.Year(), now.Month(), now.Day(), 23, 0, 0, 0, h.location)

	code := &models.CheckInCode{
		ID:        primitive.NewObjectID(),
		Code:      uuid.New().String(),
		Date:      now.Format("2006-01-02"),
		ExpiresAt: expiresAt,
		UsedBy:    []primitive.ObjectID{},
		CreatedAt: now,
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.attendanceRepo.CreateCheckInCode(ctx, code); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store check-in code"})
	}

	png, err := qrcode.Encode(code.Code, qrcode.Medium, 256)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to render QR code image"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":       "Check-in code generated",
		"qr_code_image": "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
		"expires_at":    expiresAt,
	})
}
