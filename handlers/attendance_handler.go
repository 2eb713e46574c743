package handlers

import (
	"context"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"Attendance-Tracker/models"
	util "Attendance-Tracker/pkg/utils"
	"Attendance-Tracker/repository"
)

type AttendanceHandler struct {
	attendanceRepo repository.AttendanceRepository
	reportRepo     repository.ReportRepository
	userRepo       repository.UserRepository
	location       *time.Location
	logger         *zap.Logger
}

func NewAttendanceHandler(attendanceRepo repository.AttendanceRepository, reportRepo repository.ReportRepository, userRepo repository.UserRepository, location *time.Location, logger *zap.Logger) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceRepo: attendanceRepo,
		reportRepo:     reportRepo,
		userRepo:       userRepo,
		location:       location,
		logger:         logger,
	}
}

func (h *AttendanceHandler) today() string {
	return time.Now().In(h.location).Format("2006-01-02")
}

// GetAttendancePage assembles everything the attendance page shows: today's
// record if marked, the open daily report, the full history and the running
// summary. Visiting lazily creates the day's report with empty defaults.
func (h *AttendanceHandler) GetAttendancePage(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or corrupted session data"})
	}

	// Staff accounts do not mark attendance; send them to their dashboard.
	if claims.IsStaff || claims.IsSuperuser {
		return c.Redirect("/api/v1/admin/dashboard", fiber.StatusFound)
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	today := h.today()

	report, err := h.reportRepo.GetOrCreateReport(ctx, claims.UserID, today)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load daily report"})
	}

	todayAttendance, err := h.attendanceRepo.FindAttendanceByUserAndDate(ctx, claims.UserID, today)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load today's attendance"})
	}

	records, err := h.attendanceRepo.FindAttendanceByUserID(ctx, claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load attendance history"})
	}

	return c.Status(fiber.StatusOK).JSON(models.AttendancePageResponse{
		AlreadyMarked:   todayAttendance != nil,
		TodayAttendance: todayAttendance,
		Records:         records,
		Report:          report,
		Summary:         models.Summarize(records),
	})
}

// PostAttendancePage handles the attendance page form. The save_report flag
// selects the daily report branch; otherwise a status value marks or updates
// today's attendance in place.
func (h *AttendanceHandler) PostAttendancePage(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or corrupted session data"})
	}

	if claims.IsStaff || claims.IsSuperuser {
		return c.Redirect("/api/v1/admin/dashboard", fiber.StatusFound)
	}

	var payload models.AttendancePostPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	today := h.today()

	if payload.SaveReport {
		team := ""
		profile, err := h.userRepo.FindProfileByUserID(ctx, claims.UserID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load employee profile"})
		}
		if profile != nil {
			team = profile.Team
		}

		report, err := h.reportRepo.SaveReport(ctx, claims.UserID, today, &payload.ReportSavePayload, team)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save daily report"})
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "Daily report saved.",
			"report":  report,
		})
	}

	if payload.Status == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Either save_report or status must be submitted"})
	}

	markPayload := models.AttendanceMarkPayload{
		Status:   payload.Status,
		CheckIn:  payload.CheckIn,
		CheckOut: payload.CheckOut,
		ExtraDay: payload.ExtraDay,
	}
	if errors := util.ValidateStruct(markPayload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	attendance, err := h.attendanceRepo.MarkAttendance(ctx, claims.UserID, today, &markPayload)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid attendance status."})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to mark attendance"})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":    "Attendance marked as " + attendance.Status + "!",
		"attendance": attendance,
	})
}

func (h *AttendanceHandler) GetMyAttendanceHistory(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or corrupted session data"})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	records, err := h.attendanceRepo.FindAttendanceByUserID(ctx, claims.UserID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load attendance history"})
	}

	return c.Status(fiber.StatusOK).JSON(records)
}

// ScanCheckInCode stamps attendance from the daily QR code: the first scan
// of the day checks in as Present, the second stamps the check-out time.
func (h *AttendanceHandler) ScanCheckInCode(c *fiber.Ctx) error {
	claims, ok := c.Locals("user").(*models.Claims)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Not authenticated or corrupted session data"})
	}

	var payload models.CheckInScanPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body", "details": err.Error()})
	}
	if errors := util.ValidateStruct(payload); errors != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": errors})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	code, err := h.attendanceRepo.FindCheckInCodeByValue(ctx, payload.Code)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to look up check-in code"})
	}
	if code == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Check-in code not found."})
	}

	now := time.Now().In(h.location)
	today := now.Format("2006-01-02")

	if now.After(code.ExpiresAt) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Check-in code has expired."})
	}
	if code.Date != today {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Check-in code is not valid for today."})
	}

	currentTime := now.Format("15:04")

	attendance, err := h.attendanceRepo.FindAttendanceByUserAndDate(ctx, claims.UserID, today)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load today's attendance"})
	}

	if attendance != nil {
		if attendance.CheckOut != "" {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"message": "You already checked in and out today."})
		}
		markPayload := models.AttendanceMarkPayload{
			Status:   attendance.Status,
			CheckIn:  attendance.CheckIn,
			CheckOut: currentTime,
			ExtraDay: attendance.ExtraDay,
		}
		if _, err := h.attendanceRepo.MarkAttendance(ctx, claims.UserID, today, &markPayload); err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to check out."})
		}
		// Best effort; the attendance record is already stamped.
		if err := h.attendanceRepo.MarkCheckInCodeUsed(ctx, code.ID, claims.UserID); err != nil {
			h.logger.Warn("failed to mark check-in code as used", zap.String("code", code.Code), zap.Error(err))
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": "Checked out at " + currentTime})
	}

	markPayload := models.AttendanceMarkPayload{
		Status:   models.StatusPresent,
		CheckIn:  currentTime,
		ExtraDay: isWeekend(now),
	}
	if _, err := h.attendanceRepo.MarkAttendance(ctx, claims.UserID, today, &markPayload); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to check in."})
	}
	if err := h.attendanceRepo.MarkCheckInCodeUsed(ctx, code.ID, claims.UserID); err != nil {
		h.logger.Warn("failed to mark check-in code as used", zap.String("code", code.Code), zap.Error(err))
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Checked in at " + currentTime})
}

func isWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}
