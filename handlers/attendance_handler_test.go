package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"Attendance-Tracker/models"
)

func newAttendanceTestApp(attendanceRepo *memAttendanceRepo, userRepo *memUserRepo, reportRepo *memReportRepo, claims *models.Claims) *fiber.App {
	handler := NewAttendanceHandler(attendanceRepo, reportRepo, userRepo, time.UTC, zap.NewNop())

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user", claims)
		return c.Next()
	})
	app.Get("/api/v1/attendance", handler.GetAttendancePage)
	app.Post("/api/v1/attendance", handler.PostAttendancePage)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return resp
}

func TestMarkAttendanceTwiceSameDayUpdatesInPlace(t *testing.T) {
	attendanceRepo := newMemAttendanceRepo()
	userRepo := &memUserRepo{}
	reportRepo := newMemReportRepo()

	userID := primitive.NewObjectID()
	claims := &models.Claims{UserID: userID, Username: "jordan"}
	app := newAttendanceTestApp(attendanceRepo, userRepo, reportRepo, claims)

	first := postJSON(t, app, "/api/v1/attendance", `{"status":"Present","check_in":"09:00"}`)
	if first.StatusCode != fiber.StatusOK {
		t.Fatalf("first mark: expected status 200, got %d", first.StatusCode)
	}

	second := postJSON(t, app, "/api/v1/attendance", `{"status":"Half Day","check_in":"09:00","check_out":"13:00","extra_day":true}`)
	if second.StatusCode != fiber.StatusOK {
		t.Fatalf("second mark: expected status 200, got %d", second.StatusCode)
	}

	if len(attendanceRepo.records) != 1 {
		t.Fatalf("expected exactly one attendance record, got %d", len(attendanceRepo.records))
	}

	today := time.Now().In(time.UTC).Format("2006-01-02")
	record, err := attendanceRepo.FindAttendanceByUserAndDate(context.Background(), userID, today)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if record == nil {
		t.Fatalf("expected today's record to exist")
	}
	if record.Status != models.StatusHalfDay {
		t.Errorf("expected status %q after second mark, got %q", models.StatusHalfDay, record.Status)
	}
	if record.CheckOut != "13:00" {
		t.Errorf("expected check_out 13:00 after second mark, got %q", record.CheckOut)
	}
	if !record.ExtraDay {
		t.Errorf("expected extra_day true after second mark")
	}
}

func TestMarkAttendanceRejectsUnknownStatus(t *testing.T) {
	attendanceRepo := newMemAttendanceRepo()
	claims := &models.Claims{UserID: primitive.NewObjectID(), Username: "jordan"}
	app := newAttendanceTestApp(attendanceRepo, &memUserRepo{}, newMemReportRepo(), claims)

	resp := postJSON(t, app, "/api/v1/attendance", `{"status":"Vacation"}`)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected status 400 for unknown status, got %d", resp.StatusCode)
	}
	if len(attendanceRepo.records) != 0 {
		t.Fatalf("expected no attendance record to be written, got %d", len(attendanceRepo.records))
	}
}

func TestGetAttendancePageReportsAlreadyMarked(t *testing.T) {
	attendanceRepo := newMemAttendanceRepo()
	userID := primitive.NewObjectID()
	claims := &models.Claims{UserID: userID, Username: "jordan"}
	app := newAttendanceTestApp(attendanceRepo, &memUserRepo{}, newMemReportRepo(), claims)

	today := time.Now().In(time.UTC).Format("2006-01-02")
	if _, err := attendanceRepo.MarkAttendance(context.Background(), userID, today, &models.AttendanceMarkPayload{Status: models.StatusPresent, CheckIn: "09:00"}); err != nil {
		t.Fatalf("seeding attendance failed: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/v1/attendance", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	var page models.AttendancePageResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !page.AlreadyMarked {
		t.Errorf("expected already_marked true after marking")
	}
	if page.TodayAttendance == nil || page.TodayAttendance.Status != models.StatusPresent {
		t.Errorf("expected today's attendance with status %q, got %+v", models.StatusPresent, page.TodayAttendance)
	}
}

// Exercising the marking contract directly: a second mark on the same date
// rewrites the existing record instead of inserting a second one, and the
// record identity survives the update.
func TestMarkAttendanceKeepsRecordIdentity(t *testing.T) {
	attendanceRepo := newMemAttendanceRepo()
	userID := primitive.NewObjectID()
	ctx := context.Background()

	first, err := attendanceRepo.MarkAttendance(ctx, userID, "2026-09-01", &models.AttendanceMarkPayload{Status: models.StatusPresent, CheckIn: "09:00"})
	if err != nil {
		t.Fatalf("first mark failed: %v", err)
	}

	second, err := attendanceRepo.MarkAttendance(ctx, userID, "2026-09-01", &models.AttendanceMarkPayload{Status: models.StatusWFH, CheckIn: "10:00", CheckOut: "18:00"})
	if err != nil {
		t.Fatalf("second mark failed: %v", err)
	}

	if second.ID != first.ID {
		t.Errorf("expected the same record to be updated, got a new ID")
	}
	if len(attendanceRepo.records) != 1 {
		t.Fatalf("expected one record after two marks, got %d", len(attendanceRepo.records))
	}
	if second.Status != models.StatusWFH || second.CheckIn != "10:00" || second.CheckOut != "18:00" {
		t.Errorf("expected second payload's fields to win, got %+v", second)
	}
}
