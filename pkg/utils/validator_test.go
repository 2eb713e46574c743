package util

import (
	"testing"

	"Attendance-Tracker/models"
)

func TestValidateAttendanceMarkPayload(t *testing.T) {
	valid := models.AttendanceMarkPayload{
		Status:   models.StatusHalfDay,
		CheckIn:  "09:00",
		CheckOut: "13:00",
	}
	if errs := ValidateStruct(valid); errs != nil {
		t.Fatalf("expected valid payload, got %+v", errs)
	}
}

func TestValidateAttendanceMarkPayloadRejectsBadStatus(t *testing.T) {
	payload := models.AttendanceMarkPayload{Status: "Sick"}
	errs := ValidateStruct(payload)
	if errs == nil {
		t.Fatalf("expected validation error for unknown status")
	}
	if errs[0].Tag != "attstatus" {
		t.Fatalf("tag = %q, want attstatus", errs[0].Tag)
	}
}

func TestValidateAttendanceMarkPayloadRejectsBadTime(t *testing.T) {
	payload := models.AttendanceMarkPayload{
		Status:  models.StatusPresent,
		CheckIn: "9am",
	}
	if errs := ValidateStruct(payload); errs == nil {
		t.Fatalf("expected validation error for malformed time")
	}
}

func TestValidateAddEmployeePayloadTeam(t *testing.T) {
	payload := models.AddEmployeePayload{
		Username: "jdoe",
		Team:     models.TeamGrowth,
	}
	if errs := ValidateStruct(payload); errs != nil {
		t.Fatalf("expected valid payload, got %+v", errs)
	}

	// Team is optional; the empty value means unassigned.
	payload.Team = ""
	if errs := ValidateStruct(payload); errs != nil {
		t.Fatalf("expected unassigned team to validate, got %+v", errs)
	}

	payload.Team = "Operations"
	errs := ValidateStruct(payload)
	if errs == nil {
		t.Fatalf("expected validation error for unknown team")
	}
	if errs[0].Tag != "team" {
		t.Fatalf("tag = %q, want team", errs[0].Tag)
	}
}

func TestValidateRegisterPayload(t *testing.T) {
	payload := models.UserRegisterPayload{Username: "jo", Password: "short"}
	if errs := ValidateStruct(payload); len(errs) != 2 {
		t.Fatalf("expected two validation errors, got %+v", errs)
	}
}
