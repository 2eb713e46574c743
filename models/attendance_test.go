package models

import "testing"

func TestHoursWorked(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  string
		checkOut string
		want     float64
	}{
		{"full day", "09:00", "17:30", 8.5},
		{"missing check-out", "09:00", "", 0},
		{"missing check-in", "", "17:30", 0},
		{"both missing", "", "", 0},
		{"check-out before check-in", "17:00", "09:00", 0},
		{"same minute", "09:00", "09:00", 0},
		{"partial hour rounds", "09:00", "09:20", 0.33},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := Attendance{CheckIn: tc.checkIn, CheckOut: tc.checkOut}
			if got := a.HoursWorked(); got != tc.want {
				t.Fatalf("HoursWorked() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestIsValidStatus(t *testing.T) {
	for _, status := range AttendanceStatuses {
		if !IsValidStatus(status) {
			t.Fatalf("expected %q to be a valid status", status)
		}
	}
	for _, status := range []string{"", "present", "Sick", "half day"} {
		if IsValidStatus(status) {
			t.Fatalf("expected %q to be rejected", status)
		}
	}
}

func TestSummarize(t *testing.T) {
	records := []Attendance{
		{Status: StatusPresent, CheckIn: "09:00", CheckOut: "17:30"},
		{Status: StatusPresent, CheckIn: "09:00", CheckOut: "13:00"},
		{Status: StatusAbsent},
		{Status: StatusHalfDay, CheckIn: "09:00", CheckOut: "13:00", ExtraDay: true},
		{Status: StatusWFH, CheckIn: "10:00", CheckOut: "18:00"},
	}

	summary := Summarize(records)

	if summary.Total != 5 {
		t.Fatalf("Total = %d, want 5", summary.Total)
	}
	if summary.Present != 2 {
		t.Fatalf("Present = %d, want 2", summary.Present)
	}
	if summary.Absent != 1 {
		t.Fatalf("Absent = %d, want 1", summary.Absent)
	}
	if summary.HalfDay != 1 {
		t.Fatalf("HalfDay = %d, want 1", summary.HalfDay)
	}
	if summary.ExtraDay != 1 {
		t.Fatalf("ExtraDay = %d, want 1", summary.ExtraDay)
	}
	// 8.5 + 4 + 0 + 4 + 8
	if summary.TotalHours != 24.5 {
		t.Fatalf("TotalHours = %v, want 24.5", summary.TotalHours)
	}

	// Counted statuses never exceed the total record count.
	if summary.Present+summary.Absent+summary.HalfDay > summary.Total {
		t.Fatalf("status counts exceed total records")
	}
}

func TestSummarizeEmpty(t *testing.T) {
	summary := Summarize(nil)
	if summary.Total != 0 || summary.TotalHours != 0 {
		t.Fatalf("expected zero summary, got %+v", summary)
	}
}
