package models

import (
	"math"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusWFH     = "WFH"
	StatusLeave   = "Leave"
	StatusHalfDay = "Half Day"
)

// AttendanceStatuses lists the accepted status values in display order.
var AttendanceStatuses = []string{StatusPresent, StatusAbsent, StatusWFH, StatusLeave, StatusHalfDay}

func IsValidStatus(status string) bool {
	for _, s := range AttendanceStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// Attendance is one employee's status for a single calendar date. Dates are
// stored as "2006-01-02" strings and times as "15:04" strings; empty time
// strings mean the employee did not record that stamp.
type Attendance struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"user_id" bson:"user_id,omitempty"`
	Date      string             `json:"date" bson:"date,omitempty"`
	Status    string             `json:"status" bson:"status,omitempty"`
	CheckIn   string             `json:"check_in" bson:"check_in,omitempty"`
	CheckOut  string             `json:"check_out" bson:"check_out,omitempty"`
	ExtraDay  bool               `json:"extra_day" bson:"extra_day"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

// HoursWorked returns the checkout minus check-in duration in hours, rounded
// to two decimals. Missing stamps or a non-positive duration yield 0.
func (a *Attendance) HoursWorked() float64 {
	if a.CheckIn == "" || a.CheckOut == "" {
		return 0
	}

	start, err := time.Parse("15:04", a.CheckIn)
	if err != nil {
		return 0
	}
	end, err := time.Parse("15:04", a.CheckOut)
	if err != nil {
		return 0
	}

	hours := end.Sub(start).Hours()
	if hours <= 0 {
		return 0
	}
	return math.Round(hours*100) / 100
}

type AttendanceMarkPayload struct {
	Status   string `json:"status" validate:"required,attstatus"`
	CheckIn  string `json:"check_in" validate:"omitempty,datetime=15:04"`
	CheckOut string `json:"check_out" validate:"omitempty,datetime=15:04"`
	ExtraDay bool   `json:"extra_day"`
}

type AttendanceUpdatePayload struct {
	Status   string `json:"status" validate:"required,attstatus"`
	CheckIn  string `json:"check_in" validate:"omitempty,datetime=15:04"`
	CheckOut string `json:"check_out" validate:"omitempty,datetime=15:04"`
	ExtraDay bool   `json:"extra_day"`
}

// AttendanceWithUser is the admin dashboard row: an attendance record joined
// with its owner and, when one exists, the daily report for the same date.
type AttendanceWithUser struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	UserID      primitive.ObjectID `json:"user_id" bson:"user_id"`
	Date        string             `json:"date" bson:"date"`
	Status      string             `json:"status" bson:"status"`
	CheckIn     string             `json:"check_in,omitempty" bson:"check_in,omitempty"`
	CheckOut    string             `json:"check_out,omitempty" bson:"check_out,omitempty"`
	ExtraDay    bool               `json:"extra_day" bson:"extra_day"`
	Username    string             `json:"username" bson:"username"`
	Email       string             `json:"email,omitempty" bson:"email,omitempty"`
	FirstName   string             `json:"first_name,omitempty" bson:"first_name,omitempty"`
	LastName    string             `json:"last_name,omitempty" bson:"last_name,omitempty"`
	DailyReport *DailyReport       `json:"daily_report,omitempty" bson:"-"`
}

// AttendanceSummary holds the per-employee aggregate counts shown on both
// the employee page and the admin dashboard.
type AttendanceSummary struct {
	Username   string  `json:"username,omitempty"`
	Total      int     `json:"total"`
	Present    int     `json:"present"`
	Absent     int     `json:"absent"`
	HalfDay    int     `json:"half_day"`
	ExtraDay   int     `json:"extra_day"`
	TotalHours float64 `json:"total_hours"`
}

// Summarize computes the aggregate counts and total hours for one employee's
// records. Total hours are rounded to two decimals.
func Summarize(records []Attendance) AttendanceSummary {
	var summary AttendanceSummary
	var hours float64

	for i := range records {
		r := &records[i]
		summary.Total++
		switch r.Status {
		case StatusPresent:
			summary.Present++
		case StatusAbsent:
			summary.Absent++
		case StatusHalfDay:
			summary.HalfDay++
		}
		if r.ExtraDay {
			summary.ExtraDay++
		}
		hours += r.HoursWorked()
	}

	summary.TotalHours = math.Round(hours*100) / 100
	return summary
}
