package models

// Success Response Models

// RegisterSuccessResponse represents a successful registration response
type RegisterSuccessResponse struct {
	Message string `json:"message" example:"Account registered successfully"`
	UserID  string `json:"user_id" example:"507f1f77bcf86cd799439011"`
}

// LoginSuccessResponse represents a successful login response
type LoginSuccessResponse struct {
	Message      string `json:"message" example:"Login successful"`
	Token        string `json:"token" example:"v2.local.Ft9QcxZhJXEYyb7-bMM..."`
	UserID       string `json:"user_id" example:"507f1f77bcf86cd799439011"`
	IsStaff      bool   `json:"is_staff" example:"false"`
	IsFirstLogin bool   `json:"is_first_login" example:"true"`
}

// AttendancePageResponse is everything the employee attendance page renders:
// today's state, the history, the open daily report and the running summary.
type AttendancePageResponse struct {
	AlreadyMarked   bool              `json:"already_marked"`
	TodayAttendance *Attendance       `json:"today_attendance,omitempty"`
	Records         []Attendance      `json:"records"`
	Report          *DailyReport      `json:"report"`
	Summary         AttendanceSummary `json:"summary"`
}

// DashboardResponse is the admin dashboard payload: filtered records with
// joined reports plus the per-employee summary table.
type DashboardResponse struct {
	Records     []AttendanceWithUser `json:"records"`
	UserSummary []AttendanceSummary  `json:"user_summary"`
}

// AddEmployeeResponse carries the one-time plaintext password back to the
// administrator who provisioned the account.
type AddEmployeeResponse struct {
	Message  string `json:"message" example:"Employee account created"`
	UserID   string `json:"user_id" example:"507f1f77bcf86cd799439011"`
	Username string `json:"username" example:"jdoe"`
	Password string `json:"password" example:"a8Xk2RmQ7p"`
}

// Error Response Models

// ErrorResponse represents the basic error response structure
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request body"`
	Details string `json:"details,omitempty" example:"validation failed"`
}

// UnauthorizedErrorResponse represents an unauthorized error response
type UnauthorizedErrorResponse struct {
	Error string `json:"error" example:"Invalid or missing token"`
}

// ForbiddenErrorResponse represents a forbidden error response
type ForbiddenErrorResponse struct {
	Error string `json:"error" example:"Access denied. Staff permission required"`
}

// NotFoundErrorResponse represents a not found error response
type NotFoundErrorResponse struct {
	Error string `json:"error" example:"Attendance record not found"`
}

// ConflictErrorResponse represents a conflict error response
type ConflictErrorResponse struct {
	Error string `json:"error" example:"Username already taken"`
}
