package handlers

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"Attendance-Tracker/models"
	"Attendance-Tracker/repository"
)

// In-memory repository implementations backing the handler tests. They keep
// the same contracts as the Mongo-backed ones: nil-without-error lookups for
// missing records, sentinel errors, and update-in-place attendance marking.

type memUserRepo struct {
	users    []models.User
	profiles []models.EmployeeProfile
}

func (m *memUserRepo) CreateUser(ctx context.Context, user *models.User) (*mongo.InsertOneResult, error) {
	for _, u := range m.users {
		if u.Username == user.Username {
			return nil, repository.ErrConflict
		}
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	m.users = append(m.users, *user)
	return &mongo.InsertOneResult{InsertedID: user.ID}, nil
}

func (m *memUserRepo) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	for i := range m.users {
		if m.users[i].Username == username {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	for i := range m.users {
		if m.users[i].ID == id {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) FindEmployees(ctx context.Context) ([]models.User, error) {
	var employees []models.User
	for _, u := range m.users {
		if !u.IsStaff && !u.IsSuperuser {
			employees = append(employees, u)
		}
	}
	return employees, nil
}

func (m *memUserRepo) UpdateUserPassword(ctx context.Context, id primitive.ObjectID, hashedPassword string) error {
	for i := range m.users {
		if m.users[i].ID == id {
			m.users[i].Password = hashedPassword
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memUserRepo) DeleteUser(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	for i := range m.users {
		if m.users[i].ID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return &mongo.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &mongo.DeleteResult{}, nil
}

func (m *memUserRepo) CreateProfile(ctx context.Context, profile *models.EmployeeProfile) (*mongo.InsertOneResult, error) {
	profile.ID = primitive.NewObjectID()
	m.profiles = append(m.profiles, *profile)
	return &mongo.InsertOneResult{InsertedID: profile.ID}, nil
}

func (m *memUserRepo) FindProfileByUserID(ctx context.Context, userID primitive.ObjectID) (*models.EmployeeProfile, error) {
	for i := range m.profiles {
		if m.profiles[i].UserID == userID {
			p := m.profiles[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (m *memUserRepo) DeleteProfileByUserID(ctx context.Context, userID primitive.ObjectID) error {
	for i := range m.profiles {
		if m.profiles[i].UserID == userID {
			m.profiles = append(m.profiles[:i], m.profiles[i+1:]...)
			return nil
		}
	}
	return nil
}

type memCredentialRepo struct {
	credentials []models.GeneratedCredential
}

func (m *memCredentialRepo) CreateCredential(ctx context.Context, credential *models.GeneratedCredential) (*mongo.InsertOneResult, error) {
	credential.ID = primitive.NewObjectID()
	credential.CreatedAt = time.Now()
	m.credentials = append(m.credentials, *credential)
	return &mongo.InsertOneResult{InsertedID: credential.ID}, nil
}

func (m *memCredentialRepo) GetAllCredentials(ctx context.Context) ([]models.GeneratedCredential, error) {
	return m.credentials, nil
}

type memAttendanceRepo struct {
	records map[string]*models.Attendance
	codes   []*models.CheckInCode
}

func newMemAttendanceRepo() *memAttendanceRepo {
	return &memAttendanceRepo{records: make(map[string]*models.Attendance)}
}

func attendanceKey(userID primitive.ObjectID, date string) string {
	return userID.Hex() + "|" + date
}

func (m *memAttendanceRepo) MarkAttendance(ctx context.Context, userID primitive.ObjectID, date string, payload *models.AttendanceMarkPayload) (*models.Attendance, error) {
	if !models.IsValidStatus(payload.Status) {
		return nil, repository.ErrInvalidStatus
	}

	key := attendanceKey(userID, date)
	if existing, ok := m.records[key]; ok {
		existing.Status = payload.Status
		existing.CheckIn = payload.CheckIn
		existing.CheckOut = payload.CheckOut
		existing.ExtraDay = payload.ExtraDay
		existing.UpdatedAt = time.Now()
		return existing, nil
	}

	attendance := &models.Attendance{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Date:      date,
		Status:    payload.Status,
		CheckIn:   payload.CheckIn,
		CheckOut:  payload.CheckOut,
		ExtraDay:  payload.ExtraDay,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	m.records[key] = attendance
	return attendance, nil
}

func (m *memAttendanceRepo) FindAttendanceByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) (*models.Attendance, error) {
	if record, ok := m.records[attendanceKey(userID, date)]; ok {
		return record, nil
	}
	return nil, nil
}

func (m *memAttendanceRepo) FindAttendanceByID(ctx context.Context, id primitive.ObjectID) (*models.Attendance, error) {
	for _, record := range m.records {
		if record.ID == id {
			return record, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memAttendanceRepo) FindAttendanceByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Attendance, error) {
	var records []models.Attendance
	for _, record := range m.records {
		if record.UserID == userID {
			records = append(records, *record)
		}
	}
	return records, nil
}

func (m *memAttendanceRepo) UpdateAttendance(ctx context.Context, id primitive.ObjectID, payload *models.AttendanceUpdatePayload) error {
	if !models.IsValidStatus(payload.Status) {
		return repository.ErrInvalidStatus
	}
	for _, record := range m.records {
		if record.ID == id {
			record.Status = payload.Status
			record.CheckIn = payload.CheckIn
			record.CheckOut = payload.CheckOut
			record.ExtraDay = payload.ExtraDay
			record.UpdatedAt = time.Now()
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memAttendanceRepo) DeleteAttendance(ctx context.Context, id primitive.ObjectID) error {
	for key, record := range m.records {
		if record.ID == id {
			delete(m.records, key)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memAttendanceRepo) GetAllAttendancesWithUserDetails(ctx context.Context, filter repository.DashboardFilter) ([]models.AttendanceWithUser, error) {
	return []models.AttendanceWithUser{}, nil
}

func (m *memAttendanceRepo) CreateCheckInCode(ctx context.Context, code *models.CheckInCode) (*mongo.InsertOneResult, error) {
	m.codes = append(m.codes, code)
	return &mongo.InsertOneResult{InsertedID: code.ID}, nil
}

func (m *memAttendanceRepo) FindCheckInCodeByValue(ctx context.Context, value string) (*models.CheckInCode, error) {
	for _, code := range m.codes {
		if code.Code == value {
			return code, nil
		}
	}
	return nil, nil
}

func (m *memAttendanceRepo) MarkCheckInCodeUsed(ctx context.Context, codeID primitive.ObjectID, userID primitive.ObjectID) error {
	for _, code := range m.codes {
		if code.ID == codeID {
			code.UsedBy = append(code.UsedBy, userID)
			return nil
		}
	}
	return repository.ErrNotFound
}

type memReportRepo struct {
	reports map[string]*models.DailyReport
}

func newMemReportRepo() *memReportRepo {
	return &memReportRepo{reports: make(map[string]*models.DailyReport)}
}

func (m *memReportRepo) GetOrCreateReport(ctx context.Context, userID primitive.ObjectID, date string) (*models.DailyReport, error) {
	key := attendanceKey(userID, date)
	if report, ok := m.reports[key]; ok {
		return report, nil
	}
	report := &models.DailyReport{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Date:      date,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	m.reports[key] = report
	return report, nil
}

func (m *memReportRepo) SaveReport(ctx context.Context, userID primitive.ObjectID, date string, payload *models.ReportSavePayload, team string) (*models.DailyReport, error) {
	report, err := m.GetOrCreateReport(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	report.TodayActions = payload.TodayActions
	report.Outcomes = payload.Outcomes
	report.WeeklyPlan = payload.WeeklyPlan
	report.DAUMetric = payload.DAUMetric
	report.GradesQA = payload.GradesQA
	report.TeamMetrics = models.BuildTeamMetrics(team, *payload)
	report.UpdatedAt = time.Now()
	return report, nil
}

func (m *memReportRepo) FindReportsByPairs(ctx context.Context, userIDs []primitive.ObjectID, dates []string) ([]models.DailyReport, error) {
	var reports []models.DailyReport
	for i := range userIDs {
		if report, ok := m.reports[attendanceKey(userIDs[i], dates[i])]; ok {
			reports = append(reports, *report)
		}
	}
	return reports, nil
}
