package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Attendance-Tracker/config"
	"Attendance-Tracker/models"
)

// DashboardFilter carries the admin dashboard query parameters. Date is an
// exact match and wins over the StartDate/EndDate inclusive range when both
// are supplied. Employee is a case-insensitive username substring.
type DashboardFilter struct {
	Employee  string
	Date      string
	StartDate string
	EndDate   string
}

type AttendanceRepository interface {
	MarkAttendance(ctx context.Context, userID primitive.ObjectID, date string, payload *models.AttendanceMarkPayload) (*models.Attendance, error)
	FindAttendanceByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) (*models.Attendance, error)
	FindAttendanceByID(ctx context.Context, id primitive.ObjectID) (*models.Attendance, error)
	FindAttendanceByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Attendance, error)
	UpdateAttendance(ctx context.Context, id primitive.ObjectID, payload *models.AttendanceUpdatePayload) error
	DeleteAttendance(ctx context.Context, id primitive.ObjectID) error
	GetAllAttendancesWithUserDetails(ctx context.Context, filter DashboardFilter) ([]models.AttendanceWithUser, error)

	CreateCheckInCode(ctx context.Context, code *models.CheckInCode) (*mongo.InsertOneResult, error)
	FindCheckInCodeByValue(ctx context.Context, value string) (*models.CheckInCode, error)
	MarkCheckInCodeUsed(ctx context.Context, codeID primitive.ObjectID, userID primitive.ObjectID) error
}

type attendanceRepository struct {
	attendanceCollection *mongo.Collection
	codeCollection       *mongo.Collection
}

func NewAttendanceRepository() AttendanceRepository {
	return &attendanceRepository{
		attendanceCollection: config.GetCollection(config.AttendanceCollection),
		codeCollection:       config.GetCollection(config.CheckInCodeCollection),
	}
}

// MarkAttendance creates the (employee, date) record or updates it in place
// when it already exists, so marking twice on the same day never produces a
// second row. A concurrent insert racing past the initial read is absorbed
// by the unique index and retried as an update.
func (r *attendanceRepository) MarkAttendance(ctx context.Context, userID primitive.ObjectID, date string, payload *models.AttendanceMarkPayload) (*models.Attendance, error) {
	if !models.IsValidStatus(payload.Status) {
		return nil, ErrInvalidStatus
	}

	existing, err := r.FindAttendanceByUserAndDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	if existing == nil {
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

		_, err = r.attendanceCollection.InsertOne(ctx, attendance)
		if err == nil {
			return attendance, nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("failed to create attendance: %w", err)
		}
		// Lost the race; fall through and update the winner's record.
		existing, err = r.FindAttendanceByUserAndDate(ctx, userID, date)
		if err != nil {
			return nil, err
		}
		if existing == nil {
			return nil, fmt.Errorf("attendance for %s disappeared during marking", date)
		}
	}

	existing.Status = payload.Status
	existing.CheckIn = payload.CheckIn
	existing.CheckOut = payload.CheckOut
	existing.ExtraDay = payload.ExtraDay
	existing.UpdatedAt = time.Now()

	update := bson.M{"$set": bson.M{
		"status":     existing.Status,
		"check_in":   existing.CheckIn,
		"check_out":  existing.CheckOut,
		"extra_day":  existing.ExtraDay,
		"updated_at": existing.UpdatedAt,
	}}
	if _, err := r.attendanceCollection.UpdateByID(ctx, existing.ID, update); err != nil {
		return nil, fmt.Errorf("failed to update attendance: %w", err)
	}
	return existing, nil
}

func (r *attendanceRepository) FindAttendanceByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) (*models.Attendance, error) {
	var attendance models.Attendance
	filter := bson.M{"user_id": userID, "date": date}

	err := r.attendanceCollection.FindOne(ctx, filter).Decode(&attendance)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find attendance by user and date: %w", err)
	}
	return &attendance, nil
}

func (r *attendanceRepository) FindAttendanceByID(ctx context.Context, id primitive.ObjectID) (*models.Attendance, error) {
	var attendance models.Attendance
	err := r.attendanceCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&attendance)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to find attendance by ID: %w", err)
	}
	return &attendance, nil
}

func (r *attendanceRepository) FindAttendanceByUserID(ctx context.Context, userID primitive.ObjectID) ([]models.Attendance, error) {
	filter := bson.M{"user_id": userID}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})

	cursor, err := r.attendanceCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find attendance history: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.Attendance
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode attendance history: %w", err)
	}

	if len(results) == 0 {
		return []models.Attendance{}, nil
	}
	return results, nil
}

func (r *attendanceRepository) UpdateAttendance(ctx context.Context, id primitive.ObjectID, payload *models.AttendanceUpdatePayload) error {
	if !models.IsValidStatus(payload.Status) {
		return ErrInvalidStatus
	}

	update := bson.M{"$set": bson.M{
		"status":     payload.Status,
		"check_in":   payload.CheckIn,
		"check_out":  payload.CheckOut,
		"extra_day":  payload.ExtraDay,
		"updated_at": time.Now(),
	}}

	res, err := r.attendanceCollection.UpdateByID(ctx, id, update)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *attendanceRepository) DeleteAttendance(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.attendanceCollection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// BuildDateMatch translates the dashboard date parameters into a bson filter
// on the attendance date field. An exact date beats the range variant.
func BuildDateMatch(filter DashboardFilter) bson.M {
	if filter.Date != "" {
		return bson.M{"date": filter.Date}
	}

	rangeMatch := bson.M{}
	if filter.StartDate != "" {
		rangeMatch["$gte"] = filter.StartDate
	}
	if filter.EndDate != "" {
		rangeMatch["$lte"] = filter.EndDate
	}
	if len(rangeMatch) == 0 {
		return bson.M{}
	}
	return bson.M{"date": rangeMatch}
}

// BuildUserMatch builds the post-lookup filter: staff and superusers are
// always excluded, and the optional employee parameter becomes a
// case-insensitive username substring match.
func BuildUserMatch(employee string) bson.M {
	match := bson.M{
		"user.is_staff":     false,
		"user.is_superuser": false,
	}
	if employee != "" {
		match["user.username"] = primitive.Regex{Pattern: regexp.QuoteMeta(employee), Options: "i"}
	}
	return match
}

func (r *attendanceRepository) GetAllAttendancesWithUserDetails(ctx context.Context, filter DashboardFilter) ([]models.AttendanceWithUser, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: BuildDateMatch(filter)}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: config.UserCollection},
			{Key: "localField", Value: "user_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "user"},
		}}},
		{{Key: "$unwind", Value: "$user"}},
		{{Key: "$match", Value: BuildUserMatch(filter.Employee)}},
		{{Key: "$sort", Value: bson.D{{Key: "date", Value: -1}, {Key: "check_in", Value: -1}}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: "$_id"},
			{Key: "user_id", Value: 1},
			{Key: "date", Value: 1},
			{Key: "status", Value: 1},
			{Key: "check_in", Value: 1},
			{Key: "check_out", Value: 1},
			{Key: "extra_day", Value: 1},
			{Key: "username", Value: "$user.username"},
			{Key: "email", Value: "$user.email"},
			{Key: "first_name", Value: "$user.first_name"},
			{Key: "last_name", Value: "$user.last_name"},
		}}},
	}

	cursor, err := r.attendanceCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate dashboard records: %w", err)
	}
	defer cursor.Close(ctx)

	var results []models.AttendanceWithUser
	if err = cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode dashboard records: %w", err)
	}

	if len(results) == 0 {
		return []models.AttendanceWithUser{}, nil
	}
	return results, nil
}

func (r *attendanceRepository) CreateCheckInCode(ctx context.Context, code *models.CheckInCode) (*mongo.InsertOneResult, error) {
	res, err := r.codeCollection.InsertOne(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to create check-in code: %w", err)
	}
	return res, nil
}

func (r *attendanceRepository) FindCheckInCodeByValue(ctx context.Context, value string) (*models.CheckInCode, error) {
	var code models.CheckInCode
	err := r.codeCollection.FindOne(ctx, bson.M{"code": value}).Decode(&code)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find check-in code: %w", err)
	}
	return &code, nil
}

func (r *attendanceRepository) MarkCheckInCodeUsed(ctx context.Context, codeID primitive.ObjectID, userID primitive.ObjectID) error {
	update := bson.M{
		"$addToSet": bson.M{"used_by": userID},
		"$set":      bson.M{"updated_at": time.Now()},
	}
	_, err := r.codeCollection.UpdateByID(ctx, codeID, update)
	if err != nil {
		return fmt.Errorf("failed to mark check-in code as used: %w", err)
	}
	return nil
}
