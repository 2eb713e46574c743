package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"Attendance-Tracker/config"
	"Attendance-Tracker/models"
)

type ReportRepository interface {
	GetOrCreateReport(ctx context.Context, userID primitive.ObjectID, date string) (*models.DailyReport, error)
	SaveReport(ctx context.Context, userID primitive.ObjectID, date string, payload *models.ReportSavePayload, team string) (*models.DailyReport, error)
	FindReportsByPairs(ctx context.Context, userIDs []primitive.ObjectID, dates []string) ([]models.DailyReport, error)
}

type reportRepository struct {
	collection *mongo.Collection
}

func NewReportRepository() ReportRepository {
	return &reportRepository{
		collection: config.GetCollection(config.ReportCollection),
	}
}

// GetOrCreateReport returns the report for (employee, date), creating one
// with empty defaults on the first visit of the day. Losing the insert race
// against a concurrent first visit resolves to the winner's document.
func (r *reportRepository) GetOrCreateReport(ctx context.Context, userID primitive.ObjectID, date string) (*models.DailyReport, error) {
	existing, err := r.findByUserAndDate(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	report := &models.DailyReport{
		ID:        primitive.NewObjectID(),
		UserID:    userID,
		Date:      date,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	_, err = r.collection.InsertOne(ctx, report)
	if err == nil {
		return report, nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return r.findByUserAndDate(ctx, userID, date)
	}
	return nil, fmt.Errorf("failed to create daily report: %w", err)
}

// SaveReport overwrites the text fields and rebuilds the team metrics
// variant from the submitted fields and the employee's team.
func (r *reportRepository) SaveReport(ctx context.Context, userID primitive.ObjectID, date string, payload *models.ReportSavePayload, team string) (*models.DailyReport, error) {
	report, err := r.GetOrCreateReport(ctx, userID, date)
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

	update := bson.M{"$set": bson.M{
		"today_actions": report.TodayActions,
		"outcomes":      report.Outcomes,
		"weekly_plan":   report.WeeklyPlan,
		"dau_metric":    report.DAUMetric,
		"grades_qa":     report.GradesQA,
		"team_metrics":  report.TeamMetrics,
		"updated_at":    report.UpdatedAt,
	}}
	if _, err := r.collection.UpdateByID(ctx, report.ID, update); err != nil {
		return nil, fmt.Errorf("failed to save daily report: %w", err)
	}
	return report, nil
}

// FindReportsByPairs fetches every report whose user and date both appear in
// the given sets. Callers narrow the result to exact (user, date) pairs; one
// query replaces a round trip per dashboard row.
func (r *reportRepository) FindReportsByPairs(ctx context.Context, userIDs []primitive.ObjectID, dates []string) ([]models.DailyReport, error) {
	if len(userIDs) == 0 || len(dates) == 0 {
		return []models.DailyReport{}, nil
	}

	filter := bson.M{
		"user_id": bson.M{"$in": userIDs},
		"date":    bson.M{"$in": dates},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find daily reports: %w", err)
	}
	defer cursor.Close(ctx)

	var reports []models.DailyReport
	if err = cursor.All(ctx, &reports); err != nil {
		return nil, fmt.Errorf("failed to decode daily reports: %w", err)
	}

	if len(reports) == 0 {
		return []models.DailyReport{}, nil
	}
	return reports, nil
}

func (r *reportRepository) findByUserAndDate(ctx context.Context, userID primitive.ObjectID, date string) (*models.DailyReport, error) {
	var report models.DailyReport
	filter := bson.M{"user_id": userID, "date": date}

	err := r.collection.FindOne(ctx, filter).Decode(&report)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find daily report: %w", err)
	}
	return &report, nil
}
