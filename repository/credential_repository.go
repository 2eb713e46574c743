package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"Attendance-Tracker/config"
	"Attendance-Tracker/models"
)

type CredentialRepository interface {
	CreateCredential(ctx context.Context, credential *models.GeneratedCredential) (*mongo.InsertOneResult, error)
	GetAllCredentials(ctx context.Context) ([]models.GeneratedCredential, error)
}

type credentialRepository struct {
	collection *mongo.Collection
}

func NewCredentialRepository() CredentialRepository {
	return &credentialRepository{
		collection: config.GetCollection(config.CredentialCollection),
	}
}

// CreateCredential archives the generated plaintext password. Records are
// write-once; nothing in the application updates or deletes them.
func (r *credentialRepository) CreateCredential(ctx context.Context, credential *models.GeneratedCredential) (*mongo.InsertOneResult, error) {
	credential.ID = primitive.NewObjectID()
	credential.CreatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, credential)
	if err != nil {
		return nil, fmt.Errorf("failed to create generated credential: %w", err)
	}
	return result, nil
}

func (r *credentialRepository) GetAllCredentials(ctx context.Context) ([]models.GeneratedCredential, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find generated credentials: %w", err)
	}
	defer cursor.Close(ctx)

	var credentials []models.GeneratedCredential
	if err = cursor.All(ctx, &credentials); err != nil {
		return nil, fmt.Errorf("failed to decode generated credentials: %w", err)
	}

	if len(credentials) == 0 {
		return []models.GeneratedCredential{}, nil
	}
	return credentials, nil
}
