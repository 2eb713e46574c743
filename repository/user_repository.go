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

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (*mongo.InsertOneResult, error)
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindEmployees(ctx context.Context) ([]models.User, error)
	UpdateUserPassword(ctx context.Context, id primitive.ObjectID, hashedPassword string) error
	DeleteUser(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error)

	CreateProfile(ctx context.Context, profile *models.EmployeeProfile) (*mongo.InsertOneResult, error)
	FindProfileByUserID(ctx context.Context, userID primitive.ObjectID) (*models.EmployeeProfile, error)
	DeleteProfileByUserID(ctx context.Context, userID primitive.ObjectID) error
}

type userRepository struct {
	collection        *mongo.Collection
	profileCollection *mongo.Collection
}

func NewUserRepository() UserRepository {
	return &userRepository{
		collection:        config.GetCollection(config.UserCollection),
		profileCollection: config.GetCollection(config.ProfileCollection),
	}
}

func (r *userRepository) CreateUser(ctx context.Context, user *models.User) (*mongo.InsertOneResult, error) {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()

	result, err := r.collection.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrConflict
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return result, nil
}

func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	filter := bson.M{"username": username}

	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by username: %w", err)
	}
	return &user, nil
}

func (r *userRepository) FindUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	filter := bson.M{"_id": id}

	err := r.collection.FindOne(ctx, filter).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by ID: %w", err)
	}
	return &user, nil
}

// FindEmployees returns every non-staff, non-superuser account sorted by
// username. The admin dashboard summary table iterates over this list.
func (r *userRepository) FindEmployees(ctx context.Context) ([]models.User, error) {
	filter := bson.M{"is_staff": false, "is_superuser": false}
	opts := options.Find().SetSort(bson.D{{Key: "username", Value: 1}})

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find employees: %w", err)
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err = cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode employees: %w", err)
	}

	return users, nil
}

func (r *userRepository) UpdateUserPassword(ctx context.Context, id primitive.ObjectID, hashedPassword string) error {
	update := bson.M{
		"$set": bson.M{
			"password":       hashedPassword,
			"is_first_login": false,
			"updated_at":     time.Now(),
		},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update user password: %w", err)
	}
	return nil
}

func (r *userRepository) DeleteUser(ctx context.Context, id primitive.ObjectID) (*mongo.DeleteResult, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}
	return result, nil
}

func (r *userRepository) CreateProfile(ctx context.Context, profile *models.EmployeeProfile) (*mongo.InsertOneResult, error) {
	profile.ID = primitive.NewObjectID()
	profile.CreatedAt = time.Now()
	profile.UpdatedAt = time.Now()

	result, err := r.profileCollection.InsertOne(ctx, profile)
	if err != nil {
		return nil, fmt.Errorf("failed to create employee profile: %w", err)
	}
	return result, nil
}

func (r *userRepository) FindProfileByUserID(ctx context.Context, userID primitive.ObjectID) (*models.EmployeeProfile, error) {
	var profile models.EmployeeProfile
	err := r.profileCollection.FindOne(ctx, bson.M{"user_id": userID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find employee profile: %w", err)
	}
	return &profile, nil
}

func (r *userRepository) DeleteProfileByUserID(ctx context.Context, userID primitive.ObjectID) error {
	_, err := r.profileCollection.DeleteOne(ctx, bson.M{"user_id": userID})
	if err != nil {
		return fmt.Errorf("failed to delete employee profile: %w", err)
	}
	return nil
}
