package config

import (
	"context"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

var MongoConn *mongo.Client

var DBName string = "attendance-tracker-db"
var UserCollection string = "users"
var ProfileCollection string = "employee_profiles"
var AttendanceCollection string = "attendances"
var ReportCollection string = "daily_reports"
var CredentialCollection string = "generated_credentials"
var CheckInCodeCollection string = "checkin_codes"

func MongoConnect() {
	mongoURI := os.Getenv("MONGOSTRING")
	if mongoURI == "" {
		log.Fatal("MONGOSTRING is not set in the environment")
	}
	if name := os.Getenv("DB_NAME"); name != "" {
		DBName = name
	}

	client, err := mongo.NewClient(options.Client().ApplyURI(mongoURI))
	if err != nil {
		log.Fatalf("Failed to create MongoDB client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err = client.Connect(ctx); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatalf("Failed to ping MongoDB: %v", err)
	}

	log.Println("Connected to MongoDB")
	MongoConn = client
}

// InitDatabase creates the indexes the application relies on. The unique
// compound indexes close the check-then-write gap when two requests mark
// the same (employee, date) pair at once.
func InitDatabase() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	userDate := mongo.IndexModel{
		Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetUnique(true),
	}

	if _, err := GetCollection(AttendanceCollection).Indexes().CreateOne(ctx, userDate); err != nil {
		log.Fatalf("Failed to create attendance index: %v", err)
	}
	if _, err := GetCollection(ReportCollection).Indexes().CreateOne(ctx, userDate); err != nil {
		log.Fatalf("Failed to create daily report index: %v", err)
	}

	username := mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	}
	if _, err := GetCollection(UserCollection).Indexes().CreateOne(ctx, username); err != nil {
		log.Fatalf("Failed to create username index: %v", err)
	}

	log.Println("Database indexes ensured")
}

func GetCollection(collectionName string) *mongo.Collection {
	if MongoConn == nil {
		log.Fatal("MongoDB client is not initialized. Call MongoConnect() first")
	}
	return MongoConn.Database(DBName).Collection(collectionName)
}

func DisconnectDB() {
	if MongoConn != nil {
		if err := MongoConn.Disconnect(context.Background()); err != nil {
			log.Fatalf("Error disconnecting from MongoDB: %v", err)
		}
		log.Println("Disconnected from MongoDB")
	}
}
