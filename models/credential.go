package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GeneratedCredential is the write-once audit record of an auto-provisioned
// employee login. The password is stored in plaintext on purpose so an
// administrator can hand it over; it is never updated after creation.
type GeneratedCredential struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"user_id" bson:"user_id,omitempty"`
	Username  string             `json:"username" bson:"username,omitempty"`
	Password  string             `json:"password" bson:"password,omitempty"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at,omitempty"`
}
