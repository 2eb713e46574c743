package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID           primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Username     string             `json:"username" bson:"username,omitempty"`
	Email        string             `json:"email" bson:"email,omitempty"`
	FirstName    string             `json:"first_name" bson:"first_name,omitempty"`
	LastName     string             `json:"last_name" bson:"last_name,omitempty"`
	Password     string             `json:"-" bson:"password,omitempty"`
	IsStaff      bool               `json:"is_staff" bson:"is_staff"`
	IsSuperuser  bool               `json:"is_superuser" bson:"is_superuser"`
	IsFirstLogin bool               `json:"is_first_login" bson:"is_first_login"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

// EmployeeProfile links a user account to its team assignment. Created once
// at provisioning time and never deleted through the application.
type EmployeeProfile struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"user_id" bson:"user_id,omitempty"`
	Team      string             `json:"team" bson:"team"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at,omitempty"`
}

type UserRegisterPayload struct {
	Username string `json:"username" validate:"required,min=3,max=100"`
	Password string `json:"password" validate:"required,min=8,max=50"`
}

type UserLoginPayload struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ChangePasswordPayload struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=50"`
}

type AddEmployeePayload struct {
	Username  string `json:"username" validate:"required,min=3,max=100"`
	Email     string `json:"email" validate:"omitempty,email"`
	FirstName string `json:"first_name" validate:"omitempty,max=100"`
	LastName  string `json:"last_name" validate:"omitempty,max=100"`
	Team      string `json:"team" validate:"omitempty,team"`
}

type Claims struct {
	UserID      primitive.ObjectID `json:"user_id"`
	Username    string             `json:"username"`
	IsStaff     bool               `json:"is_staff"`
	IsSuperuser bool               `json:"is_superuser"`
}
