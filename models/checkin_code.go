package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CheckInCode is the daily QR code administrators issue so employees can
// stamp check-in/check-out without filling the attendance form.
type CheckInCode struct {
	ID        primitive.ObjectID   `json:"id,omitempty" bson:"_id,omitempty"`
	Code      string               `json:"code" bson:"code,omitempty"`
	Date      string               `json:"date" bson:"date,omitempty"`
	ExpiresAt time.Time            `json:"expires_at" bson:"expires_at,omitempty"`
	UsedBy    []primitive.ObjectID `json:"used_by" bson:"used_by,omitempty"`
	CreatedAt time.Time            `json:"created_at" bson:"created_at,omitempty"`
	UpdatedAt time.Time            `json:"updated_at" bson:"updated_at,omitempty"`
}

type CheckInScanPayload struct {
	Code string `json:"code" validate:"required"`
}
