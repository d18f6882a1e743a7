package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PasswordResetOTP struct {
	ID         primitive.ObjectID `bson:"_id"`
	Email      string             `json:"email" bson:"email"`
	Code       string             `json:"code" bson:"code"`
	Expires_at time.Time          `json:"expires_at" bson:"expires_at"`
	Is_used    bool               `json:"is_used" bson:"is_used"`
	Created_at time.Time          `json:"created_at" bson:"created_at"`
}
