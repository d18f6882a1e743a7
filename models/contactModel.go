package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Contact struct {
	ID         primitive.ObjectID `bson:"_id"`
	Name       *string            `json:"name" validate:"required,min=2,max=100"`
	Email      *string            `json:"email" validate:"email,required"`
	Phone      *string            `json:"phone"`
	Message    *string            `json:"message" validate:"required,min=2"`
	Caterer_id string             `json:"caterer_id" bson:"caterer_id"`
	Is_read    bool               `json:"is_read" bson:"is_read"`
	Created_at time.Time          `json:"created_at"`
	Contact_id string             `json:"contact_id" bson:"contact_id"`
}
