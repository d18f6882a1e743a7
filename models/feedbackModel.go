package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Feedback struct {
	ID            primitive.ObjectID `bson:"_id"`
	Customer_name *string            `json:"customer_name" bson:"customer_name" validate:"required,min=2,max=100"`
	Email         *string            `json:"email" validate:"omitempty,email"`
	Rating        *int               `json:"rating" validate:"required,min=1,max=5"`
	Comment       *string            `json:"comment"`
	Caterer_id    string             `json:"caterer_id" bson:"caterer_id"`
	Created_at    time.Time          `json:"created_at"`
	Feedback_id   string             `json:"feedback_id" bson:"feedback_id"`
}
