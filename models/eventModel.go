package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Event struct {
	ID          primitive.ObjectID `bson:"_id"`
	Title       *string            `json:"title" validate:"required,min=2,max=200"`
	Description *string            `json:"description"`
	Event_date  *time.Time         `json:"event_date" bson:"event_date"`
	Image_url   *string            `json:"image_url" bson:"image_url"`
	Caterer_id  string             `json:"caterer_id" bson:"caterer_id"`
	Created_at  time.Time          `json:"created_at"`
	Updated_at  time.Time          `json:"updated_at"`
	Event_id    string             `json:"event_id" bson:"event_id"`
}
