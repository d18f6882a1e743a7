package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category struct {
	ID            primitive.ObjectID `bson:"_id"`
	Name          *string            `json:"name" validate:"required,min=2,max=100"`
	Description   *string            `json:"description"`
	Display_order int                `json:"display_order" bson:"display_order"`
	Caterer_id    string             `json:"caterer_id" bson:"caterer_id"`
	Created_at    time.Time          `json:"created_at"`
	Updated_at    time.Time          `json:"updated_at"`
	Category_id   string             `json:"category_id" bson:"category_id"`
}
