package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuItem struct {
	ID           primitive.ObjectID `bson:"_id"`
	Name         *string            `json:"name" validate:"required,min=2,max=100"`
	Price        *float64           `json:"price" validate:"required,min=0"`
	Category     *string            `json:"category" validate:"required"`
	Dietary_type *string            `json:"dietary_type" bson:"dietary_type" validate:"required,eq=veg|eq=non-veg"`
	Description  *string            `json:"description"`
	Image_url    *string            `json:"image_url" bson:"image_url"`
	Is_available *bool              `json:"is_available" bson:"is_available"`
	Is_popular   bool               `json:"is_popular" bson:"is_popular"`
	Caterer_id   string             `json:"caterer_id" bson:"caterer_id"`
	Created_at   time.Time          `json:"created_at"`
	Updated_at   time.Time          `json:"updated_at"`
	Menu_item_id string             `json:"menu_item_id" bson:"menu_item_id"`
}
