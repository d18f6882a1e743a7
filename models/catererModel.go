package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PricingTier struct {
	Min_guests       int     `json:"min_guests" bson:"min_guests" validate:"required,min=1"`
	Discount_percent float64 `json:"discount_percent" bson:"discount_percent" validate:"min=0"`
}

type Caterer struct {
	ID                 primitive.ObjectID `bson:"_id"`
	Business_name      *string            `json:"business_name" validate:"required,min=2,max=100"`
	Owner_name         *string            `json:"owner_name" validate:"required,min=2,max=100"`
	Email              *string            `json:"email" validate:"email,required"`
	Password           *string            `json:"password" validate:"required,min=8"`
	Phone              *string            `json:"phone" validate:"required"`
	Address            *string            `json:"address"`
	Description        *string            `json:"description"`
	Misc_cost          float64            `json:"misc_cost" bson:"misc_cost"`
	Dynamic_pricing    []PricingTier      `json:"dynamic_pricing" bson:"dynamic_pricing"`
	Max_daily_bookings int                `json:"max_daily_bookings" bson:"max_daily_bookings"`
	Is_active          bool               `json:"is_active" bson:"is_active"`
	Token              *string            `json:"token"`
	Refresh_token      *string            `json:"refresh_token"`
	Created_at         time.Time          `json:"created_at"`
	Updated_at         time.Time          `json:"updated_at"`
	Caterer_id         string             `json:"caterer_id" bson:"caterer_id"`
}
