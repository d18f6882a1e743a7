package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderItem struct {
	Item_id  string  `json:"item_id" bson:"item_id" validate:"required"`
	Name     string  `json:"name" bson:"name"`
	Quantity int     `json:"quantity" bson:"quantity" validate:"required,min=1"`
	Price    float64 `json:"price" bson:"price"`
}

type CustomerInfo struct {
	Name    *string `json:"name" validate:"required,min=2,max=100"`
	Email   *string `json:"email" validate:"email,required"`
	Phone   *string `json:"phone" validate:"required"`
	Address *string `json:"address"`
}

type EventDetails struct {
	Event_date  time.Time `json:"event_date" bson:"event_date" validate:"required"`
	Event_type  *string   `json:"event_type" bson:"event_type"`
	Venue       *string   `json:"venue"`
	Guest_count int       `json:"guest_count" bson:"guest_count" validate:"required,min=1"`
}

type PricingDetails struct {
	Subtotal  float64 `json:"subtotal" bson:"subtotal"`
	Misc_cost float64 `json:"misc_cost" bson:"misc_cost"`
	Discount  float64 `json:"discount" bson:"discount"`
	Tax       float64 `json:"tax" bson:"tax"`
	Total     float64 `json:"total" bson:"total"`
	Deposit   float64 `json:"deposit" bson:"deposit"`
	Balance   float64 `json:"balance" bson:"balance"`
}

type TimelineEntry struct {
	Status    string    `json:"status" bson:"status"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
	Note      string    `json:"note" bson:"note"`
}

type Order struct {
	ID                   primitive.ObjectID `bson:"_id"`
	Order_number         string             `json:"order_number" bson:"order_number"`
	Caterer_id           string             `json:"caterer_id" bson:"caterer_id" validate:"required"`
	Customer             CustomerInfo       `json:"customer" bson:"customer" validate:"required"`
	Event                EventDetails       `json:"event" bson:"event" validate:"required"`
	Items                []OrderItem        `json:"items" bson:"items" validate:"required,min=1,dive"`
	Pricing              PricingDetails     `json:"pricing" bson:"pricing" validate:"required"`
	Status               string             `json:"status" bson:"status"`
	Timeline             []TimelineEntry    `json:"timeline" bson:"timeline"`
	Special_instructions *string            `json:"special_instructions" bson:"special_instructions"`
	Created_at           time.Time          `json:"created_at"`
	Updated_at           time.Time          `json:"updated_at"`
	Order_id             string             `json:"order_id" bson:"order_id"`
}
