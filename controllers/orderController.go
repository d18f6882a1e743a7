package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"go-catering-management/database"
	"go-catering-management/models"
	"go-catering-management/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var orderCollection *mongo.Collection = database.OpenCollection(database.Client, "order")
var customerCollection *mongo.Collection = database.OpenCollection(database.Client, "customer")

// findActiveCaterer loads a caterer and rejects missing or deactivated tenants.
func findActiveCaterer(ctx context.Context, catererId string) (*models.Caterer, error) {
	var caterer models.Caterer
	err := catererCollection.FindOne(ctx, bson.M{"caterer_id": catererId}).Decode(&caterer)
	if err != nil {
		return nil, err
	}
	if !caterer.Is_active {
		return nil, mongo.ErrNoDocuments
	}
	return &caterer, nil
}

// generateOrderNumber finds the highest existing O-<digits> number (string
// sort, descending) and increments its suffix. Any lookup failure falls back
// to a timestamp-based number.
func generateOrderNumber(ctx context.Context) string {
	var lastOrder models.Order
	filter := bson.M{"order_number": bson.M{"$regex": `^O-\d+$`}}
	opts := options.FindOne().SetSort(bson.D{{Key: "order_number", Value: -1}})

	err := orderCollection.FindOne(ctx, filter, opts).Decode(&lastOrder)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return services.NextOrderNumber("")
		}
		log.Println("order number lookup failed, using fallback:", err)
		return services.FallbackOrderNumber(time.Now())
	}
	return services.NextOrderNumber(lastOrder.Order_number)
}

// upsertCustomer keeps a contact snapshot per customer email.
func upsertCustomer(ctx context.Context, customer models.CustomerInfo) {
	if customer.Email == nil {
		return
	}
	now, _ := time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
	snapshot := services.CustomerSnapshot(customer, now)
	var updateObj primitive.D
	updateObj = append(updateObj, bson.E{Key: "name", Value: snapshot.Name})
	updateObj = append(updateObj, bson.E{Key: "phone", Value: snapshot.Phone})
	updateObj = append(updateObj, bson.E{Key: "address", Value: snapshot.Address})
	updateObj = append(updateObj, bson.E{Key: "updated_at", Value: snapshot.Updated_at})

	upsert := true
	opt := options.UpdateOptions{
		Upsert: &upsert,
	}
	_, err := customerCollection.UpdateOne(
		ctx,
		bson.M{"email": customer.Email},
		bson.D{
			{Key: "$set", Value: updateObj},
			{Key: "$setOnInsert", Value: bson.D{
				{Key: "customer_id", Value: primitive.NewObjectID().Hex()},
				{Key: "created_at", Value: now},
			}},
		},
		&opt,
	)
	if err != nil {
		log.Println("customer upsert failed:", err)
	}
}

// CreateBooking persists a public booking request as an order. Totals and
// balance are recomputed from the caller-supplied pricing components.
func CreateBooking() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		var order models.Order

		if err := c.BindJSON(&order); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		validationErr := validate.Struct(&order)
		if validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": validationErr.Error()})
			return
		}

		if _, err := findActiveCaterer(ctx, order.Caterer_id); err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "caterer not found"})
			return
		}

		if order.Order_number == "" {
			order.Order_number = generateOrderNumber(ctx)
		}

		services.RecomputeTotals(&order.Pricing)

		now, _ := time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		order.Created_at = now
		order.Updated_at = now
		order.ID = primitive.NewObjectID()
		order.Order_id = order.ID.Hex()
		order.Status = "pending"
		order.Timeline = []models.TimelineEntry{
			services.NewTimelineEntry("pending", "Order created", now),
		}

		_, insertErr := orderCollection.InsertOne(ctx, order)
		if insertErr != nil {
			msg := fmt.Sprintf("order was not created")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": msg})
			return
		}

		upsertCustomer(ctx, order.Customer)
		notifyNewBooking(order)

		c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
	}
}

func GetOrders() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		filter := bson.M{"caterer_id": c.GetString("caterer_id")}
		if status := c.Query("status"); status != "" {
			filter["status"] = status
		}

		result, err := orderCollection.Find(
			ctx,
			filter,
			options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "error occurred while listing orders"})
			return
		}
		var allOrders []bson.M
		if err := result.All(ctx, &allOrders); err != nil {
			log.Println(err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "error occurred while listing orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": allOrders})
	}
}

// GetOrder fetches a single order by order_id or order_number.
func GetOrder() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		orderId := c.Param("order_id")
		var order models.Order

		filter := bson.M{
			"caterer_id": c.GetString("caterer_id"),
			"$or": []bson.M{
				{"order_id": orderId},
				{"order_number": orderId},
			},
		}
		err := orderCollection.FindOne(ctx, filter).Decode(&order)
		defer cancel()
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "order not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
	}
}

type statusUpdateRequest struct {
	Status string `json:"status" validate:"required"`
	Note   string `json:"note"`
}

// UpdateOrderStatus replaces the status field and appends a timeline entry.
// Any status value is accepted; there is no transition table.
func UpdateOrderStatus() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		orderId := c.Param("order_id")
		var req statusUpdateRequest

		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		if req.Status == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "status is required"})
			return
		}

		now, _ := time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		entry := services.NewTimelineEntry(req.Status, req.Note, now)

		filter := bson.M{"order_id": orderId, "caterer_id": c.GetString("caterer_id")}
		result, err := orderCollection.UpdateOne(
			ctx,
			filter,
			bson.D{
				{Key: "$set", Value: bson.D{
					{Key: "status", Value: req.Status},
					{Key: "updated_at", Value: now},
				}},
				{Key: "$push", Value: bson.D{
					{Key: "timeline", Value: entry},
				}},
			},
		)
		if err != nil {
			msg := fmt.Sprintf("order status update failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": msg})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "order not found"})
			return
		}

		var order models.Order
		if err := orderCollection.FindOne(ctx, filter).Decode(&order); err == nil {
			notifyStatusChange(order)
			c.JSON(http.StatusOK, gin.H{"success": true, "data": order})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
	}
}

// CheckAvailability counts a caterer's bookings on a calendar date against
// its daily cap.
func CheckAvailability() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		catererId := c.Query("caterer_id")
		dateStr := c.Query("date")
		if catererId == "" || dateStr == "" {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "caterer_id and date are required"})
			return
		}

		date, err := services.ParseBookingDate(dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid date format, expected YYYY-MM-DD"})
			return
		}
		if err := services.ValidateBookingDate(date, time.Now()); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}

		caterer, err := findActiveCaterer(ctx, catererId)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "caterer not found"})
			return
		}

		dayStart, dayEnd := services.DayRange(date)
		count, err := orderCollection.CountDocuments(ctx, bson.M{
			"caterer_id":       catererId,
			"event.event_date": bson.M{"$gte": dayStart, "$lte": dayEnd},
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "error occurred while checking availability"})
			return
		}

		maxDaily := caterer.Max_daily_bookings
		if maxDaily <= 0 {
			maxDaily = services.DefaultMaxDailyBookings
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
			"date":               dateStr,
			"is_available":       services.IsAvailable(count, maxDaily),
			"existing_bookings":  count,
			"max_daily_bookings": maxDaily,
		}})
	}
}
