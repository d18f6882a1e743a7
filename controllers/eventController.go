package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"go-catering-management/database"
	"go-catering-management/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var eventCollection *mongo.Collection = database.OpenCollection(database.Client, "event")

func GetCatererEvents() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		catererId := c.Param("caterer_id")

		result, err := eventCollection.Find(
			ctx,
			bson.M{"caterer_id": catererId},
			options.Find().SetSort(bson.D{{Key: "event_date", Value: -1}}),
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "error occurred while listing events"})
			return
		}
		var allEvents []bson.M
		if err := result.All(ctx, &allEvents); err != nil {
			log.Println(err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "error occurred while listing events"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": allEvents})
	}
}

func CreateEvent() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		var event models.Event

		if err := c.BindJSON(&event); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		validationErr := validate.Struct(&event)
		if validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": validationErr.Error()})
			return
		}

		event.Caterer_id = c.GetString("caterer_id")
		event.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		event.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		event.ID = primitive.NewObjectID()
		event.Event_id = event.ID.Hex()

		_, insertErr := eventCollection.InsertOne(ctx, event)
		defer cancel()
		if insertErr != nil {
			msg := fmt.Sprintf("event was not created")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": msg})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": event})
	}
}

func UpdateEvent() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		var event models.Event
		eventId := c.Param("event_id")

		if err := c.BindJSON(&event); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}

		var updateObj primitive.D
		if event.Title != nil {
			updateObj = append(updateObj, bson.E{Key: "title", Value: event.Title})
		}
		if event.Description != nil {
			updateObj = append(updateObj, bson.E{Key: "description", Value: event.Description})
		}
		if event.Event_date != nil {
			updateObj = append(updateObj, bson.E{Key: "event_date", Value: event.Event_date})
		}
		if event.Image_url != nil {
			updateObj = append(updateObj, bson.E{Key: "image_url", Value: event.Image_url})
		}
		updated_at, _ := time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		updateObj = append(updateObj, bson.E{Key: "updated_at", Value: updated_at})

		filter := bson.M{"event_id": eventId, "caterer_id": c.GetString("caterer_id")}
		result, err := eventCollection.UpdateOne(
			ctx,
			filter,
			bson.D{{Key: "$set", Value: updateObj}},
		)
		defer cancel()
		if err != nil {
			msg := fmt.Sprintf("event update failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": msg})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "event not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
	}
}

func DeleteEvent() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		eventId := c.Param("event_id")

		filter := bson.M{"event_id": eventId, "caterer_id": c.GetString("caterer_id")}
		result, err := eventCollection.DeleteOne(ctx, filter)
		defer cancel()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "event deletion failed"})
			return
		}
		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "event not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "event deleted"})
	}
}
