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

var contactCollection *mongo.Collection = database.OpenCollection(database.Client, "contact")

// CreateContact accepts a public contact message addressed to a caterer.
func CreateContact() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		var contact models.Contact

		if err := c.BindJSON(&contact); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		validationErr := validate.Struct(&contact)
		if validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": validationErr.Error()})
			return
		}

		contact.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		contact.ID = primitive.NewObjectID()
		contact.Contact_id = contact.ID.Hex()
		contact.Is_read = false

		_, insertErr := contactCollection.InsertOne(ctx, contact)
		defer cancel()
		if insertErr != nil {
			msg := fmt.Sprintf("contact message was not created")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": msg})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": contact})
	}
}

func GetContacts() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()

		result, err := contactCollection.Find(
			ctx,
			bson.M{"caterer_id": c.GetString("caterer_id")},
			options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "error occurred while listing contact messages"})
			return
		}
		var allContacts []bson.M
		if err := result.All(ctx, &allContacts); err != nil {
			log.Println(err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "error occurred while listing contact messages"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": allContacts})
	}
}

func MarkContactRead() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		contactId := c.Param("contact_id")

		filter := bson.M{"contact_id": contactId, "caterer_id": c.GetString("caterer_id")}
		result, err := contactCollection.UpdateOne(
			ctx,
			filter,
			bson.D{{Key: "$set", Value: bson.D{{Key: "is_read", Value: true}}}},
		)
		defer cancel()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "contact update failed"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "contact message not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "contact message marked as read"})
	}
}

func DeleteContact() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		contactId := c.Param("contact_id")

		filter := bson.M{"contact_id": contactId, "caterer_id": c.GetString("caterer_id")}
		result, err := contactCollection.DeleteOne(ctx, filter)
		defer cancel()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "contact deletion failed"})
			return
		}
		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "contact message not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "contact message deleted"})
	}
}
