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

var feedbackCollection *mongo.Collection = database.OpenCollection(database.Client, "feedback")

func GetCatererFeedbacks() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		catererId := c.Param("caterer_id")

		result, err := feedbackCollection.Find(
			ctx,
			bson.M{"caterer_id": catererId},
			options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}),
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "error occurred while listing feedbacks"})
			return
		}
		var allFeedbacks []bson.M
		if err := result.All(ctx, &allFeedbacks); err != nil {
			log.Println(err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "error occurred while listing feedbacks"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": allFeedbacks})
	}
}

// CreateFeedback accepts a public customer review for a caterer.
func CreateFeedback() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		var feedback models.Feedback

		if err := c.BindJSON(&feedback); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		validationErr := validate.Struct(&feedback)
		if validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": validationErr.Error()})
			return
		}

		if _, err := findActiveCaterer(ctx, feedback.Caterer_id); err != nil {
			defer cancel()
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "caterer not found"})
			return
		}

		feedback.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		feedback.ID = primitive.NewObjectID()
		feedback.Feedback_id = feedback.ID.Hex()

		_, insertErr := feedbackCollection.InsertOne(ctx, feedback)
		defer cancel()
		if insertErr != nil {
			msg := fmt.Sprintf("feedback was not created")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": msg})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": feedback})
	}
}

func DeleteFeedback() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		feedbackId := c.Param("feedback_id")

		filter := bson.M{"feedback_id": feedbackId, "caterer_id": c.GetString("caterer_id")}
		result, err := feedbackCollection.DeleteOne(ctx, filter)
		defer cancel()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "feedback deletion failed"})
			return
		}
		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "feedback not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "feedback deleted"})
	}
}
