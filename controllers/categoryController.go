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

var categoryCollection *mongo.Collection = database.OpenCollection(database.Client, "category")

func GetCatererCategories() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		catererId := c.Param("caterer_id")

		result, err := categoryCollection.Find(
			ctx,
			bson.M{"caterer_id": catererId},
			options.Find().SetSort(bson.D{{Key: "display_order", Value: 1}}),
		)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "error occurred while listing categories"})
			return
		}
		var allCategories []bson.M
		if err := result.All(ctx, &allCategories); err != nil {
			log.Println(err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "error occurred while listing categories"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": allCategories})
	}
}

func CreateCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		var category models.Category

		if err := c.BindJSON(&category); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		validationErr := validate.Struct(&category)
		if validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": validationErr.Error()})
			return
		}

		category.Caterer_id = c.GetString("caterer_id")
		category.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		category.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		category.ID = primitive.NewObjectID()
		category.Category_id = category.ID.Hex()

		_, insertErr := categoryCollection.InsertOne(ctx, category)
		defer cancel()
		if insertErr != nil {
			msg := fmt.Sprintf("category was not created")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": msg})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": category})
	}
}

func UpdateCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		var category models.Category
		categoryId := c.Param("category_id")

		if err := c.BindJSON(&category); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}

		var updateObj primitive.D
		if category.Name != nil {
			updateObj = append(updateObj, bson.E{Key: "name", Value: category.Name})
		}
		if category.Description != nil {
			updateObj = append(updateObj, bson.E{Key: "description", Value: category.Description})
		}
		updateObj = append(updateObj, bson.E{Key: "display_order", Value: category.Display_order})
		updated_at, _ := time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		updateObj = append(updateObj, bson.E{Key: "updated_at", Value: updated_at})

		filter := bson.M{"category_id": categoryId, "caterer_id": c.GetString("caterer_id")}
		result, err := categoryCollection.UpdateOne(
			ctx,
			filter,
			bson.D{{Key: "$set", Value: updateObj}},
		)
		defer cancel()
		if err != nil {
			msg := fmt.Sprintf("category update failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": msg})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "category not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
	}
}

func DeleteCategory() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		categoryId := c.Param("category_id")

		filter := bson.M{"category_id": categoryId, "caterer_id": c.GetString("caterer_id")}
		result, err := categoryCollection.DeleteOne(ctx, filter)
		defer cancel()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "category deletion failed"})
			return
		}
		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "category not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "category deleted"})
	}
}
