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
)

var menuItemCollection *mongo.Collection = database.OpenCollection(database.Client, "menuItem")

// GetCatererMenu lists a caterer's menu items for public browsing. Optional
// query filters: category, dietary_type, available=true.
func GetCatererMenu() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		catererId := c.Param("caterer_id")

		filter := bson.M{"caterer_id": catererId}
		if category := c.Query("category"); category != "" {
			filter["category"] = category
		}
		if dietaryType := c.Query("dietary_type"); dietaryType != "" {
			filter["dietary_type"] = dietaryType
		}
		if c.Query("available") == "true" {
			filter["is_available"] = true
		}

		result, err := menuItemCollection.Find(ctx, filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "error occurred while listing menu items"})
			return
		}
		var allItems []bson.M
		if err := result.All(ctx, &allItems); err != nil {
			log.Println(err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "error occurred while listing menu items"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": allItems})
	}
}

func GetMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		menuItemId := c.Param("menu_item_id")
		var menuItem models.MenuItem

		err := menuItemCollection.FindOne(ctx, bson.M{"menu_item_id": menuItemId}).Decode(&menuItem)
		defer cancel()
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "menu item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": menuItem})
	}
}

func CreateMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		var menuItem models.MenuItem

		if err := c.BindJSON(&menuItem); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		validationErr := validate.Struct(&menuItem)
		if validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": validationErr.Error()})
			return
		}

		menuItem.Caterer_id = c.GetString("caterer_id")
		menuItem.Created_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		menuItem.Updated_at, _ = time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		menuItem.ID = primitive.NewObjectID()
		menuItem.Menu_item_id = menuItem.ID.Hex()
		if menuItem.Is_available == nil {
			available := true
			menuItem.Is_available = &available
		}

		_, insertErr := menuItemCollection.InsertOne(ctx, menuItem)
		defer cancel()
		if insertErr != nil {
			msg := fmt.Sprintf("menu item was not created")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": msg})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": menuItem})
	}
}

func UpdateMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		var menuItem models.MenuItem
		menuItemId := c.Param("menu_item_id")

		if err := c.BindJSON(&menuItem); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}

		var updateObj primitive.D
		if menuItem.Name != nil {
			updateObj = append(updateObj, bson.E{Key: "name", Value: menuItem.Name})
		}
		if menuItem.Price != nil {
			if *menuItem.Price < 0 {
				c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "price must not be negative"})
				return
			}
			updateObj = append(updateObj, bson.E{Key: "price", Value: menuItem.Price})
		}
		if menuItem.Category != nil {
			updateObj = append(updateObj, bson.E{Key: "category", Value: menuItem.Category})
		}
		if menuItem.Dietary_type != nil {
			updateObj = append(updateObj, bson.E{Key: "dietary_type", Value: menuItem.Dietary_type})
		}
		if menuItem.Description != nil {
			updateObj = append(updateObj, bson.E{Key: "description", Value: menuItem.Description})
		}
		if menuItem.Image_url != nil {
			updateObj = append(updateObj, bson.E{Key: "image_url", Value: menuItem.Image_url})
		}
		if menuItem.Is_available != nil {
			updateObj = append(updateObj, bson.E{Key: "is_available", Value: menuItem.Is_available})
		}
		updateObj = append(updateObj, bson.E{Key: "is_popular", Value: menuItem.Is_popular})
		updated_at, _ := time.Parse(time.RFC3339, time.Now().Format(time.RFC3339))
		updateObj = append(updateObj, bson.E{Key: "updated_at", Value: updated_at})

		filter := bson.M{"menu_item_id": menuItemId, "caterer_id": c.GetString("caterer_id")}
		result, err := menuItemCollection.UpdateOne(
			ctx,
			filter,
			bson.D{{Key: "$set", Value: updateObj}},
		)
		defer cancel()
		if err != nil {
			msg := fmt.Sprintf("menu item update failed")
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": msg})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "menu item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
	}
}

func DeleteMenuItem() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		menuItemId := c.Param("menu_item_id")

		filter := bson.M{"menu_item_id": menuItemId, "caterer_id": c.GetString("caterer_id")}
		result, err := menuItemCollection.DeleteOne(ctx, filter)
		defer cancel()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "menu item deletion failed"})
			return
		}
		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "menu item not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "message": "menu item deleted"})
	}
}
