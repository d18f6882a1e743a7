package controllers

import (
	"context"
	"net/http"
	"time"

	"go-catering-management/models"
	"go-catering-management/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

type quoteRequest struct {
	Caterer_id  string                   `json:"caterer_id" validate:"required"`
	Guest_count int                      `json:"guest_count" validate:"required"`
	Items       []services.ItemSelection `json:"items" validate:"required"`
}

// GetQuote computes an ephemeral price estimate for a selection of a
// caterer's menu items. Nothing is persisted.
func GetQuote() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		var req quoteRequest

		if err := c.BindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		if req.Guest_count < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": services.ErrInvalidGuestCount.Error()})
			return
		}
		if len(req.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": services.ErrNoItemsSelected.Error()})
			return
		}

		caterer, err := findActiveCaterer(ctx, req.Caterer_id)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "caterer not found"})
			return
		}

		cursor, err := menuItemCollection.Find(ctx, bson.M{"caterer_id": req.Caterer_id})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "error occurred while loading the menu"})
			return
		}
		var catalog []models.MenuItem
		if err := cursor.All(ctx, &catalog); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "error occurred while loading the menu"})
			return
		}

		quote, err := services.ComputeQuote(catalog, req.Items, req.Guest_count, caterer.Misc_cost, caterer.Dynamic_pricing)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true, "data": quote})
	}
}
