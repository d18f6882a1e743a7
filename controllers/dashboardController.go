package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"go-catering-management/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}
var clients = make(map[*websocket.Conn]bool)
var mu sync.Mutex

// HandleWebSocket registers a dashboard client for booking notifications.
func HandleWebSocket() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			log.Println("error during connection upgrade:", err)
			return
		}
		defer conn.Close()

		mu.Lock()
		clients[conn] = true
		mu.Unlock()

		for {
			_, _, err := conn.ReadMessage()
			if err != nil {
				mu.Lock()
				delete(clients, conn)
				mu.Unlock()
				break
			}
		}
	}
}

type wsMessage struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// notifyNewBooking sends a "newBooking" event to connected dashboards.
func notifyNewBooking(order models.Order) {
	mu.Lock()
	defer mu.Unlock()
	sendMessageToAllClients(wsMessage{
		Event:   "newBooking",
		Payload: order,
	})
}

// notifyStatusChange sends an "orderStatus" event to connected dashboards.
func notifyStatusChange(order models.Order) {
	mu.Lock()
	defer mu.Unlock()
	sendMessageToAllClients(wsMessage{
		Event:   "orderStatus",
		Payload: order,
	})
}

func sendMessageToAllClients(message wsMessage) {
	messageBytes, err := json.Marshal(message)
	if err != nil {
		log.Println("error marshaling message:", err)
		return
	}
	for client := range clients {
		err := client.WriteMessage(websocket.TextMessage, messageBytes)
		if err != nil {
			log.Println("error writing message:", err)
			client.Close()
			delete(clients, client)
		}
	}
}

// GetDashboardStats aggregates order counts per status and total revenue for
// the authenticated caterer.
func GetDashboardStats() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
		defer cancel()
		catererId := c.GetString("caterer_id")

		matchStage := bson.D{{Key: "$match", Value: bson.D{{Key: "caterer_id", Value: catererId}}}}
		groupStage := bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$status"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "revenue", Value: bson.D{{Key: "$sum", Value: "$pricing.total"}}},
		}}}

		cursor, err := orderCollection.Aggregate(ctx, mongo.Pipeline{matchStage, groupStage})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "error occurred while aggregating orders"})
			return
		}
		var statusGroups []bson.M
		if err := cursor.All(ctx, &statusGroups); err != nil {
			log.Println(err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "error occurred while aggregating orders"})
			return
		}

		totalOrders := int64(0)
		totalRevenue := 0.0
		for _, group := range statusGroups {
			if count, ok := group["count"].(int32); ok {
				totalOrders += int64(count)
			}
			if revenue, ok := group["revenue"].(float64); ok {
				totalRevenue += revenue
			}
		}

		menuItemCount, err := menuItemCollection.CountDocuments(ctx, bson.M{"caterer_id": catererId})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "error occurred while counting menu items"})
			return
		}
		unreadContacts, err := contactCollection.CountDocuments(ctx, bson.M{"caterer_id": catererId, "is_read": false})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "error occurred while counting contact messages"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{
			"orders_by_status": statusGroups,
			"total_orders":     totalOrders,
			"total_revenue":    totalRevenue,
			"menu_items":       menuItemCount,
			"unread_contacts":  unreadContacts,
		}})
	}
}
