package main

import (
	"log"
	"net/http"
	"os"
	"time"

	middleware "go-catering-management/middleware"
	routes "go-catering-management/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("Warning: .env file not loaded:", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "token"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "page not found"})
	})

	// Public routes
	routes.CatererRoutes(router)
	routes.PasswordResetRoutes(router)
	routes.BookingRoutes(router)

	// Caterer dashboard routes
	router.Use(middleware.Authentication())
	routes.MenuRoutes(router)
	routes.OrderRoutes(router)
	routes.EventRoutes(router)
	routes.ContactRoutes(router)

	router.Run(":" + port)
}
