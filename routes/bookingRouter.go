package routes

import (
	controller "go-catering-management/controllers"

	"github.com/gin-gonic/gin"
)

func BookingRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/quote", controller.GetQuote())
	incomingRoutes.POST("/booking", controller.CreateBooking())
	incomingRoutes.GET("/availability", controller.CheckAvailability())
	incomingRoutes.POST("/feedbacks", controller.CreateFeedback())
	incomingRoutes.POST("/contact", controller.CreateContact())
}
