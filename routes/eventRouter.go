package routes

import (
	controller "go-catering-management/controllers"

	"github.com/gin-gonic/gin"
)

func EventRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/events", controller.CreateEvent())
	incomingRoutes.PATCH("/events/:event_id", controller.UpdateEvent())
	incomingRoutes.DELETE("/events/:event_id", controller.DeleteEvent())
}
