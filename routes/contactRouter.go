package routes

import (
	controller "go-catering-management/controllers"

	"github.com/gin-gonic/gin"
)

func ContactRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/contacts", controller.GetContacts())
	incomingRoutes.PATCH("/contacts/:contact_id/read", controller.MarkContactRead())
	incomingRoutes.DELETE("/contacts/:contact_id", controller.DeleteContact())
	incomingRoutes.DELETE("/feedbacks/:feedback_id", controller.DeleteFeedback())
}
