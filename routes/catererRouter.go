package routes

import (
	controller "go-catering-management/controllers"

	"github.com/gin-gonic/gin"
)

func CatererRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/caterers/signup", controller.SignUp())
	incomingRoutes.POST("/caterers/login", controller.Login())
	incomingRoutes.GET("/caterers", controller.GetCaterers())
	incomingRoutes.GET("/caterers/:caterer_id", controller.GetCaterer())
	incomingRoutes.GET("/caterers/:caterer_id/menu", controller.GetCatererMenu())
	incomingRoutes.GET("/caterers/:caterer_id/categories", controller.GetCatererCategories())
	incomingRoutes.GET("/caterers/:caterer_id/events", controller.GetCatererEvents())
	incomingRoutes.GET("/caterers/:caterer_id/feedbacks", controller.GetCatererFeedbacks())
	incomingRoutes.GET("/menu-items/:menu_item_id", controller.GetMenuItem())
	incomingRoutes.GET("/ws", controller.HandleWebSocket())
}
