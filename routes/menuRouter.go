package routes

import (
	controller "go-catering-management/controllers"

	"github.com/gin-gonic/gin"
)

func MenuRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/menu-items", controller.CreateMenuItem())
	incomingRoutes.PATCH("/menu-items/:menu_item_id", controller.UpdateMenuItem())
	incomingRoutes.DELETE("/menu-items/:menu_item_id", controller.DeleteMenuItem())
	incomingRoutes.POST("/categories", controller.CreateCategory())
	incomingRoutes.PATCH("/categories/:category_id", controller.UpdateCategory())
	incomingRoutes.DELETE("/categories/:category_id", controller.DeleteCategory())
}
