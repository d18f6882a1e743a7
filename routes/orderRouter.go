package routes

import (
	"go-catering-management/controllers"

	"github.com/gin-gonic/gin"
)

func OrderRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.GET("/orders", controllers.GetOrders())
	incomingRoutes.GET("/orders/:order_id", controllers.GetOrder())
	incomingRoutes.PUT("/orders/:order_id/status", controllers.UpdateOrderStatus())
	incomingRoutes.GET("/dashboard/stats", controllers.GetDashboardStats())
	incomingRoutes.GET("/profile", controllers.GetProfile())
	incomingRoutes.PATCH("/profile", controllers.UpdateProfile())
}
