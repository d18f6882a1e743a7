package routes

import (
	controller "go-catering-management/controllers"

	"github.com/gin-gonic/gin"
)

func PasswordResetRoutes(incomingRoutes *gin.Engine) {
	incomingRoutes.POST("/forgot-password/send-otp", controller.SendOTP())
	incomingRoutes.POST("/forgot-password/verify-otp", controller.VerifyOTP())
	incomingRoutes.POST("/forgot-password/reset-password", controller.ResetPassword())
}
