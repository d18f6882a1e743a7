package middleware

import (
	"net/http"
	"strings"

	"go-catering-management/helpers"

	"github.com/gin-gonic/gin"
)

func Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		clientToken := c.Request.Header.Get("Authorization")
		clientToken = strings.TrimPrefix(clientToken, "Bearer ")
		if clientToken == "" {
			clientToken = c.Request.Header.Get("token")
		}
		if clientToken == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "authorization token is required"})
			c.Abort()
			return
		}
		claims, err := helpers.ValidateToken(clientToken)
		if err != "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": err})
			c.Abort()
			return
		}
		c.Set("caterer_id", claims.Caterer_id)
		c.Set("business_name", claims.Business_name)
		c.Next()
	}
}
