package middleware

import (
	"github.com/gin-gonic/gin"
	"net/http"
)

// 檢查是否持有Token，沒有則中止請求
func CheckLoginMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, exists := c.Get("Token")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": "not logged in",
				"output":  "Log in first to get a token.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
