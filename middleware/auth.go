package middleware

import (
	"Frontend/session"
	"github.com/gin-gonic/gin"
	"log"
	"time"
)

// 持有Token時解析其內容並放入Context
func SessionMiddleware(sess *session.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sess.Get()
		if token == "" {
			c.Next()
			return
		}

		c.Set("Token", token)

		//Token無法解析時仍保留，交由後端服務判斷
		claims, err := sess.Claims(time.Now())
		if err != nil {
			log.Printf("無法解析Token: %v\n", err)
			c.Next()
			return
		}

		c.Set("Claims", claims)
		if claims.UserID != nil {
			c.Set("UserID", *claims.UserID)
		}
		c.Set("Role", claims.Role)
		c.Next()
	}
}
