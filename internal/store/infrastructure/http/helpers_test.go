package http

import (
	"github.com/Lexv0lk/room-shop/internal/pkg/jwt"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(claims *jwt.Claims) *gin.Engine {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		if claims != nil {
			c.Set(jwt.ClaimsContextKey, claims)
		}
		c.Next()
	})

	return router
}
