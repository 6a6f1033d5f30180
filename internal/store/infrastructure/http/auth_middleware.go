package http

import (
	"net/http"
	"strings"

	"github.com/Lexv0lk/room-shop/internal/pkg/jwt"
	"github.com/Lexv0lk/room-shop/internal/pkg/logging"
	"github.com/gin-gonic/gin"
)

const (
	authHeaderName = "Authorization"
)

type AuthMiddlewareFabric struct {
	secretKey   string
	tokenParser jwt.TokenParser
	logger      logging.Logger
}

func NewAuthMiddlewareFabric(secretKey string, tokenParser jwt.TokenParser, logger logging.Logger) *AuthMiddlewareFabric {
	return &AuthMiddlewareFabric{
		secretKey:   secretKey,
		tokenParser: tokenParser,
		logger:      logger,
	}
}

// GetMiddleware verifies the bearer token and stores its claims in the context.
func (f *AuthMiddlewareFabric) GetMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(authHeaderName)
		if header == "" {
			abortWithMessage(c, http.StatusUnauthorized, "missing authorization header")
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			abortWithMessage(c, http.StatusUnauthorized, "invalid auth header")
			return
		}

		claims, err := f.tokenParser.ParseToken([]byte(f.secretKey), parts[1])
		if err != nil {
			f.logger.Warn("failed to parse user token", "error", err.Error())
			abortWithMessage(c, http.StatusUnauthorized, "invalid token")
			return
		}

		c.Set(jwt.TokenContextKey, parts[1])
		c.Set(jwt.ClaimsContextKey, claims)
		c.Next()
	}
}

func NewAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := claimsFromContext(c)
		if !ok {
			abortWithMessage(c, http.StatusUnauthorized, "not authenticated")
			return
		}

		if !claims.IsAdmin() {
			abortWithMessage(c, http.StatusForbidden, "admin role required")
			return
		}

		c.Next()
	}
}

func claimsFromContext(c *gin.Context) (*jwt.Claims, bool) {
	value, exists := c.Get(jwt.ClaimsContextKey)
	if !exists {
		return nil, false
	}

	claims, ok := value.(*jwt.Claims)
	return claims, ok && claims != nil
}
