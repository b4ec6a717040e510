package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/venkatesh141/Ecom/internal/model"
	"github.com/venkatesh141/Ecom/pkg/e"
	"github.com/venkatesh141/Ecom/pkg/utils"

	"github.com/gin-gonic/gin"
)

const (
	ctxUserID = "user_id"
	ctxEmail  = "email"
	ctxRole   = "role"
)

// JWTAuthMiddleware verifies the bearer token and injects the caller's
// identity into the request context.
func JWTAuthMiddleware(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  http.StatusUnauthorized,
				"message": e.GetMsg(e.ERROR_AUTH),
			})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  http.StatusUnauthorized,
				"message": "Invalid Authorization format",
			})
			c.Abort()
			return
		}

		claims, err := jwtUtil.ParseToken(parts[1])
		if err != nil {
			msg := e.GetMsg(e.ERROR_AUTH_CHECK_TOKEN_FAIL)
			if errors.Is(err, utils.ErrTokenExpired) {
				msg = e.GetMsg(e.ERROR_AUTH_CHECK_TOKEN_TIMEOUT)
			}
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  http.StatusUnauthorized,
				"message": msg,
			})
			c.Abort()
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxEmail, claims.Email)
		c.Set(ctxRole, claims.Role)

		c.Next()
	}
}

// AdminRequired guards admin-only routes. Must run after JWTAuthMiddleware.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ctxRole) != model.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"status":  http.StatusForbidden,
				"message": e.GetMsg(e.ERROR_FORBIDDEN),
			})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUserID returns the authenticated user's id set by the JWT
// middleware.
func CurrentUserID(c *gin.Context) int64 {
	return c.GetInt64(ctxUserID)
}
