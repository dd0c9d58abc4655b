package middlewares

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/LisaMariaKleiner/coderr/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware verifies the bearer token and, when given, enforces a
// user type. Missing/invalid token -> 401, wrong type -> 403.
func AuthMiddleware(secret string, requiredTypes ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Authentication required."})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims := &utils.Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid token."})
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("userType", claims.UserType)
		c.Set("isStaff", claims.IsStaff)

		if len(requiredTypes) > 0 {
			allowed := false
			for _, t := range requiredTypes {
				if claims.UserType == t {
					allowed = true
					break
				}
			}
			if !allowed {
				c.JSON(http.StatusForbidden, gin.H{"detail": "Permission denied."})
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
