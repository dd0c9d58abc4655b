package utils

import "github.com/gin-gonic/gin"

func CurrentUserID(c *gin.Context) uint {
	v, _ := c.Get("userId")
	switch id := v.(type) {
	case uint:
		return id
	case int:
		return uint(id)
	case int64:
		return uint(id)
	case float64:
		return uint(id)
	default:
		return 0
	}
}

func CurrentUserType(c *gin.Context) string {
	if v, ok := c.Get("userType"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func CurrentIsStaff(c *gin.Context) bool {
	if v, ok := c.Get("isStaff"); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	return false
}
