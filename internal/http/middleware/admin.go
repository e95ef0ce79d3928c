package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AdminKey guards operator-only routes (session export/listing). When
// no key is configured the routes stay open, matching dev deployments.
func AdminKey(required string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if required == "" {
			c.Next()
			return
		}
		key := c.GetHeader("X-Admin-Key")
		if key != required {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "invalid admin key",
			})
			return
		}
		c.Next()
	}
}
