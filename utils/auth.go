// utils/auth.go
package utils

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"
)

// InternalTokenMiddleware rejects any request whose X-Internal-Token header
// does not match the configured shared secret. The comparison is constant
// time. Requests are rejected before any invoice work happens.
func InternalTokenMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("X-Internal-Token")
		if token == "" || secret == "" ||
			subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
			c.AbortWithStatusJSON(401, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}
