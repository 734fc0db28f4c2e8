// utils/response.go
package utils

import "github.com/gin-gonic/gin"

// RespondWithError writes the standard failure body used by the delivery
// routes: {"ok": false, "error": message}.
func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"ok": false, "error": message})
}
