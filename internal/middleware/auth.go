package middleware

import (
	"crypto/subtle"
	"log"

	"github.com/gin-gonic/gin"

	"github.com/user/medialib/internal/utils"
)

// RequireAPIKey rejects requests whose X-API-Key header does not match the
// configured key. The comparison is constant-time.
func RequireAPIKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		supplied := c.GetHeader("X-API-Key")
		if supplied == "" || subtle.ConstantTimeCompare([]byte(supplied), []byte(key)) != 1 {
			utils.Unauthorized(c, "Invalid API key")
			c.Abort()
			return
		}
		log.Printf("request from %q with a valid API key", c.Request.UserAgent())
		c.Next()
	}
}

// RequireAdmin gates privileged routes on the X-Role header. Registered
// after RequireAPIKey, so a bad credential wins over a bad role.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-Role") != "admin" {
			utils.Forbidden(c, "Admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}
