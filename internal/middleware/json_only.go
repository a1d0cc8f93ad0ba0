package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// JSONOnly refuses state-changing API calls that are not sent as JSON, so a
// plain cross-site form post cannot reach them.
func JSONOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}

		if c.ContentType() != gin.MIMEJSON {
			c.AbortWithStatusJSON(http.StatusUnsupportedMediaType, gin.H{"error": "json_required"})
			return
		}
		c.Next()
	}
}
