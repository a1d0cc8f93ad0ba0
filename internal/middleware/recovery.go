package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Recovery turns a panic into a 500: JSON under /api, plain text for pages.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			r := recover()
			if r == nil {
				return
			}
			log.Error().
				Interface("panic", r).
				Str("path", c.Request.URL.Path).
				Str("request_id", RequestIDFrom(c)).
				Msg("panic recovered")

			if strings.HasPrefix(c.Request.URL.Path, "/api/") {
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error":      "internal_server_error",
					"request_id": RequestIDFrom(c),
				})
				return
			}
			c.Abort()
			c.String(http.StatusInternalServerError, "Something went wrong. Reload the page to continue.")
		}()
		c.Next()
	}
}
