package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"profiledesk/internal/models"
)

const currentUserKey = "current_user"

type SessionSource interface {
	Session() models.Session
}

// RequireSession lets the request through only while someone is logged in.
// With a non-empty redirect the browser is sent there; otherwise the caller
// gets a 401.
func RequireSession(source SessionSource, redirect string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := source.Session()
		if !session.LoggedIn() {
			if redirect != "" {
				c.Redirect(http.StatusSeeOther, redirect)
				c.Abort()
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}

		c.Set(currentUserKey, session.User())
		c.Next()
	}
}
