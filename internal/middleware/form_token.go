package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"profiledesk/internal/security"
)

const FormTokenField = "_csrf"

// FormToken rejects form posts that do not echo a token issued by the page.
func FormToken(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		token := c.PostForm(FormTokenField)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "form_token_required"})
			return
		}
		if err := security.ValidateFormToken(token, secret); err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid_form_token"})
			return
		}

		c.Next()
	}
}
