package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"profiledesk/internal/service"
)

func (h HandlerSet) State(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"state": h.app.Page(),
	})
}

func (h HandlerSet) Login(c *gin.Context) {
	var req loginForm
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.app.Login(req.Username, req.Password); err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			resp := gin.H{"error": "invalid_credentials"}
			if n, ok := h.app.Notification(); ok {
				resp["notification"] = n
			}
			c.JSON(http.StatusUnauthorized, resp)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.State(c)
}

func (h HandlerSet) DemoLogin(c *gin.Context) {
	h.app.LoginDemo()
	h.State(c)
}

func (h HandlerSet) Logout(c *gin.Context) {
	h.app.Logout()
	h.State(c)
}
