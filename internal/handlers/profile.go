package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"profiledesk/internal/models"
)

func (h HandlerSet) GetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"profile": h.app.Profile(),
	})
}

// SaveProfile is the JSON form of the dashboard save: all editable fields,
// activity recorded, success notification.
func (h HandlerSet) SaveProfile(c *gin.Context) {
	var form models.ProfileForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile": h.app.SaveProfile(form),
	})
}

func (h HandlerSet) MergeProfile(c *gin.Context) {
	var update models.ProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"profile": h.app.MergeProfile(update),
	})
}

func (h HandlerSet) ResetProfile(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"profile": h.app.ResetProfile(),
	})
}

func (h HandlerSet) ListActivity(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"items": h.app.Activity(),
	})
}
