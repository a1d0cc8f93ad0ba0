package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"profiledesk/internal/models"
	"profiledesk/internal/security"
	"profiledesk/internal/service"
	"profiledesk/internal/view"
)

type loginForm struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// Index renders the current state. A toast is shown once and then dismissed,
// so reloading the page does not replay it.
func (h HandlerSet) Index(c *gin.Context) {
	page := h.app.Page()

	token, err := security.GenerateFormToken(h.formSecret, h.cfg.Security.FormTokenTTL)
	if err != nil {
		h.log.Error().Err(err).Msg("issue form token failed")
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	c.HTML(http.StatusOK, view.PageTemplate, view.Document{Page: page, CSRFToken: token})

	if page.Toast != nil {
		h.app.DismissNotification(page.Toast.ID)
	}
}

func (h HandlerSet) SubmitLogin(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	if err := h.app.Login(form.Username, form.Password); err != nil && !errors.Is(err, service.ErrInvalidCredentials) {
		h.log.Error().Err(err).Msg("login failed")
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}

	h.backToIndex(c)
}

func (h HandlerSet) SubmitDemoLogin(c *gin.Context) {
	h.app.LoginDemo()
	h.backToIndex(c)
}

func (h HandlerSet) SubmitLogout(c *gin.Context) {
	h.app.Logout()
	h.backToIndex(c)
}

func (h HandlerSet) SubmitProfile(c *gin.Context) {
	var form models.ProfileForm
	if err := c.ShouldBind(&form); err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}

	h.app.SaveProfile(form)
	h.backToIndex(c)
}

func (h HandlerSet) SubmitProfileReset(c *gin.Context) {
	h.app.ResetProfile()
	h.backToIndex(c)
}

func (h HandlerSet) backToIndex(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/")
}
