package handlers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"profiledesk/internal/app"
	"profiledesk/internal/config"
	"profiledesk/internal/middleware"
	"profiledesk/internal/security"
)

type HandlerSet struct {
	log        zerolog.Logger
	cfg        *config.AppConfig
	app        *app.App
	cache      *redis.Client
	formSecret string
}

// NewHandlerSet wires the HTTP surface to a. cache may be nil when the
// activity stream is disabled.
func NewHandlerSet(log zerolog.Logger, a *app.App, cache *redis.Client, cfg *config.AppConfig) (HandlerSet, error) {
	secret := cfg.Security.FormSecret
	if secret == "" {
		generated, err := security.RandomSecret()
		if err != nil {
			return HandlerSet{}, fmt.Errorf("form secret: %w", err)
		}
		secret = generated
		log.Debug().Msg("no form secret configured, generated one for this process")
	}

	return HandlerSet{
		log:        log,
		cfg:        cfg,
		app:        a,
		cache:      cache,
		formSecret: secret,
	}, nil
}

// RegisterWeb mounts the server-rendered pages.
func (h HandlerSet) RegisterWeb(router gin.IRouter) {
	router.GET("/", h.Index)

	forms := router.Group("/")
	forms.Use(middleware.FormToken(h.formSecret))
	forms.POST("/login", h.SubmitLogin)
	forms.POST("/login/demo", h.SubmitDemoLogin)
	forms.POST("/logout", h.SubmitLogout)

	profile := forms.Group("/profile")
	profile.Use(middleware.RequireSession(h.app, "/"))
	profile.POST("", h.SubmitProfile)
	profile.POST("/reset", h.SubmitProfileReset)
}

// RegisterAPI mounts the JSON API.
func (h HandlerSet) RegisterAPI(router *gin.RouterGroup) {
	router.GET("/healthz", h.Health)

	v1 := router.Group("/v1")
	v1.Use(middleware.JSONOnly())
	{
		v1.GET("/state", h.State)
		v1.GET("/activity", h.ListActivity)

		auth := v1.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/demo", h.DemoLogin)
		auth.POST("/logout", h.Logout)

		profile := v1.Group("/profile")
		profile.Use(middleware.RequireSession(h.app, ""))
		profile.GET("", h.GetProfile)
		profile.PUT("", h.SaveProfile)
		profile.PATCH("", h.MergeProfile)
		profile.POST("/reset", h.ResetProfile)
	}
}
