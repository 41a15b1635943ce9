package handler

import (
	"net/http"

	"github.com/Romeo509/alx-backend-user-data/internal/auth/credentials"
	"github.com/Romeo509/alx-backend-user-data/internal/session"
	"github.com/Romeo509/alx-backend-user-data/internal/user"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	credentialService *credentials.Service
	sessions          *session.Manager
	users             user.Directory
	cookieOpts        session.CookieOptions
}

func NewHandler(
	credentialService *credentials.Service,
	sessions *session.Manager,
	users user.Directory,
	cookieOpts session.CookieOptions,
) *Handler {
	return &Handler{
		credentialService: credentialService,
		sessions:          sessions,
		users:             users,
		cookieOpts:        cookieOpts,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Home)
	r.POST("/users", h.Register)
	r.POST("/sessions", h.Login)
	r.DELETE("/sessions", h.Logout)
	r.GET("/profile", h.Profile)
	r.POST("/reset_password", h.ResetPasswordToken)
	r.PUT("/reset_password", h.UpdatePassword)
}

func (h *Handler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Bienvenue"})
}
