package handler

import (
	"errors"
	"net/http"

	"github.com/Romeo509/alx-backend-user-data/internal/logger"
	"github.com/Romeo509/alx-backend-user-data/internal/session"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Email    string `form:"email" json:"email" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	userID, err := h.credentialService.Authenticate(
		c.Request.Context(),
		req.Email,
		req.Password,
	)

	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	sess, err := h.sessions.Create(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, session.ErrUnknownUser) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		logger.Error("failed to create session", map[string]any{"error": err.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "session error"})
		return
	}

	session.SetCookie(c.Writer, sess.SessionID, sess.ExpiresAt, h.cookieOpts)

	logger.Info("login", map[string]any{
		"user_id": userID,
		"email":   req.Email,
		"ip":      c.ClientIP(),
	})

	c.JSON(http.StatusOK, gin.H{
		"email":   req.Email,
		"message": "logged in",
	})
}
