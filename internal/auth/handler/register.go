package handler

import (
	"errors"
	"net/http"

	"github.com/Romeo509/alx-backend-user-data/internal/auth/credentials"
	"github.com/Romeo509/alx-backend-user-data/internal/logger"

	"github.com/gin-gonic/gin"
)

type registerRequest struct {
	Email    string `form:"email" json:"email" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	u, err := h.credentialService.Register(
		c.Request.Context(),
		req.Email,
		req.Password,
	)

	if err != nil {
		if errors.Is(err, credentials.ErrAlreadyRegistered) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "email already registered"})
			return
		}
		logger.Error("registration failed", map[string]any{"error": err.Error()})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	logger.Info("user registered", map[string]any{"user_id": u.ID, "email": u.Email})

	c.JSON(http.StatusOK, gin.H{
		"email":   u.Email,
		"message": "user created",
	})
}
