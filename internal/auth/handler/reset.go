package handler

import (
	"errors"
	"net/http"

	"github.com/Romeo509/alx-backend-user-data/internal/auth/credentials"
	"github.com/Romeo509/alx-backend-user-data/internal/logger"
	"github.com/Romeo509/alx-backend-user-data/internal/user"

	"github.com/gin-gonic/gin"
)

type resetTokenRequest struct {
	Email string `form:"email" json:"email" binding:"required"`
}

// ResetPasswordToken issues a reset token for a registered email.
// Unknown emails are rejected rather than silently accepted, matching
// the service contract.
func (h *Handler) ResetPasswordToken(c *gin.Context) {
	var req resetTokenRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Status(http.StatusForbidden)
		return
	}

	token, err := h.credentialService.ResetToken(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			c.Status(http.StatusForbidden)
			return
		}
		logger.Error("reset token failed", map[string]any{"error": err.Error()})
		c.Status(http.StatusInternalServerError)
		return
	}

	logger.Info("reset token issued", map[string]any{"email": req.Email})

	c.JSON(http.StatusOK, gin.H{
		"email":       req.Email,
		"reset_token": token,
	})
}

type updatePasswordRequest struct {
	Email       string `form:"email" json:"email" binding:"required"`
	ResetToken  string `form:"reset_token" json:"reset_token" binding:"required"`
	NewPassword string `form:"new_password" json:"new_password" binding:"required"`
}

// UpdatePassword consumes a reset token and installs a new password.
// Every session the user holds is revoked afterwards.
func (h *Handler) UpdatePassword(c *gin.Context) {
	var req updatePasswordRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Status(http.StatusForbidden)
		return
	}

	u, err := h.credentialService.UpdatePassword(
		c.Request.Context(),
		req.ResetToken,
		req.NewPassword,
	)
	if err != nil {
		if errors.Is(err, credentials.ErrInvalidResetToken) {
			c.Status(http.StatusForbidden)
			return
		}
		logger.Error("password update failed", map[string]any{"error": err.Error()})
		c.Status(http.StatusInternalServerError)
		return
	}

	// A changed password invalidates everything issued under the old one.
	if n, err := h.sessions.DestroyAllForUser(c.Request.Context(), u.ID); err != nil {
		logger.Warn("failed to revoke sessions after password change", map[string]any{
			"user_id": u.ID, "error": err.Error(),
		})
	} else if n > 0 {
		logger.Info("sessions revoked", map[string]any{"user_id": u.ID, "count": n})
	}

	c.JSON(http.StatusOK, gin.H{
		"email":   req.Email,
		"message": "Password updated",
	})
}
