package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Profile returns the authenticated user's email. The auth gate has
// already resolved the session; an empty userID means the gate was
// bypassed, which is treated as forbidden.
func (h *Handler) Profile(c *gin.Context) {
	userID := c.GetString("userID")
	if userID == "" {
		c.Status(http.StatusForbidden)
		return
	}

	u, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		c.Status(http.StatusForbidden)
		return
	}

	c.JSON(http.StatusOK, gin.H{"email": u.Email})
}
