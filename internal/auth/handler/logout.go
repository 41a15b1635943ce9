package handler

import (
	"net/http"

	"github.com/Romeo509/alx-backend-user-data/internal/logger"
	"github.com/Romeo509/alx-backend-user-data/internal/session"

	"github.com/gin-gonic/gin"
)

// Logout destroys the session named by the request cookie and sends
// the client back to the landing page. Requests without a live
// session are rejected outright.
func (h *Handler) Logout(c *gin.Context) {
	sessionID := h.sessionCookie(c)
	if sessionID == "" {
		c.Status(http.StatusForbidden)
		return
	}

	userID, err := h.sessions.Resolve(c.Request.Context(), sessionID)
	if err != nil {
		logger.Error("logout failed", map[string]any{"error": err.Error()})
		c.Status(http.StatusInternalServerError)
		return
	}
	if userID == "" {
		c.Status(http.StatusForbidden)
		return
	}

	if _, err := h.sessions.Destroy(c.Request.Context(), sessionID); err != nil {
		logger.Error("logout failed", map[string]any{"error": err.Error()})
		c.Status(http.StatusInternalServerError)
		return
	}

	session.ClearCookie(c.Writer, h.cookieOpts)

	logger.Info("logout", map[string]any{"user_id": userID, "ip": c.ClientIP()})

	c.Redirect(http.StatusFound, "/")
}

func (h *Handler) sessionCookie(c *gin.Context) string {
	name := h.cookieOpts.Name
	if name == "" {
		name = session.DefaultCookieName
	}
	cookie, err := c.Request.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}
