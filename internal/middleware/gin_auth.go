package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GinGate adapts the net/http Gate to Gin. Auth decisions stay
// strategy-agnostic; this only bridges the two handler models.
func GinGate(gate *Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Bridge handler to allow net/http middleware execution
		next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id, ok := UserIDFromContext(r.Context()); ok {
				c.Set("userID", id)
			}
			c.Request = r
			c.Next()
		})

		handler := gate.Handler(next)
		handler.ServeHTTP(c.Writer, c.Request)

		// If the gate already wrote the response, stop the Gin chain
		if c.Writer.Written() {
			c.Abort()
		}
	}
}
