package handlers

import (
	"net/http"

	"workmate/client"
	"workmate/session"

	"github.com/gin-gonic/gin"
)

// HomeHandler serves the landing and health endpoints.
type HomeHandler struct {
	Sessions *session.Store
	API      *client.Client
}

func NewHomeHandler(sessions *session.Store, api *client.Client) *HomeHandler {
	return &HomeHandler{Sessions: sessions, API: api}
}

// Landing is the landing destination's own policy: an authenticated
// session is sent straight to its dashboard; everyone else gets the
// welcome payload.
func (h *HomeHandler) Landing(c *gin.Context) {
	if id := h.Sessions.Current(); id != nil {
		c.Redirect(http.StatusFound, id.Role.Home())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"service": "workmate-gateway",
		"message": "Welcome to WorkMate. Sign in at /login or create an account at /register.",
	})
}

// Health reports gateway liveness and whether the backend is reachable.
func (h *HomeHandler) Health(c *gin.Context) {
	backend := "ok"
	if err := h.API.Health(c.Request.Context()); err != nil {
		backend = "unreachable"
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "backend": backend})
}
