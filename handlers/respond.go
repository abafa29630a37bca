package handlers

import (
	"errors"
	"net/http"

	"workmate/client"
	"workmate/middleware"
	"workmate/models"
	"workmate/session"
	"workmate/utils"

	"github.com/gin-gonic/gin"
)

// respondAPIError maps a backend/session failure onto an HTTP status for
// the browser. Failures are never swallowed into empty successes.
func respondAPIError(c *gin.Context, err error, action string) {
	var status int
	var message string

	switch {
	case errors.Is(err, client.ErrInvalidCredentials):
		status, message = http.StatusUnauthorized, "Invalid credentials"
	case errors.Is(err, client.ErrNotFound):
		status, message = http.StatusNotFound, "Not found"
	case errors.Is(err, client.ErrInvalidInput):
		status, message = http.StatusBadRequest, "Invalid request"
	case errors.Is(err, session.ErrInvalidRole):
		status, message = http.StatusBadRequest, "Invalid account type"
	case errors.Is(err, session.ErrSuperseded):
		status, message = http.StatusConflict, "A newer sign-in attempt took precedence"
	case errors.Is(err, client.ErrMalformedResponse):
		status, message = http.StatusBadGateway, "Backend returned an unusable response"
	case errors.Is(err, client.ErrNetwork), errors.Is(err, client.ErrBackend):
		status, message = http.StatusBadGateway, "Backend unavailable"
	default:
		status, message = http.StatusInternalServerError, "Internal error"
	}

	utils.JSONError(c, status, action+" failed: "+message, err.Error())
}

// currentIdentity fetches the identity the route guard stored in the
// context. Guarded routes always have one; its absence is a wiring bug.
func currentIdentity(c *gin.Context) (*models.Identity, bool) {
	v, exists := c.Get(middleware.IdentityKey)
	if !exists {
		return nil, false
	}
	id, ok := v.(*models.Identity)
	return id, ok
}
