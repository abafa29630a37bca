package handlers

import (
	"net/http"

	"workmate/models"
	"workmate/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes the session lifecycle over HTTP.
type AuthHandler struct {
	Sessions *session.Store
}

func NewAuthHandler(sessions *session.Store) *AuthHandler {
	return &AuthHandler{Sessions: sessions}
}

// LoginHandler signs the user in through the backend and answers with the
// identity plus where the browser should go next.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	logger := getLogger(c)

	var req struct {
		Email    string      `json:"email" binding:"required"`
		Password string      `json:"password" binding:"required"`
		Role     models.Role `json:"type" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	id, err := h.Sessions.Login(c.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		logger.Warn("Login failed", zap.String("email", req.Email), zap.Error(err))
		respondAPIError(c, err, "Login")
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": id, "redirect": postLoginTarget(c, id)})
}

// RegisterHandler creates an account; on success the new identity is
// already the current session.
func (h *AuthHandler) RegisterHandler(c *gin.Context) {
	logger := getLogger(c)

	var reg models.Registration
	if err := c.ShouldBindJSON(&reg); err != nil {
		logger.Error("Invalid registration request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	id, err := h.Sessions.Register(c.Request.Context(), reg)
	if err != nil {
		logger.Warn("Registration failed", zap.String("email", reg.Email), zap.Error(err))
		respondAPIError(c, err, "Registration")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"user": id, "redirect": postLoginTarget(c, id)})
}

// LoginPageHandler is the destination the guard redirects anonymous
// visitors to. The gateway has no HTML views, so it answers with a sign-in
// prompt, echoing the recorded destination when one rode along.
func (h *AuthHandler) LoginPageHandler(c *gin.Context) {
	resp := gin.H{"message": "Sign in by POSTing email, password, and type to /login."}
	if next := c.Query("next"); isLocalPath(next) {
		resp["next"] = next
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler clears the session. Logging out twice is still a success.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	h.Sessions.Logout(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// SessionHandler reports the current session without side effects.
func (h *AuthHandler) SessionHandler(c *gin.Context) {
	id := h.Sessions.Current()
	if id == nil {
		c.JSON(http.StatusOK, gin.H{"authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"authenticated": true, "user": id})
}

// postLoginTarget resumes the path the guard recorded before redirecting to
// login, defaulting to the role's dashboard.
func postLoginTarget(c *gin.Context, id *models.Identity) string {
	if next := c.Query("next"); isLocalPath(next) {
		return next
	}
	return id.Role.Home()
}

// isLocalPath accepts only site-relative paths as navigation targets. A
// second '/' or '\' would make the value protocol-relative, which browsers
// resolve against an attacker-chosen host.
func isLocalPath(p string) bool {
	if p == "" || p[0] != '/' {
		return false
	}
	return len(p) == 1 || (p[1] != '/' && p[1] != '\\')
}
