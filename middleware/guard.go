package middleware

import (
	"net/http"
	"net/url"

	"workmate/models"
	"workmate/session"

	"github.com/gin-gonic/gin"
)

// IdentityKey is where guarded handlers find the session identity in the
// gin context.
const IdentityKey = "identity"

// AccessRequirement is a destination's access predicate. An empty Roles
// slice means any authenticated role is acceptable.
type AccessRequirement struct {
	RequireAuth bool
	Roles       []models.Role
}

// Decision is the guard's verdict for one navigation.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Decide evaluates the requirement against the current identity. Absence of
// a session is a normal branch, not an error: anonymous access to a
// protected destination redirects to /login, and an authenticated identity
// with the wrong role is sent to its own dashboard instead.
func Decide(id *models.Identity, req AccessRequirement) Decision {
	if !req.RequireAuth {
		return Decision{Allow: true}
	}
	if id == nil {
		return Decision{RedirectTo: "/login"}
	}
	if len(req.Roles) > 0 && !roleAllowed(id.Role, req.Roles) {
		return Decision{RedirectTo: id.Role.Home()}
	}
	return Decision{Allow: true}
}

func roleAllowed(role models.Role, allowed []models.Role) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// RequireRole guards a route group on authentication plus role membership.
// The attempted path rides along as ?next= so the login flow can resume it.
func RequireRole(sessions *session.Store, roles ...models.Role) gin.HandlerFunc {
	return guard(sessions, AccessRequirement{RequireAuth: true, Roles: roles})
}

func guard(sessions *session.Store, req AccessRequirement) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := sessions.Current()
		decision := Decide(id, req)
		if !decision.Allow {
			target := decision.RedirectTo
			if target == "/login" {
				target += "?next=" + url.QueryEscape(c.Request.URL.Path)
			}
			c.Redirect(http.StatusFound, target)
			c.Abort()
			return
		}
		if id != nil {
			c.Set(IdentityKey, id)
		}
		c.Next()
	}
}
