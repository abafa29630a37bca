package models

// Role is the kind of account an identity belongs to. It is fixed for the
// lifetime of the identity; a session never changes role.
type Role string

const (
	RoleStudent  Role = "student"
	RoleProvider Role = "provider"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleProvider
}

// Home returns the dashboard path for the role.
func (r Role) Home() string {
	if r == RoleProvider {
		return "/provider"
	}
	return "/student"
}

// Identity is the authenticated principal held by the session store.
// The backend assigns the ID; the role comes from the login/registration
// request since the backend omits it from its responses.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"type"`
}

// WellFormed reports whether the identity carries the fields a session
// cannot function without. A 2xx auth response failing this check is
// treated as malformed, not as a partial session.
func (i Identity) WellFormed() bool {
	return i.ID != "" && i.Email != "" && i.Role.Valid()
}
