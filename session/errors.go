package session

import "errors"

var (
	// ErrSuperseded reports that an auth operation resolved after a newer
	// login, register, or logout was issued; its response was discarded and
	// the session left as the newer operation set it.
	ErrSuperseded = errors.New("auth operation superseded")
	// ErrInvalidRole rejects a login or registration with an unknown role
	// before any network call is made.
	ErrInvalidRole = errors.New("invalid role")
)
