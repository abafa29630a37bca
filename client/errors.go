package client

import "errors"

// Failure classes for backend calls. Handlers and the session store branch
// on these with errors.Is; the concrete message travels in the wrap.
var (
	// ErrNetwork covers requests that never completed (dial, timeout, EOF).
	ErrNetwork = errors.New("backend unreachable")
	// ErrInvalidCredentials is the backend's 401 on login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidInput is any other 4xx semantic rejection.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is the backend's 404.
	ErrNotFound = errors.New("not found")
	// ErrMalformedResponse is a 2xx whose body could not be parsed or is
	// missing required fields.
	ErrMalformedResponse = errors.New("malformed backend response")
	// ErrBackend is a 5xx from the backend.
	ErrBackend = errors.New("backend failure")
)
