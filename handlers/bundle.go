package handlers

// HandlerBundle groups the gateway's handlers for route registration.
type HandlerBundle struct {
	Auth     *AuthHandler
	Home     *HomeHandler
	Student  *StudentHandler
	Provider *ProviderHandler
}
