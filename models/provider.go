package models

// Provider is the profile the backend returns for GET /providers/:id.
// Jobs is populated only on the profile endpoint.
type Provider struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company"`
	Jobs    []Job  `json:"jobs,omitempty"`
}
