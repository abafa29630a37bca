package models

// Registration carries the signup fields. Location and Bio apply to
// students, Company to providers; the backend ignores the rest.
type Registration struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Role     Role   `json:"type" binding:"required"`
	Location string `json:"location,omitempty"`
	Bio      string `json:"bio,omitempty"`
	Company  string `json:"company,omitempty"`
}
