package models

// Job mirrors the backend's job record. The backend stores every field as a
// string (CSV-backed), so numeric-looking fields stay strings on the wire.
type Job struct {
	ID                string `json:"id"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	Location          string `json:"location"`
	Pay               string `json:"pay"`
	Status            string `json:"status"`
	AssignedStudentID string `json:"assigned_student_id"`
	ProviderID        string `json:"provider_id"`
}

// JobInput carries the fields a provider submits when posting a job.
// ProviderID is stamped by the handler from the current session.
type JobInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location" binding:"required"`
	Pay         string `json:"pay" binding:"required"`
	ProviderID  string `json:"provider_id,omitempty"`
}

// JobUpdate carries a partial job edit. Empty fields are omitted so the
// backend only overwrites what was provided.
type JobUpdate struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	Pay         string `json:"pay,omitempty"`
	Status      string `json:"status,omitempty"`
}
