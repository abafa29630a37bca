package models

// Student is the profile the backend returns for GET /students/:id.
// JobHistory is populated only on the profile endpoint.
type Student struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Location      string `json:"location"`
	Bio           string `json:"bio"`
	Rating        string `json:"rating"`
	JobsCompleted string `json:"jobs_completed"`
	JobHistory    []Job  `json:"job_history,omitempty"`
}
