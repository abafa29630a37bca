package models

// Assignment is one student/job pairing from the backend's optimal
// assignment computation. Cost is the backend's internal matching cost.
type Assignment struct {
	StudentID string  `json:"student_id"`
	JobID     string  `json:"job_id"`
	Cost      float64 `json:"cost"`
}

// AssignmentRequest selects the students and jobs to assign.
type AssignmentRequest struct {
	StudentIDs []string `json:"student_ids" binding:"required"`
	JobIDs     []string `json:"job_ids" binding:"required"`
}
