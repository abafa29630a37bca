package client

import (
	"context"
	"net/http"

	"workmate/models"
)

// assignmentEnvelope wraps the backend's body: {"message", "assignments"}.
type assignmentEnvelope struct {
	Message     string              `json:"message"`
	Assignments []models.Assignment `json:"assignments"`
}

// OptimalAssignment asks the backend to compute and commit the optimal
// student/job pairing for the given sets.
func (c *Client) OptimalAssignment(ctx context.Context, req models.AssignmentRequest) ([]models.Assignment, error) {
	var env assignmentEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/assignments/optimal", req, &env); err != nil {
		return nil, err
	}
	return env.Assignments, nil
}
