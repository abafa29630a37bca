package client

import (
	"context"
	"net/http"
	"net/url"

	"workmate/models"
)

// jobEnvelope wraps the backend's job creation body: {"message", "job"}.
type jobEnvelope struct {
	Message string     `json:"message"`
	Job     models.Job `json:"job"`
}

// ListJobs returns all open jobs.
func (c *Client) ListJobs(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	if err := c.get(ctx, "/api/jobs", &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// ProviderJobs returns every job posted by a provider, open or not.
func (c *Client) ProviderJobs(ctx context.Context, providerID string) ([]models.Job, error) {
	var jobs []models.Job
	if err := c.get(ctx, "/api/jobs/provider/"+url.PathEscape(providerID), &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// CreateJob posts a new job and returns the created record.
func (c *Client) CreateJob(ctx context.Context, input models.JobInput) (*models.Job, error) {
	var env jobEnvelope
	if err := c.do(ctx, http.MethodPost, "/api/jobs", input, &env); err != nil {
		return nil, err
	}
	return &env.Job, nil
}

// UpdateJob applies a partial edit to a job.
func (c *Client) UpdateJob(ctx context.Context, jobID string, update models.JobUpdate) error {
	return c.do(ctx, http.MethodPut, "/api/jobs/"+url.PathEscape(jobID), update, nil)
}

// DeleteJob removes a job posting.
func (c *Client) DeleteJob(ctx context.Context, jobID string) error {
	return c.do(ctx, http.MethodDelete, "/api/jobs/"+url.PathEscape(jobID), nil, nil)
}

// Apply submits a student's application for a job.
func (c *Client) Apply(ctx context.Context, jobID, studentID string) error {
	body := map[string]string{"student_id": studentID}
	return c.do(ctx, http.MethodPost, "/api/jobs/"+url.PathEscape(jobID)+"/apply", body, nil)
}

// SuggestedJobs returns the backend's ranked suggestions for a student.
func (c *Client) SuggestedJobs(ctx context.Context, studentID string) ([]models.Job, error) {
	var jobs []models.Job
	if err := c.get(ctx, "/api/jobs/suggested/"+url.PathEscape(studentID), &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// SearchJobs returns open jobs matching the query.
func (c *Client) SearchJobs(ctx context.Context, query string) ([]models.Job, error) {
	var jobs []models.Job
	q := url.Values{"q": {query}}
	if err := c.get(ctx, "/api/jobs/search?"+q.Encode(), &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// SortJobs returns open jobs ordered by the backend.
func (c *Client) SortJobs(ctx context.Context, by, order string) ([]models.Job, error) {
	var jobs []models.Job
	q := url.Values{"by": {by}, "order": {order}}
	if err := c.get(ctx, "/api/jobs/sort?"+q.Encode(), &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}
