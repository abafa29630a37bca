package client

import (
	"context"
	"net/http"
	"net/url"

	"workmate/models"
)

// GetStudent fetches a student profile, including job history.
func (c *Client) GetStudent(ctx context.Context, studentID string) (*models.Student, error) {
	var student models.Student
	if err := c.get(ctx, "/api/students/"+url.PathEscape(studentID), &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// RateStudent submits a 1-5 rating for a student.
func (c *Client) RateStudent(ctx context.Context, studentID string, rating float64) error {
	body := map[string]float64{"rating": rating}
	return c.do(ctx, http.MethodPost, "/api/students/"+url.PathEscape(studentID)+"/rate", body, nil)
}
