package client

import (
	"context"
	"net/url"

	"workmate/models"
)

// GetProvider fetches a provider profile, including its job postings.
func (c *Client) GetProvider(ctx context.Context, providerID string) (*models.Provider, error) {
	var provider models.Provider
	if err := c.get(ctx, "/api/providers/"+url.PathEscape(providerID), &provider); err != nil {
		return nil, err
	}
	return &provider, nil
}
