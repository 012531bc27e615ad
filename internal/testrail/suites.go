package testrail

import (
	"context"
	"encoding/json"
	"fmt"
)

// GetSuite returns a test suite by ID.
func (c *Client) GetSuite(ctx context.Context, suiteID int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("get_suite/%d", suiteID), nil)
}

// GetSuites returns all test suites of a project.
func (c *Client) GetSuites(ctx context.Context, projectID int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("get_suites/%d", projectID), nil)
}

// AddSuite creates a test suite in a project.
func (c *Client) AddSuite(ctx context.Context, projectID int, data map[string]any) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("add_suite/%d", projectID), data, nil)
}

// UpdateSuite updates an existing test suite.
func (c *Client) UpdateSuite(ctx context.Context, suiteID int, data map[string]any) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("update_suite/%d", suiteID), data, nil)
}

// DeleteSuite deletes a test suite and everything it contains.
func (c *Client) DeleteSuite(ctx context.Context, suiteID int, soft *bool) (json.RawMessage, error) {
	var p params
	p.addBoolInt("soft", soft)
	return c.post(ctx, fmt.Sprintf("delete_suite/%d", suiteID), nil, p)
}
