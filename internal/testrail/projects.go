package testrail

import (
	"context"
	"encoding/json"
	"fmt"
)

// ProjectsFilter narrows GetProjects results.
type ProjectsFilter struct {
	IsCompleted *bool
	Limit       int
	Offset      int
}

// GetProject returns a project by ID.
func (c *Client) GetProject(ctx context.Context, projectID int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("get_project/%d", projectID), nil)
}

// GetProjects returns all projects.
func (c *Client) GetProjects(ctx context.Context, filter *ProjectsFilter) (json.RawMessage, error) {
	var p params
	if filter != nil {
		p.addBoolInt("is_completed", filter.IsCompleted)
		p.addInt("limit", filter.Limit)
		p.addInt("offset", filter.Offset)
	}
	return c.get(ctx, "get_projects", p)
}

// AddProject creates a new project.
func (c *Client) AddProject(ctx context.Context, data map[string]any) (json.RawMessage, error) {
	return c.post(ctx, "add_project", data, nil)
}

// UpdateProject updates an existing project.
func (c *Client) UpdateProject(ctx context.Context, projectID int, data map[string]any) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("update_project/%d", projectID), data, nil)
}

// DeleteProject deletes a project. This cannot be undone and removes all
// suites, cases and runs it contains.
func (c *Client) DeleteProject(ctx context.Context, projectID int) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("delete_project/%d", projectID), nil, nil)
}
