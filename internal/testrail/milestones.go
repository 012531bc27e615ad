package testrail

import (
	"context"
	"encoding/json"
	"fmt"
)

// MilestonesFilter narrows GetMilestones results.
type MilestonesFilter struct {
	IsCompleted *bool
	IsStarted   *bool
	Limit       int
	Offset      int
}

// GetMilestone returns a milestone by ID.
func (c *Client) GetMilestone(ctx context.Context, milestoneID int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("get_milestone/%d", milestoneID), nil)
}

// GetMilestones returns the milestones of a project.
func (c *Client) GetMilestones(ctx context.Context, projectID int, filter *MilestonesFilter) (json.RawMessage, error) {
	var p params
	if filter != nil {
		p.addBoolInt("is_completed", filter.IsCompleted)
		p.addBoolInt("is_started", filter.IsStarted)
		p.addInt("limit", filter.Limit)
		p.addInt("offset", filter.Offset)
	}
	return c.get(ctx, fmt.Sprintf("get_milestones/%d", projectID), p)
}

// AddMilestone creates a milestone in a project.
func (c *Client) AddMilestone(ctx context.Context, projectID int, data map[string]any) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("add_milestone/%d", projectID), data, nil)
}

// UpdateMilestone updates an existing milestone.
func (c *Client) UpdateMilestone(ctx context.Context, milestoneID int, data map[string]any) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("update_milestone/%d", milestoneID), data, nil)
}

// DeleteMilestone deletes a milestone.
func (c *Client) DeleteMilestone(ctx context.Context, milestoneID int) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("delete_milestone/%d", milestoneID), nil, nil)
}
