package testrail

import (
	"context"
	"encoding/json"
	"fmt"
)

// SharedStepsFilter narrows GetSharedSteps results.
type SharedStepsFilter struct {
	CreatedAfter  int64
	CreatedBefore int64
	CreatedBy     []int
	UpdatedAfter  int64
	UpdatedBefore int64
	UpdatedBy     []int
	Limit         int
	Offset        int
}

// GetSharedStep returns a shared step by ID.
func (c *Client) GetSharedStep(ctx context.Context, sharedStepID int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("get_shared_step/%d", sharedStepID), nil)
}

// GetSharedSteps returns the shared steps of a project.
func (c *Client) GetSharedSteps(ctx context.Context, projectID int, filter *SharedStepsFilter) (json.RawMessage, error) {
	var p params
	if filter != nil {
		p.addInt64("created_after", filter.CreatedAfter)
		p.addInt64("created_before", filter.CreatedBefore)
		p.addInts("created_by", filter.CreatedBy)
		p.addInt64("updated_after", filter.UpdatedAfter)
		p.addInt64("updated_before", filter.UpdatedBefore)
		p.addInts("updated_by", filter.UpdatedBy)
		p.addInt("limit", filter.Limit)
		p.addInt("offset", filter.Offset)
	}
	return c.get(ctx, fmt.Sprintf("get_shared_steps/%d", projectID), p)
}

// AddSharedStep creates a shared step in a project.
func (c *Client) AddSharedStep(ctx context.Context, projectID int, data map[string]any) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("add_shared_step/%d", projectID), data, nil)
}

// UpdateSharedStep updates an existing shared step.
func (c *Client) UpdateSharedStep(ctx context.Context, sharedStepID int, data map[string]any) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("update_shared_step/%d", sharedStepID), data, nil)
}

// DeleteSharedStep deletes a shared step.
func (c *Client) DeleteSharedStep(ctx context.Context, sharedStepID int, soft *bool) (json.RawMessage, error) {
	var p params
	p.addBoolInt("soft", soft)
	return c.post(ctx, fmt.Sprintf("delete_shared_step/%d", sharedStepID), nil, p)
}
