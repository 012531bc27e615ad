package testrail

import (
	"context"
	"encoding/json"
	"fmt"
)

// PlansFilter narrows GetPlans results.
type PlansFilter struct {
	CreatedAfter  int64
	CreatedBefore int64
	CreatedBy     []int
	IsCompleted   *bool
	MilestoneID   []int
	Limit         int
	Offset        int
}

// GetPlan returns a test plan by ID, including its entries and runs.
func (c *Client) GetPlan(ctx context.Context, planID int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("get_plan/%d", planID), nil)
}

// GetPlans returns the test plans of a project.
func (c *Client) GetPlans(ctx context.Context, projectID int, filter *PlansFilter) (json.RawMessage, error) {
	var p params
	if filter != nil {
		p.addInt64("created_after", filter.CreatedAfter)
		p.addInt64("created_before", filter.CreatedBefore)
		p.addInts("created_by", filter.CreatedBy)
		p.addBoolInt("is_completed", filter.IsCompleted)
		p.addInts("milestone_id", filter.MilestoneID)
		p.addInt("limit", filter.Limit)
		p.addInt("offset", filter.Offset)
	}
	return c.get(ctx, fmt.Sprintf("get_plans/%d", projectID), p)
}

// AddPlan creates a test plan in a project.
func (c *Client) AddPlan(ctx context.Context, projectID int, data map[string]any) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("add_plan/%d", projectID), data, nil)
}

// AddPlanEntry adds an entry (a group of runs) to a test plan.
func (c *Client) AddPlanEntry(ctx context.Context, planID int, data map[string]any) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("add_plan_entry/%d", planID), data, nil)
}

// UpdatePlan updates an existing test plan.
func (c *Client) UpdatePlan(ctx context.Context, planID int, data map[string]any) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("update_plan/%d", planID), data, nil)
}

// UpdatePlanEntry updates an entry of a test plan. Entry IDs are strings in
// TestRail's API, unlike every other identifier.
func (c *Client) UpdatePlanEntry(ctx context.Context, planID int, entryID string, data map[string]any) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("update_plan_entry/%d/%s", planID, entryID), data, nil)
}

// ClosePlan closes a test plan and archives its runs and results.
func (c *Client) ClosePlan(ctx context.Context, planID int) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("close_plan/%d", planID), nil, nil)
}

// DeletePlan deletes a test plan.
func (c *Client) DeletePlan(ctx context.Context, planID int) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("delete_plan/%d", planID), nil, nil)
}

// DeletePlanEntry removes an entry from a test plan.
func (c *Client) DeletePlanEntry(ctx context.Context, planID int, entryID string) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("delete_plan_entry/%d/%s", planID, entryID), nil, nil)
}
