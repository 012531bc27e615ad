package testrail

import (
	"context"
	"encoding/json"
	"fmt"
)

// RunsFilter narrows GetRuns results.
type RunsFilter struct {
	CreatedAfter  int64
	CreatedBefore int64
	CreatedBy     []int
	IsCompleted   *bool
	MilestoneID   []int
	SuiteID       []int
	Limit         int
	Offset        int
}

// TestsFilter narrows GetTests results.
type TestsFilter struct {
	StatusID []int
	Limit    int
	Offset   int
}

// GetRun returns a test run by ID.
func (c *Client) GetRun(ctx context.Context, runID int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("get_run/%d", runID), nil)
}

// GetRuns returns the test runs of a project. Runs that are part of a test
// plan are not included; TestRail exposes those through the plan itself.
func (c *Client) GetRuns(ctx context.Context, projectID int, filter *RunsFilter) (json.RawMessage, error) {
	var p params
	if filter != nil {
		p.addInt64("created_after", filter.CreatedAfter)
		p.addInt64("created_before", filter.CreatedBefore)
		p.addInts("created_by", filter.CreatedBy)
		p.addBoolInt("is_completed", filter.IsCompleted)
		p.addInts("milestone_id", filter.MilestoneID)
		p.addInts("suite_id", filter.SuiteID)
		p.addInt("limit", filter.Limit)
		p.addInt("offset", filter.Offset)
	}
	return c.get(ctx, fmt.Sprintf("get_runs/%d", projectID), p)
}

// AddRun creates a test run in a project.
func (c *Client) AddRun(ctx context.Context, projectID int, data map[string]any) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("add_run/%d", projectID), data, nil)
}

// UpdateRun updates an existing test run.
func (c *Client) UpdateRun(ctx context.Context, runID int, data map[string]any) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("update_run/%d", runID), data, nil)
}

// CloseRun closes a test run and archives its tests and results.
func (c *Client) CloseRun(ctx context.Context, runID int) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("close_run/%d", runID), nil, nil)
}

// DeleteRun deletes a test run.
func (c *Client) DeleteRun(ctx context.Context, runID int) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("delete_run/%d", runID), nil, nil)
}

// GetTest returns a test by ID.
func (c *Client) GetTest(ctx context.Context, testID int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("get_test/%d", testID), nil)
}

// GetTests returns the tests of a test run.
func (c *Client) GetTests(ctx context.Context, runID int, filter *TestsFilter) (json.RawMessage, error) {
	var p params
	if filter != nil {
		p.addInts("status_id", filter.StatusID)
		p.addInt("limit", filter.Limit)
		p.addInt("offset", filter.Offset)
	}
	return c.get(ctx, fmt.Sprintf("get_tests/%d", runID), p)
}
