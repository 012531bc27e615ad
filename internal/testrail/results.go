package testrail

import (
	"context"
	"encoding/json"
	"fmt"
)

// ResultsFilter narrows result listings.
type ResultsFilter struct {
	CreatedAfter  int64
	CreatedBefore int64
	CreatedBy     []int
	StatusID      []int
	Limit         int
	Offset        int
}

func (f *ResultsFilter) query() params {
	var p params
	if f != nil {
		p.addInt64("created_after", f.CreatedAfter)
		p.addInt64("created_before", f.CreatedBefore)
		p.addInts("created_by", f.CreatedBy)
		p.addInts("status_id", f.StatusID)
		p.addInt("limit", f.Limit)
		p.addInt("offset", f.Offset)
	}
	return p
}

// GetResults returns the results of a test.
func (c *Client) GetResults(ctx context.Context, testID int, filter *ResultsFilter) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("get_results/%d", testID), filter.query())
}

// GetResultsForCase returns the results of a test case within a run.
func (c *Client) GetResultsForCase(ctx context.Context, runID, caseID int, filter *ResultsFilter) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("get_results_for_case/%d/%d", runID, caseID), filter.query())
}

// GetResultsForRun returns all results of a test run.
func (c *Client) GetResultsForRun(ctx context.Context, runID int, filter *ResultsFilter) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("get_results_for_run/%d", runID), filter.query())
}

// AddResult adds a result to a test.
func (c *Client) AddResult(ctx context.Context, testID int, data map[string]any) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("add_result/%d", testID), data, nil)
}

// AddResultForCase adds a result to a test case within a run.
func (c *Client) AddResultForCase(ctx context.Context, runID, caseID int, data map[string]any) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("add_result_for_case/%d/%d", runID, caseID), data, nil)
}

// AddResults adds results to multiple tests of a run in one request.
func (c *Client) AddResults(ctx context.Context, runID int, data map[string]any) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("add_results/%d", runID), data, nil)
}

// AddResultsForCases adds results to multiple test cases of a run in one
// request.
func (c *Client) AddResultsForCases(ctx context.Context, runID int, data map[string]any) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("add_results_for_cases/%d", runID), data, nil)
}

// GetResultFields returns the available result custom fields.
func (c *Client) GetResultFields(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "get_result_fields", nil)
}
