package testrail

import (
	"context"
	"encoding/json"
	"fmt"
)

// GetReports returns the API-accessible report templates of a project.
func (c *Client) GetReports(ctx context.Context, projectID int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("get_reports/%d", projectID), nil)
}

// RunReport executes a report template and returns the URLs of the
// generated report.
func (c *Client) RunReport(ctx context.Context, reportTemplateID int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("run_report/%d", reportTemplateID), nil)
}
