package testrail

import (
	"context"
	"encoding/json"
	"fmt"
)

// GetPriorities returns the available priorities.
func (c *Client) GetPriorities(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "get_priorities", nil)
}

// GetStatuses returns the available test statuses.
func (c *Client) GetStatuses(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "get_statuses", nil)
}

// GetTemplates returns the available templates of a project.
func (c *Client) GetTemplates(ctx context.Context, projectID int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("get_templates/%d", projectID), nil)
}
