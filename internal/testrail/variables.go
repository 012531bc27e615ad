package testrail

import (
	"context"
	"encoding/json"
	"fmt"
)

// GetVariables returns the test data variables of a project.
func (c *Client) GetVariables(ctx context.Context, projectID int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("get_variables/%d", projectID), nil)
}

// AddVariable creates a variable in a project.
func (c *Client) AddVariable(ctx context.Context, projectID int, data map[string]any) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("add_variable/%d", projectID), data, nil)
}

// UpdateVariable updates an existing variable.
func (c *Client) UpdateVariable(ctx context.Context, variableID int, data map[string]any) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("update_variable/%d", variableID), data, nil)
}

// DeleteVariable deletes a variable and its values in all datasets.
func (c *Client) DeleteVariable(ctx context.Context, variableID int) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("delete_variable/%d", variableID), nil, nil)
}
