package testrail

import (
	"context"
	"encoding/json"
	"fmt"
)

// GetConfigs returns the configuration groups of a project, including the
// configurations of each group.
func (c *Client) GetConfigs(ctx context.Context, projectID int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("get_configs/%d", projectID), nil)
}

// AddConfigGroup creates a configuration group in a project.
func (c *Client) AddConfigGroup(ctx context.Context, projectID int, data map[string]any) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("add_config_group/%d", projectID), data, nil)
}

// AddConfig creates a configuration inside a group.
func (c *Client) AddConfig(ctx context.Context, configGroupID int, data map[string]any) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("add_config/%d", configGroupID), data, nil)
}

// UpdateConfigGroup updates a configuration group.
func (c *Client) UpdateConfigGroup(ctx context.Context, configGroupID int, data map[string]any) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("update_config_group/%d", configGroupID), data, nil)
}

// UpdateConfig updates a configuration.
func (c *Client) UpdateConfig(ctx context.Context, configID int, data map[string]any) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("update_config/%d", configID), data, nil)
}

// DeleteConfigGroup deletes a configuration group and its configurations.
func (c *Client) DeleteConfigGroup(ctx context.Context, configGroupID int) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("delete_config_group/%d", configGroupID), nil, nil)
}

// DeleteConfig deletes a configuration.
func (c *Client) DeleteConfig(ctx context.Context, configID int) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("delete_config/%d", configID), nil, nil)
}
