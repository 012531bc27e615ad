package testrail

import (
	"context"
	"encoding/json"
	"fmt"
)

// GetRole returns a user role by ID.
func (c *Client) GetRole(ctx context.Context, roleID int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("get_role/%d", roleID), nil)
}

// GetRoles returns all user roles.
func (c *Client) GetRoles(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "get_roles", nil)
}
