package testrail

import (
	"context"
	"encoding/json"
	"fmt"
)

// GetGroup returns a user group by ID.
func (c *Client) GetGroup(ctx context.Context, groupID int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("get_group/%d", groupID), nil)
}

// GetGroups returns all user groups.
func (c *Client) GetGroups(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "get_groups", nil)
}
