package testrail

import (
	"context"
	"encoding/json"
	"fmt"
)

// UsersFilter narrows GetUsers results.
type UsersFilter struct {
	Limit  int
	Offset int
}

// GetUser returns a user by ID.
func (c *Client) GetUser(ctx context.Context, userID int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("get_user/%d", userID), nil)
}

// GetUserByEmail returns a user by email address.
func (c *Client) GetUserByEmail(ctx context.Context, email string) (json.RawMessage, error) {
	var p params
	p.add("email", email)
	return c.get(ctx, "get_user_by_email", p)
}

// GetUsers returns all users.
func (c *Client) GetUsers(ctx context.Context, filter *UsersFilter) (json.RawMessage, error) {
	var p params
	if filter != nil {
		p.addInt("limit", filter.Limit)
		p.addInt("offset", filter.Offset)
	}
	return c.get(ctx, "get_users", p)
}

// GetCurrentUser returns the user the client authenticates as.
func (c *Client) GetCurrentUser(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "get_current_user", nil)
}
