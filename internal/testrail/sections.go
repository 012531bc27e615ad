package testrail

import (
	"context"
	"encoding/json"
	"fmt"
)

// SectionsFilter narrows GetSections results.
type SectionsFilter struct {
	SuiteID int
	Limit   int
	Offset  int
}

// GetSection returns a section by ID.
func (c *Client) GetSection(ctx context.Context, sectionID int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("get_section/%d", sectionID), nil)
}

// GetSections returns the sections of a project.
func (c *Client) GetSections(ctx context.Context, projectID int, filter *SectionsFilter) (json.RawMessage, error) {
	var p params
	if filter != nil {
		p.addInt("suite_id", filter.SuiteID)
		p.addInt("limit", filter.Limit)
		p.addInt("offset", filter.Offset)
	}
	return c.get(ctx, fmt.Sprintf("get_sections/%d", projectID), p)
}

// AddSection creates a section in a project.
func (c *Client) AddSection(ctx context.Context, projectID int, data map[string]any) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("add_section/%d", projectID), data, nil)
}

// MoveSection moves a section under a new parent or after a sibling.
func (c *Client) MoveSection(ctx context.Context, sectionID int, data map[string]any) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("move_section/%d", sectionID), data, nil)
}

// UpdateSection updates an existing section.
func (c *Client) UpdateSection(ctx context.Context, sectionID int, data map[string]any) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("update_section/%d", sectionID), data, nil)
}

// DeleteSection deletes a section and the cases it contains.
func (c *Client) DeleteSection(ctx context.Context, sectionID int, soft *bool) (json.RawMessage, error) {
	var p params
	p.addBoolInt("soft", soft)
	return c.post(ctx, fmt.Sprintf("delete_section/%d", sectionID), nil, p)
}
