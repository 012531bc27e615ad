package testrail

import (
	"context"
	"encoding/json"
	"fmt"
)

// CasesFilter narrows GetCases results. Zero values mean "not set".
type CasesFilter struct {
	SuiteID       int
	SectionID     int
	CreatedAfter  int64
	CreatedBefore int64
	CreatedBy     []int
	MilestoneID   []int
	PriorityID    []int
	TemplateID    []int
	TypeID        []int
	UpdatedAfter  int64
	UpdatedBefore int64
	UpdatedBy     []int
	Limit         int
	Offset        int
}

// GetCase returns a test case by ID.
func (c *Client) GetCase(ctx context.Context, caseID int) (json.RawMessage, error) {
	return c.get(ctx, fmt.Sprintf("get_case/%d", caseID), nil)
}

// GetCases returns the test cases of a project, optionally filtered.
func (c *Client) GetCases(ctx context.Context, projectID int, filter *CasesFilter) (json.RawMessage, error) {
	var p params
	if filter != nil {
		p.addInt("suite_id", filter.SuiteID)
		p.addInt("section_id", filter.SectionID)
		p.addInt64("created_after", filter.CreatedAfter)
		p.addInt64("created_before", filter.CreatedBefore)
		p.addInts("created_by", filter.CreatedBy)
		p.addInts("milestone_id", filter.MilestoneID)
		p.addInts("priority_id", filter.PriorityID)
		p.addInts("template_id", filter.TemplateID)
		p.addInts("type_id", filter.TypeID)
		p.addInt64("updated_after", filter.UpdatedAfter)
		p.addInt64("updated_before", filter.UpdatedBefore)
		p.addInts("updated_by", filter.UpdatedBy)
		p.addInt("limit", filter.Limit)
		p.addInt("offset", filter.Offset)
	}
	return c.get(ctx, fmt.Sprintf("get_cases/%d", projectID), p)
}

// AddCase creates a test case in a section. The payload follows TestRail's
// documented schema and is forwarded verbatim.
func (c *Client) AddCase(ctx context.Context, sectionID int, data map[string]any) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("add_case/%d", sectionID), data, nil)
}

// CopyCasesToSection copies test cases into a section.
func (c *Client) CopyCasesToSection(ctx context.Context, sectionID int, data map[string]any) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("copy_cases_to_section/%d", sectionID), data, nil)
}

// MoveCasesToSection moves test cases into a section.
func (c *Client) MoveCasesToSection(ctx context.Context, sectionID int, data map[string]any) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("move_cases_to_section/%d", sectionID), data, nil)
}

// UpdateCase updates an existing test case.
func (c *Client) UpdateCase(ctx context.Context, caseID int, data map[string]any) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("update_case/%d", caseID), data, nil)
}

// UpdateCases updates multiple test cases of a suite at once.
func (c *Client) UpdateCases(ctx context.Context, suiteID int, data map[string]any) (json.RawMessage, error) {
	return c.post(ctx, fmt.Sprintf("update_cases/%d", suiteID), data, nil)
}

// DeleteCase deletes a test case. A non-nil soft of true previews the
// deletion without executing it.
func (c *Client) DeleteCase(ctx context.Context, caseID int, soft *bool) (json.RawMessage, error) {
	var p params
	p.addBoolInt("soft", soft)
	return c.post(ctx, fmt.Sprintf("delete_case/%d", caseID), nil, p)
}

// DeleteCases deletes multiple test cases of a suite.
func (c *Client) DeleteCases(ctx context.Context, suiteID int, data map[string]any, soft *bool) (json.RawMessage, error) {
	var p params
	p.addBoolInt("soft", soft)
	return c.post(ctx, fmt.Sprintf("delete_cases/%d", suiteID), data, p)
}

// GetCaseFields returns the available test case custom fields.
func (c *Client) GetCaseFields(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "get_case_fields", nil)
}

// AddCaseField creates a new test case custom field.
func (c *Client) AddCaseField(ctx context.Context, data map[string]any) (json.RawMessage, error) {
	return c.post(ctx, "add_case_field", data, nil)
}

// GetCaseTypes returns the available case types.
func (c *Client) GetCaseTypes(ctx context.Context) (json.RawMessage, error) {
	return c.get(ctx, "get_case_types", nil)
}
