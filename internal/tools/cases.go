package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/qaops/testrail-mcp/internal/testrail"
)

func (r *Registry) caseTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("get_case",
				mcp.WithDescription("Get a test case by ID"),
				mcp.WithNumber("case_id", mcp.Required(), mcp.Description("Test case ID")),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				caseID, err := request.RequireInt("case_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.GetCase(ctx, caseID))
			},
		},
		{
			Tool: mcp.NewTool("get_cases",
				mcp.WithDescription("List the test cases of a project, with optional filters"),
				mcp.WithNumber("project_id", mcp.Required(), mcp.Description("Project ID")),
				mcp.WithNumber("suite_id", mcp.Description("Test suite ID, required for multi-suite projects")),
				mcp.WithNumber("section_id", mcp.Description("Only cases in this section")),
				mcp.WithNumber("created_after", mcp.Description("Only cases created after this UNIX timestamp")),
				mcp.WithNumber("created_before", mcp.Description("Only cases created before this UNIX timestamp")),
				withIntArray("created_by", "Only cases created by these user IDs"),
				withIntArray("milestone_id", "Only cases linked to these milestone IDs"),
				withIntArray("priority_id", "Only cases with these priority IDs"),
				withIntArray("template_id", "Only cases with these template IDs"),
				withIntArray("type_id", "Only cases with these case type IDs"),
				mcp.WithNumber("updated_after", mcp.Description("Only cases updated after this UNIX timestamp")),
				mcp.WithNumber("updated_before", mcp.Description("Only cases updated before this UNIX timestamp")),
				withIntArray("updated_by", "Only cases last updated by these user IDs"),
				withLimit(),
				withOffset(),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				projectID, err := request.RequireInt("project_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				filter := &testrail.CasesFilter{
					SuiteID:       request.GetInt("suite_id", 0),
					SectionID:     request.GetInt("section_id", 0),
					CreatedAfter:  int64(request.GetInt("created_after", 0)),
					CreatedBefore: int64(request.GetInt("created_before", 0)),
					CreatedBy:     intList(request, "created_by"),
					MilestoneID:   intList(request, "milestone_id"),
					PriorityID:    intList(request, "priority_id"),
					TemplateID:    intList(request, "template_id"),
					TypeID:        intList(request, "type_id"),
					UpdatedAfter:  int64(request.GetInt("updated_after", 0)),
					UpdatedBefore: int64(request.GetInt("updated_before", 0)),
					UpdatedBy:     intList(request, "updated_by"),
					Limit:         request.GetInt("limit", 0),
					Offset:        request.GetInt("offset", 0),
				}
				return toolResult(r.client.GetCases(ctx, projectID, filter))
			},
		},
		{
			Tool: mcp.NewTool("add_case",
				mcp.WithDescription("Create a test case in a section"),
				mcp.WithNumber("section_id", mcp.Required(), mcp.Description("Section ID the case is added to")),
				withData("Case fields per the TestRail add_case schema (title, type_id, priority_id, custom fields, ...)"),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				sectionID, err := request.RequireInt("section_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				data, err := payload(request)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.AddCase(ctx, sectionID, data))
			},
		},
		{
			Tool: mcp.NewTool("copy_cases_to_section",
				mcp.WithDescription("Copy test cases to a section"),
				mcp.WithNumber("section_id", mcp.Required(), mcp.Description("Target section ID")),
				withData("Case selection (case_ids)"),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				sectionID, err := request.RequireInt("section_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				data, err := payload(request)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.CopyCasesToSection(ctx, sectionID, data))
			},
		},
		{
			Tool: mcp.NewTool("move_cases_to_section",
				mcp.WithDescription("Move test cases to a section"),
				mcp.WithNumber("section_id", mcp.Required(), mcp.Description("Target section ID")),
				withData("Case selection (suite_id, case_ids)"),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				sectionID, err := request.RequireInt("section_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				data, err := payload(request)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.MoveCasesToSection(ctx, sectionID, data))
			},
		},
		{
			Tool: mcp.NewTool("update_case",
				mcp.WithDescription("Update an existing test case"),
				mcp.WithNumber("case_id", mcp.Required(), mcp.Description("Test case ID")),
				withData("Case fields to change"),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				caseID, err := request.RequireInt("case_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				data, err := payload(request)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.UpdateCase(ctx, caseID, data))
			},
		},
		{
			Tool: mcp.NewTool("update_cases",
				mcp.WithDescription("Update multiple test cases of a suite with the same values"),
				mcp.WithNumber("suite_id", mcp.Required(), mcp.Description("Test suite ID")),
				withData("Case selection and fields to change (case_ids plus case fields)"),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				suiteID, err := request.RequireInt("suite_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				data, err := payload(request)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.UpdateCases(ctx, suiteID, data))
			},
		},
		{
			Tool: mcp.NewTool("delete_case",
				mcp.WithDescription("Delete a test case"),
				mcp.WithNumber("case_id", mcp.Required(), mcp.Description("Test case ID")),
				mcp.WithBoolean("soft", mcp.Description("Preview the deletion without executing it")),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				caseID, err := request.RequireInt("case_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.DeleteCase(ctx, caseID, boolPtr(request, "soft")))
			},
		},
		{
			Tool: mcp.NewTool("delete_cases",
				mcp.WithDescription("Delete multiple test cases of a suite"),
				mcp.WithNumber("suite_id", mcp.Required(), mcp.Description("Test suite ID")),
				withData("Case selection (case_ids)"),
				mcp.WithBoolean("soft", mcp.Description("Preview the deletion without executing it")),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				suiteID, err := request.RequireInt("suite_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				data, err := payload(request)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.DeleteCases(ctx, suiteID, data, boolPtr(request, "soft")))
			},
		},
		{
			Tool: mcp.NewTool("get_case_fields",
				mcp.WithDescription("List the available test case custom fields"),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return toolResult(r.client.GetCaseFields(ctx))
			},
		},
		{
			Tool: mcp.NewTool("add_case_field",
				mcp.WithDescription("Create a new test case custom field"),
				withData("Field definition per the TestRail add_case_field schema (type, name, label, configs)"),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				data, err := payload(request)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.AddCaseField(ctx, data))
			},
		},
		{
			Tool: mcp.NewTool("get_case_types",
				mcp.WithDescription("List the available case types"),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return toolResult(r.client.GetCaseTypes(ctx))
			},
		},
	}
}
