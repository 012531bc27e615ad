package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/qaops/testrail-mcp/internal/testrail"
)

func (r *Registry) sectionTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("get_section",
				mcp.WithDescription("Get a section by ID"),
				mcp.WithNumber("section_id", mcp.Required(), mcp.Description("Section ID")),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				sectionID, err := request.RequireInt("section_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.GetSection(ctx, sectionID))
			},
		},
		{
			Tool: mcp.NewTool("get_sections",
				mcp.WithDescription("List the sections of a project"),
				mcp.WithNumber("project_id", mcp.Required(), mcp.Description("Project ID")),
				mcp.WithNumber("suite_id", mcp.Description("Test suite ID, required for multi-suite projects")),
				withLimit(),
				withOffset(),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				projectID, err := request.RequireInt("project_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				filter := &testrail.SectionsFilter{
					SuiteID: request.GetInt("suite_id", 0),
					Limit:   request.GetInt("limit", 0),
					Offset:  request.GetInt("offset", 0),
				}
				return toolResult(r.client.GetSections(ctx, projectID, filter))
			},
		},
		{
			Tool: mcp.NewTool("add_section",
				mcp.WithDescription("Create a section in a project"),
				mcp.WithNumber("project_id", mcp.Required(), mcp.Description("Project ID")),
				withData("Section fields per the TestRail add_section schema (name, suite_id, parent_id, description)"),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				projectID, err := request.RequireInt("project_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				data, err := payload(request)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.AddSection(ctx, projectID, data))
			},
		},
		{
			Tool: mcp.NewTool("move_section",
				mcp.WithDescription("Move a section under a new parent or after another section"),
				mcp.WithNumber("section_id", mcp.Required(), mcp.Description("Section ID")),
				withData("Target position (parent_id, after_id)"),
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
				return toolResult(r.client.MoveSection(ctx, sectionID, data))
			},
		},
		{
			Tool: mcp.NewTool("update_section",
				mcp.WithDescription("Update an existing section"),
				mcp.WithNumber("section_id", mcp.Required(), mcp.Description("Section ID")),
				withData("Section fields to change"),
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
				return toolResult(r.client.UpdateSection(ctx, sectionID, data))
			},
		},
		{
			Tool: mcp.NewTool("delete_section",
				mcp.WithDescription("Delete a section including the test cases it contains"),
				mcp.WithNumber("section_id", mcp.Required(), mcp.Description("Section ID")),
				mcp.WithBoolean("soft", mcp.Description("Preview the deletion without executing it")),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				sectionID, err := request.RequireInt("section_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.DeleteSection(ctx, sectionID, boolPtr(request, "soft")))
			},
		},
	}
}
