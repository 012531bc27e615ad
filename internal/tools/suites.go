package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (r *Registry) suiteTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("get_suite",
				mcp.WithDescription("Get a test suite by ID"),
				mcp.WithNumber("suite_id", mcp.Required(), mcp.Description("Test suite ID")),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				suiteID, err := request.RequireInt("suite_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.GetSuite(ctx, suiteID))
			},
		},
		{
			Tool: mcp.NewTool("get_suites",
				mcp.WithDescription("List the test suites of a project"),
				mcp.WithNumber("project_id", mcp.Required(), mcp.Description("Project ID")),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				projectID, err := request.RequireInt("project_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.GetSuites(ctx, projectID))
			},
		},
		{
			Tool: mcp.NewTool("add_suite",
				mcp.WithDescription("Create a test suite in a project"),
				mcp.WithNumber("project_id", mcp.Required(), mcp.Description("Project ID")),
				withData("Suite fields per the TestRail add_suite schema (name, description)"),
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
				return toolResult(r.client.AddSuite(ctx, projectID, data))
			},
		},
		{
			Tool: mcp.NewTool("update_suite",
				mcp.WithDescription("Update an existing test suite"),
				mcp.WithNumber("suite_id", mcp.Required(), mcp.Description("Test suite ID")),
				withData("Suite fields to change"),
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
				return toolResult(r.client.UpdateSuite(ctx, suiteID, data))
			},
		},
		{
			Tool: mcp.NewTool("delete_suite",
				mcp.WithDescription("Delete a test suite including all cases and runs it contains"),
				mcp.WithNumber("suite_id", mcp.Required(), mcp.Description("Test suite ID")),
				mcp.WithBoolean("soft", mcp.Description("Preview the deletion without executing it")),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				suiteID, err := request.RequireInt("suite_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.DeleteSuite(ctx, suiteID, boolPtr(request, "soft")))
			},
		},
	}
}
