package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/qaops/testrail-mcp/internal/testrail"
)

func (r *Registry) projectTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("get_project",
				mcp.WithDescription("Get a TestRail project by ID"),
				mcp.WithNumber("project_id", mcp.Required(), mcp.Description("Project ID")),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				projectID, err := request.RequireInt("project_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.GetProject(ctx, projectID))
			},
		},
		{
			Tool: mcp.NewTool("get_projects",
				mcp.WithDescription("List all TestRail projects"),
				mcp.WithBoolean("is_completed", mcp.Description("Only completed (true) or active (false) projects")),
				withLimit(),
				withOffset(),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				filter := &testrail.ProjectsFilter{
					IsCompleted: boolPtr(request, "is_completed"),
					Limit:       request.GetInt("limit", 0),
					Offset:      request.GetInt("offset", 0),
				}
				return toolResult(r.client.GetProjects(ctx, filter))
			},
		},
		{
			Tool: mcp.NewTool("add_project",
				mcp.WithDescription("Create a new TestRail project"),
				withData("Project fields per the TestRail add_project schema (name, announcement, suite_mode, ...)"),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				data, err := payload(request)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.AddProject(ctx, data))
			},
		},
		{
			Tool: mcp.NewTool("update_project",
				mcp.WithDescription("Update an existing TestRail project"),
				mcp.WithNumber("project_id", mcp.Required(), mcp.Description("Project ID")),
				withData("Project fields to change"),
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
				return toolResult(r.client.UpdateProject(ctx, projectID, data))
			},
		},
		{
			Tool: mcp.NewTool("delete_project",
				mcp.WithDescription("Delete a TestRail project including all suites, cases and runs. Cannot be undone"),
				mcp.WithNumber("project_id", mcp.Required(), mcp.Description("Project ID")),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				projectID, err := request.RequireInt("project_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.DeleteProject(ctx, projectID))
			},
		},
	}
}
