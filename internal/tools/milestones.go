package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/qaops/testrail-mcp/internal/testrail"
)

func (r *Registry) milestoneTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("get_milestone",
				mcp.WithDescription("Get a milestone by ID"),
				mcp.WithNumber("milestone_id", mcp.Required(), mcp.Description("Milestone ID")),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				milestoneID, err := request.RequireInt("milestone_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.GetMilestone(ctx, milestoneID))
			},
		},
		{
			Tool: mcp.NewTool("get_milestones",
				mcp.WithDescription("List the milestones of a project"),
				mcp.WithNumber("project_id", mcp.Required(), mcp.Description("Project ID")),
				mcp.WithBoolean("is_completed", mcp.Description("Only completed (true) or open (false) milestones")),
				mcp.WithBoolean("is_started", mcp.Description("Only started (true) or upcoming (false) milestones")),
				withLimit(),
				withOffset(),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				projectID, err := request.RequireInt("project_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				filter := &testrail.MilestonesFilter{
					IsCompleted: boolPtr(request, "is_completed"),
					IsStarted:   boolPtr(request, "is_started"),
					Limit:       request.GetInt("limit", 0),
					Offset:      request.GetInt("offset", 0),
				}
				return toolResult(r.client.GetMilestones(ctx, projectID, filter))
			},
		},
		{
			Tool: mcp.NewTool("add_milestone",
				mcp.WithDescription("Create a milestone in a project"),
				mcp.WithNumber("project_id", mcp.Required(), mcp.Description("Project ID")),
				withData("Milestone fields per the TestRail add_milestone schema (name, description, due_on, parent_id, ...)"),
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
				return toolResult(r.client.AddMilestone(ctx, projectID, data))
			},
		},
		{
			Tool: mcp.NewTool("update_milestone",
				mcp.WithDescription("Update an existing milestone"),
				mcp.WithNumber("milestone_id", mcp.Required(), mcp.Description("Milestone ID")),
				withData("Milestone fields to change"),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				milestoneID, err := request.RequireInt("milestone_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				data, err := payload(request)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.UpdateMilestone(ctx, milestoneID, data))
			},
		},
		{
			Tool: mcp.NewTool("delete_milestone",
				mcp.WithDescription("Delete a milestone"),
				mcp.WithNumber("milestone_id", mcp.Required(), mcp.Description("Milestone ID")),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				milestoneID, err := request.RequireInt("milestone_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.DeleteMilestone(ctx, milestoneID))
			},
		},
	}
}
