package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/qaops/testrail-mcp/internal/testrail"
)

func (r *Registry) sharedStepTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("get_shared_step",
				mcp.WithDescription("Get a shared step by ID"),
				mcp.WithNumber("shared_step_id", mcp.Required(), mcp.Description("Shared step ID")),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				sharedStepID, err := request.RequireInt("shared_step_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.GetSharedStep(ctx, sharedStepID))
			},
		},
		{
			Tool: mcp.NewTool("get_shared_steps",
				mcp.WithDescription("List the shared steps of a project"),
				mcp.WithNumber("project_id", mcp.Required(), mcp.Description("Project ID")),
				mcp.WithNumber("created_after", mcp.Description("Only shared steps created after this UNIX timestamp")),
				mcp.WithNumber("created_before", mcp.Description("Only shared steps created before this UNIX timestamp")),
				withIntArray("created_by", "Only shared steps created by these user IDs"),
				mcp.WithNumber("updated_after", mcp.Description("Only shared steps updated after this UNIX timestamp")),
				mcp.WithNumber("updated_before", mcp.Description("Only shared steps updated before this UNIX timestamp")),
				withIntArray("updated_by", "Only shared steps last updated by these user IDs"),
				withLimit(),
				withOffset(),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				projectID, err := request.RequireInt("project_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				filter := &testrail.SharedStepsFilter{
					CreatedAfter:  int64(request.GetInt("created_after", 0)),
					CreatedBefore: int64(request.GetInt("created_before", 0)),
					CreatedBy:     intList(request, "created_by"),
					UpdatedAfter:  int64(request.GetInt("updated_after", 0)),
					UpdatedBefore: int64(request.GetInt("updated_before", 0)),
					UpdatedBy:     intList(request, "updated_by"),
					Limit:         request.GetInt("limit", 0),
					Offset:        request.GetInt("offset", 0),
				}
				return toolResult(r.client.GetSharedSteps(ctx, projectID, filter))
			},
		},
		{
			Tool: mcp.NewTool("add_shared_step",
				mcp.WithDescription("Create a shared step in a project"),
				mcp.WithNumber("project_id", mcp.Required(), mcp.Description("Project ID")),
				withData("Shared step fields per the TestRail add_shared_step schema (title, custom_steps_separated)"),
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
				return toolResult(r.client.AddSharedStep(ctx, projectID, data))
			},
		},
		{
			Tool: mcp.NewTool("update_shared_step",
				mcp.WithDescription("Update an existing shared step"),
				mcp.WithNumber("shared_step_id", mcp.Required(), mcp.Description("Shared step ID")),
				withData("Shared step fields to change"),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				sharedStepID, err := request.RequireInt("shared_step_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				data, err := payload(request)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.UpdateSharedStep(ctx, sharedStepID, data))
			},
		},
		{
			Tool: mcp.NewTool("delete_shared_step",
				mcp.WithDescription("Delete a shared step"),
				mcp.WithNumber("shared_step_id", mcp.Required(), mcp.Description("Shared step ID")),
				mcp.WithBoolean("soft", mcp.Description("Preview the deletion without executing it")),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				sharedStepID, err := request.RequireInt("shared_step_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.DeleteSharedStep(ctx, sharedStepID, boolPtr(request, "soft")))
			},
		},
	}
}
