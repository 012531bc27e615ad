package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/qaops/testrail-mcp/internal/testrail"
)

func (r *Registry) planTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("get_plan",
				mcp.WithDescription("Get a test plan by ID, including its entries and runs"),
				mcp.WithNumber("plan_id", mcp.Required(), mcp.Description("Test plan ID")),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				planID, err := request.RequireInt("plan_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.GetPlan(ctx, planID))
			},
		},
		{
			Tool: mcp.NewTool("get_plans",
				mcp.WithDescription("List the test plans of a project"),
				mcp.WithNumber("project_id", mcp.Required(), mcp.Description("Project ID")),
				mcp.WithNumber("created_after", mcp.Description("Only plans created after this UNIX timestamp")),
				mcp.WithNumber("created_before", mcp.Description("Only plans created before this UNIX timestamp")),
				withIntArray("created_by", "Only plans created by these user IDs"),
				mcp.WithBoolean("is_completed", mcp.Description("Only completed (true) or active (false) plans")),
				withIntArray("milestone_id", "Only plans linked to these milestone IDs"),
				withLimit(),
				withOffset(),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				projectID, err := request.RequireInt("project_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				filter := &testrail.PlansFilter{
					CreatedAfter:  int64(request.GetInt("created_after", 0)),
					CreatedBefore: int64(request.GetInt("created_before", 0)),
					CreatedBy:     intList(request, "created_by"),
					IsCompleted:   boolPtr(request, "is_completed"),
					MilestoneID:   intList(request, "milestone_id"),
					Limit:         request.GetInt("limit", 0),
					Offset:        request.GetInt("offset", 0),
				}
				return toolResult(r.client.GetPlans(ctx, projectID, filter))
			},
		},
		{
			Tool: mcp.NewTool("add_plan",
				mcp.WithDescription("Create a test plan in a project"),
				mcp.WithNumber("project_id", mcp.Required(), mcp.Description("Project ID")),
				withData("Plan fields per the TestRail add_plan schema (name, description, milestone_id, entries)"),
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
				return toolResult(r.client.AddPlan(ctx, projectID, data))
			},
		},
		{
			Tool: mcp.NewTool("add_plan_entry",
				mcp.WithDescription("Add an entry (a group of test runs) to a test plan"),
				mcp.WithNumber("plan_id", mcp.Required(), mcp.Description("Test plan ID")),
				withData("Entry fields per the TestRail add_plan_entry schema (suite_id, name, config_ids, runs)"),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				planID, err := request.RequireInt("plan_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				data, err := payload(request)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.AddPlanEntry(ctx, planID, data))
			},
		},
		{
			Tool: mcp.NewTool("update_plan",
				mcp.WithDescription("Update an existing test plan"),
				mcp.WithNumber("plan_id", mcp.Required(), mcp.Description("Test plan ID")),
				withData("Plan fields to change"),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				planID, err := request.RequireInt("plan_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				data, err := payload(request)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.UpdatePlan(ctx, planID, data))
			},
		},
		{
			Tool: mcp.NewTool("update_plan_entry",
				mcp.WithDescription("Update an entry of a test plan"),
				mcp.WithNumber("plan_id", mcp.Required(), mcp.Description("Test plan ID")),
				mcp.WithString("entry_id", mcp.Required(), mcp.Description("Plan entry ID (a string, unlike other TestRail IDs)")),
				withData("Entry fields to change"),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				planID, err := request.RequireInt("plan_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				entryID, err := request.RequireString("entry_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				data, err := payload(request)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.UpdatePlanEntry(ctx, planID, entryID, data))
			},
		},
		{
			Tool: mcp.NewTool("close_plan",
				mcp.WithDescription("Close a test plan and archive its runs and results. Cannot be undone"),
				mcp.WithNumber("plan_id", mcp.Required(), mcp.Description("Test plan ID")),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				planID, err := request.RequireInt("plan_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.ClosePlan(ctx, planID))
			},
		},
		{
			Tool: mcp.NewTool("delete_plan",
				mcp.WithDescription("Delete a test plan including its runs and results"),
				mcp.WithNumber("plan_id", mcp.Required(), mcp.Description("Test plan ID")),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				planID, err := request.RequireInt("plan_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.DeletePlan(ctx, planID))
			},
		},
		{
			Tool: mcp.NewTool("delete_plan_entry",
				mcp.WithDescription("Remove an entry from a test plan including its runs"),
				mcp.WithNumber("plan_id", mcp.Required(), mcp.Description("Test plan ID")),
				mcp.WithString("entry_id", mcp.Required(), mcp.Description("Plan entry ID")),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				planID, err := request.RequireInt("plan_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				entryID, err := request.RequireString("entry_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.DeletePlanEntry(ctx, planID, entryID))
			},
		},
	}
}
