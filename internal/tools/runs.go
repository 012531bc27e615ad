package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/qaops/testrail-mcp/internal/testrail"
)

func (r *Registry) runTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("get_run",
				mcp.WithDescription("Get a test run by ID"),
				mcp.WithNumber("run_id", mcp.Required(), mcp.Description("Test run ID")),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				runID, err := request.RequireInt("run_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.GetRun(ctx, runID))
			},
		},
		{
			Tool: mcp.NewTool("get_runs",
				mcp.WithDescription("List the test runs of a project (runs inside plans are returned with the plan)"),
				mcp.WithNumber("project_id", mcp.Required(), mcp.Description("Project ID")),
				mcp.WithNumber("created_after", mcp.Description("Only runs created after this UNIX timestamp")),
				mcp.WithNumber("created_before", mcp.Description("Only runs created before this UNIX timestamp")),
				withIntArray("created_by", "Only runs created by these user IDs"),
				mcp.WithBoolean("is_completed", mcp.Description("Only completed (true) or active (false) runs")),
				withIntArray("milestone_id", "Only runs linked to these milestone IDs"),
				withIntArray("suite_id", "Only runs of these test suite IDs"),
				withLimit(),
				withOffset(),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				projectID, err := request.RequireInt("project_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				filter := &testrail.RunsFilter{
					CreatedAfter:  int64(request.GetInt("created_after", 0)),
					CreatedBefore: int64(request.GetInt("created_before", 0)),
					CreatedBy:     intList(request, "created_by"),
					IsCompleted:   boolPtr(request, "is_completed"),
					MilestoneID:   intList(request, "milestone_id"),
					SuiteID:       intList(request, "suite_id"),
					Limit:         request.GetInt("limit", 0),
					Offset:        request.GetInt("offset", 0),
				}
				return toolResult(r.client.GetRuns(ctx, projectID, filter))
			},
		},
		{
			Tool: mcp.NewTool("add_run",
				mcp.WithDescription("Create a test run in a project"),
				mcp.WithNumber("project_id", mcp.Required(), mcp.Description("Project ID")),
				withData("Run fields per the TestRail add_run schema (suite_id, name, include_all, case_ids, ...)"),
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
				return toolResult(r.client.AddRun(ctx, projectID, data))
			},
		},
		{
			Tool: mcp.NewTool("update_run",
				mcp.WithDescription("Update an existing test run"),
				mcp.WithNumber("run_id", mcp.Required(), mcp.Description("Test run ID")),
				withData("Run fields to change"),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				runID, err := request.RequireInt("run_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				data, err := payload(request)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.UpdateRun(ctx, runID, data))
			},
		},
		{
			Tool: mcp.NewTool("close_run",
				mcp.WithDescription("Close a test run and archive its tests and results. Cannot be undone"),
				mcp.WithNumber("run_id", mcp.Required(), mcp.Description("Test run ID")),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				runID, err := request.RequireInt("run_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.CloseRun(ctx, runID))
			},
		},
		{
			Tool: mcp.NewTool("delete_run",
				mcp.WithDescription("Delete a test run including its tests and results"),
				mcp.WithNumber("run_id", mcp.Required(), mcp.Description("Test run ID")),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				runID, err := request.RequireInt("run_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.DeleteRun(ctx, runID))
			},
		},
		{
			Tool: mcp.NewTool("get_test",
				mcp.WithDescription("Get a test by ID"),
				mcp.WithNumber("test_id", mcp.Required(), mcp.Description("Test ID")),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				testID, err := request.RequireInt("test_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.GetTest(ctx, testID))
			},
		},
		{
			Tool: mcp.NewTool("get_tests",
				mcp.WithDescription("List the tests of a test run"),
				mcp.WithNumber("run_id", mcp.Required(), mcp.Description("Test run ID")),
				withIntArray("status_id", "Only tests with these status IDs"),
				withLimit(),
				withOffset(),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				runID, err := request.RequireInt("run_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				filter := &testrail.TestsFilter{
					StatusID: intList(request, "status_id"),
					Limit:    request.GetInt("limit", 0),
					Offset:   request.GetInt("offset", 0),
				}
				return toolResult(r.client.GetTests(ctx, runID, filter))
			},
		},
	}
}
