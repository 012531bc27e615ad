package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/qaops/testrail-mcp/internal/testrail"
)

func resultsFilter(request mcp.CallToolRequest) *testrail.ResultsFilter {
	return &testrail.ResultsFilter{
		CreatedAfter:  int64(request.GetInt("created_after", 0)),
		CreatedBefore: int64(request.GetInt("created_before", 0)),
		CreatedBy:     intList(request, "created_by"),
		StatusID:      intList(request, "status_id"),
		Limit:         request.GetInt("limit", 0),
		Offset:        request.GetInt("offset", 0),
	}
}

func (r *Registry) resultTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("get_results",
				mcp.WithDescription("List the results of a test"),
				mcp.WithNumber("test_id", mcp.Required(), mcp.Description("Test ID")),
				withIntArray("status_id", "Only results with these status IDs"),
				withLimit(),
				withOffset(),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				testID, err := request.RequireInt("test_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.GetResults(ctx, testID, resultsFilter(request)))
			},
		},
		{
			Tool: mcp.NewTool("get_results_for_case",
				mcp.WithDescription("List the results of a test case within a run"),
				mcp.WithNumber("run_id", mcp.Required(), mcp.Description("Test run ID")),
				mcp.WithNumber("case_id", mcp.Required(), mcp.Description("Test case ID")),
				withIntArray("status_id", "Only results with these status IDs"),
				withLimit(),
				withOffset(),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				runID, err := request.RequireInt("run_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				caseID, err := request.RequireInt("case_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.GetResultsForCase(ctx, runID, caseID, resultsFilter(request)))
			},
		},
		{
			Tool: mcp.NewTool("get_results_for_run",
				mcp.WithDescription("List all results of a test run"),
				mcp.WithNumber("run_id", mcp.Required(), mcp.Description("Test run ID")),
				mcp.WithNumber("created_after", mcp.Description("Only results created after this UNIX timestamp")),
				mcp.WithNumber("created_before", mcp.Description("Only results created before this UNIX timestamp")),
				withIntArray("created_by", "Only results created by these user IDs"),
				withIntArray("status_id", "Only results with these status IDs"),
				withLimit(),
				withOffset(),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				runID, err := request.RequireInt("run_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.GetResultsForRun(ctx, runID, resultsFilter(request)))
			},
		},
		{
			Tool: mcp.NewTool("add_result",
				mcp.WithDescription("Add a result to a test"),
				mcp.WithNumber("test_id", mcp.Required(), mcp.Description("Test ID")),
				withData("Result fields per the TestRail add_result schema (status_id, comment, elapsed, defects, ...)"),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				testID, err := request.RequireInt("test_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				data, err := payload(request)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.AddResult(ctx, testID, data))
			},
		},
		{
			Tool: mcp.NewTool("add_result_for_case",
				mcp.WithDescription("Add a result to a test case within a run"),
				mcp.WithNumber("run_id", mcp.Required(), mcp.Description("Test run ID")),
				mcp.WithNumber("case_id", mcp.Required(), mcp.Description("Test case ID")),
				withData("Result fields per the TestRail add_result_for_case schema"),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				runID, err := request.RequireInt("run_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				caseID, err := request.RequireInt("case_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				data, err := payload(request)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.AddResultForCase(ctx, runID, caseID, data))
			},
		},
		{
			Tool: mcp.NewTool("add_results",
				mcp.WithDescription("Add results to multiple tests of a run in one request"),
				mcp.WithNumber("run_id", mcp.Required(), mcp.Description("Test run ID")),
				withData("Results array keyed by test_id per the TestRail add_results schema"),
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
				return toolResult(r.client.AddResults(ctx, runID, data))
			},
		},
		{
			Tool: mcp.NewTool("add_results_for_cases",
				mcp.WithDescription("Add results to multiple test cases of a run in one request"),
				mcp.WithNumber("run_id", mcp.Required(), mcp.Description("Test run ID")),
				withData("Results array keyed by case_id per the TestRail add_results_for_cases schema"),
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
				return toolResult(r.client.AddResultsForCases(ctx, runID, data))
			},
		},
		{
			Tool: mcp.NewTool("get_result_fields",
				mcp.WithDescription("List the available result custom fields"),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return toolResult(r.client.GetResultFields(ctx))
			},
		},
	}
}
