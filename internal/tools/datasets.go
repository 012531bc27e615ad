package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/qaops/testrail-mcp/internal/testrail"
)

func (r *Registry) datasetTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("get_datasets",
				mcp.WithDescription("List the test data datasets of a project"),
				mcp.WithNumber("project_id", mcp.Required(), mcp.Description("Project ID")),
				withLimit(),
				withOffset(),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				projectID, err := request.RequireInt("project_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				filter := &testrail.DatasetsFilter{
					Limit:  request.GetInt("limit", 0),
					Offset: request.GetInt("offset", 0),
				}
				return toolResult(r.client.GetDatasets(ctx, projectID, filter))
			},
		},
		{
			Tool: mcp.NewTool("add_dataset",
				mcp.WithDescription("Create a dataset in a project"),
				mcp.WithNumber("project_id", mcp.Required(), mcp.Description("Project ID")),
				withData("Dataset fields per the TestRail add_dataset schema (name, variables)"),
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
				return toolResult(r.client.AddDataset(ctx, projectID, data))
			},
		},
		{
			Tool: mcp.NewTool("update_dataset",
				mcp.WithDescription("Update an existing dataset"),
				mcp.WithNumber("dataset_id", mcp.Required(), mcp.Description("Dataset ID")),
				withData("Dataset fields to change"),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				datasetID, err := request.RequireInt("dataset_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				data, err := payload(request)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.UpdateDataset(ctx, datasetID, data))
			},
		},
		{
			Tool: mcp.NewTool("delete_dataset",
				mcp.WithDescription("Delete a dataset and the variable values it holds"),
				mcp.WithNumber("dataset_id", mcp.Required(), mcp.Description("Dataset ID")),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				datasetID, err := request.RequireInt("dataset_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.DeleteDataset(ctx, datasetID))
			},
		},
	}
}
