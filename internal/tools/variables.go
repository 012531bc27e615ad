package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (r *Registry) variableTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("get_variables",
				mcp.WithDescription("List the test data variables of a project"),
				mcp.WithNumber("project_id", mcp.Required(), mcp.Description("Project ID")),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				projectID, err := request.RequireInt("project_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.GetVariables(ctx, projectID))
			},
		},
		{
			Tool: mcp.NewTool("add_variable",
				mcp.WithDescription("Create a test data variable in a project"),
				mcp.WithNumber("project_id", mcp.Required(), mcp.Description("Project ID")),
				withData("Variable fields per the TestRail add_variable schema (name)"),
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
				return toolResult(r.client.AddVariable(ctx, projectID, data))
			},
		},
		{
			Tool: mcp.NewTool("update_variable",
				mcp.WithDescription("Update an existing test data variable"),
				mcp.WithNumber("variable_id", mcp.Required(), mcp.Description("Variable ID")),
				withData("Variable fields to change"),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				variableID, err := request.RequireInt("variable_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				data, err := payload(request)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.UpdateVariable(ctx, variableID, data))
			},
		},
		{
			Tool: mcp.NewTool("delete_variable",
				mcp.WithDescription("Delete a test data variable and its values in all datasets"),
				mcp.WithNumber("variable_id", mcp.Required(), mcp.Description("Variable ID")),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				variableID, err := request.RequireInt("variable_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.DeleteVariable(ctx, variableID))
			},
		},
	}
}
