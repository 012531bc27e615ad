package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (r *Registry) metaTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("get_priorities",
				mcp.WithDescription("List the available priorities"),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return toolResult(r.client.GetPriorities(ctx))
			},
		},
		{
			Tool: mcp.NewTool("get_statuses",
				mcp.WithDescription("List the available test statuses"),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return toolResult(r.client.GetStatuses(ctx))
			},
		},
		{
			Tool: mcp.NewTool("get_templates",
				mcp.WithDescription("List the available templates of a project"),
				mcp.WithNumber("project_id", mcp.Required(), mcp.Description("Project ID")),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				projectID, err := request.RequireInt("project_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.GetTemplates(ctx, projectID))
			},
		},
	}
}
