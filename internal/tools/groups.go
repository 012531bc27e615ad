package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (r *Registry) groupTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("get_group",
				mcp.WithDescription("Get a user group by ID"),
				mcp.WithNumber("group_id", mcp.Required(), mcp.Description("Group ID")),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				groupID, err := request.RequireInt("group_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.GetGroup(ctx, groupID))
			},
		},
		{
			Tool: mcp.NewTool("get_groups",
				mcp.WithDescription("List all user groups"),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return toolResult(r.client.GetGroups(ctx))
			},
		},
	}
}
