package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (r *Registry) roleTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("get_role",
				mcp.WithDescription("Get a user role by ID"),
				mcp.WithNumber("role_id", mcp.Required(), mcp.Description("Role ID")),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				roleID, err := request.RequireInt("role_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.GetRole(ctx, roleID))
			},
		},
		{
			Tool: mcp.NewTool("get_roles",
				mcp.WithDescription("List all user roles"),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return toolResult(r.client.GetRoles(ctx))
			},
		},
	}
}
