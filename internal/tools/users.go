package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/qaops/testrail-mcp/internal/testrail"
)

func (r *Registry) userTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("get_user",
				mcp.WithDescription("Get a user by ID"),
				mcp.WithNumber("user_id", mcp.Required(), mcp.Description("User ID")),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				userID, err := request.RequireInt("user_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.GetUser(ctx, userID))
			},
		},
		{
			Tool: mcp.NewTool("get_user_by_email",
				mcp.WithDescription("Get a user by email address"),
				mcp.WithString("email", mcp.Required(), mcp.Description("Email address of the user")),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				email, err := request.RequireString("email")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.GetUserByEmail(ctx, email))
			},
		},
		{
			Tool: mcp.NewTool("get_users",
				mcp.WithDescription("List all users"),
				withLimit(),
				withOffset(),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				filter := &testrail.UsersFilter{
					Limit:  request.GetInt("limit", 0),
					Offset: request.GetInt("offset", 0),
				}
				return toolResult(r.client.GetUsers(ctx, filter))
			},
		},
		{
			Tool: mcp.NewTool("get_current_user",
				mcp.WithDescription("Get the user the server authenticates as"),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				return toolResult(r.client.GetCurrentUser(ctx))
			},
		},
	}
}
