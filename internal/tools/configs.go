package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (r *Registry) configTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("get_configs",
				mcp.WithDescription("List the configuration groups of a project, including their configurations"),
				mcp.WithNumber("project_id", mcp.Required(), mcp.Description("Project ID")),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				projectID, err := request.RequireInt("project_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.GetConfigs(ctx, projectID))
			},
		},
		{
			Tool: mcp.NewTool("add_config_group",
				mcp.WithDescription("Create a configuration group in a project"),
				mcp.WithNumber("project_id", mcp.Required(), mcp.Description("Project ID")),
				withData("Group fields (name)"),
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
				return toolResult(r.client.AddConfigGroup(ctx, projectID, data))
			},
		},
		{
			Tool: mcp.NewTool("add_config",
				mcp.WithDescription("Create a configuration inside a configuration group"),
				mcp.WithNumber("config_group_id", mcp.Required(), mcp.Description("Configuration group ID")),
				withData("Configuration fields (name)"),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				groupID, err := request.RequireInt("config_group_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				data, err := payload(request)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.AddConfig(ctx, groupID, data))
			},
		},
		{
			Tool: mcp.NewTool("update_config_group",
				mcp.WithDescription("Update a configuration group"),
				mcp.WithNumber("config_group_id", mcp.Required(), mcp.Description("Configuration group ID")),
				withData("Group fields to change"),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				groupID, err := request.RequireInt("config_group_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				data, err := payload(request)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.UpdateConfigGroup(ctx, groupID, data))
			},
		},
		{
			Tool: mcp.NewTool("update_config",
				mcp.WithDescription("Update a configuration"),
				mcp.WithNumber("config_id", mcp.Required(), mcp.Description("Configuration ID")),
				withData("Configuration fields to change"),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				configID, err := request.RequireInt("config_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				data, err := payload(request)
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.UpdateConfig(ctx, configID, data))
			},
		},
		{
			Tool: mcp.NewTool("delete_config_group",
				mcp.WithDescription("Delete a configuration group and its configurations"),
				mcp.WithNumber("config_group_id", mcp.Required(), mcp.Description("Configuration group ID")),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				groupID, err := request.RequireInt("config_group_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.DeleteConfigGroup(ctx, groupID))
			},
		},
		{
			Tool: mcp.NewTool("delete_config",
				mcp.WithDescription("Delete a configuration"),
				mcp.WithNumber("config_id", mcp.Required(), mcp.Description("Configuration ID")),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				configID, err := request.RequireInt("config_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.DeleteConfig(ctx, configID))
			},
		},
	}
}
