package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

func (r *Registry) reportTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("get_reports",
				mcp.WithDescription("List the API-accessible report templates of a project"),
				mcp.WithNumber("project_id", mcp.Required(), mcp.Description("Project ID")),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				projectID, err := request.RequireInt("project_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.GetReports(ctx, projectID))
			},
		},
		{
			Tool: mcp.NewTool("run_report",
				mcp.WithDescription("Execute a report template and return the URLs of the generated report"),
				mcp.WithNumber("report_template_id", mcp.Required(), mcp.Description("Report template ID")),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				templateID, err := request.RequireInt("report_template_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				return toolResult(r.client.RunReport(ctx, templateID))
			},
		},
	}
}
