package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/qaops/testrail-mcp/internal/testrail"
)

func (r *Registry) bddTools() []server.ServerTool {
	return []server.ServerTool{
		{
			Tool: mcp.NewTool("get_bdd_steps",
				mcp.WithDescription("List the BDD steps of a project"),
				mcp.WithNumber("project_id", mcp.Required(), mcp.Description("Project ID")),
				withLimit(),
				withOffset(),
			),
			Handler: func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
				projectID, err := request.RequireInt("project_id")
				if err != nil {
					return mcp.NewToolResultError(err.Error()), nil
				}
				filter := &testrail.BDDStepsFilter{
					Limit:  request.GetInt("limit", 0),
					Offset: request.GetInt("offset", 0),
				}
				return toolResult(r.client.GetBDDSteps(ctx, projectID, filter))
			},
		},
	}
}
