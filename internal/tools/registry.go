// Package tools exposes the TestRail client as MCP tools.
//
// Each tool maps to exactly one client method: argument extraction, one
// HTTP call, raw JSON back. No validation or orchestration happens here;
// domain rules belong to TestRail.
package tools

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/qaops/testrail-mcp/internal/logging"
	"github.com/qaops/testrail-mcp/internal/testrail"
)

// Registry holds the shared TestRail client and produces the tool set.
// It is stateless across calls; every invocation is one independent
// request/response exchange.
type Registry struct {
	client *testrail.Client
}

// NewRegistry creates a registry backed by the given client.
func NewRegistry(client *testrail.Client) *Registry {
	return &Registry{client: client}
}

// Register adds every tool to the MCP server.
func (r *Registry) Register(s *server.MCPServer) {
	var tools []server.ServerTool
	tools = append(tools, r.projectTools()...)
	tools = append(tools, r.suiteTools()...)
	tools = append(tools, r.sectionTools()...)
	tools = append(tools, r.caseTools()...)
	tools = append(tools, r.runTools()...)
	tools = append(tools, r.resultTools()...)
	tools = append(tools, r.milestoneTools()...)
	tools = append(tools, r.planTools()...)
	tools = append(tools, r.configTools()...)
	tools = append(tools, r.userTools()...)
	tools = append(tools, r.metaTools()...)
	tools = append(tools, r.attachmentTools()...)
	tools = append(tools, r.sharedStepTools()...)
	tools = append(tools, r.variableTools()...)
	tools = append(tools, r.datasetTools()...)
	tools = append(tools, r.bddTools()...)
	tools = append(tools, r.groupTools()...)
	tools = append(tools, r.roleTools()...)
	tools = append(tools, r.reportTools()...)

	s.AddTools(tools...)
	logging.Info().Int("tools", len(tools)).Msg("registered TestRail tools")
}

// toolResult converts a client response into a tool result. Remote API and
// transport failures are reported as tool-level errors, never as handler
// errors: a failed TestRail call must not look like a broken server.
func toolResult(raw json.RawMessage, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(raw)), nil
}

// payload extracts the free-form "data" object forwarded verbatim to
// TestRail.
func payload(request mcp.CallToolRequest) (map[string]any, error) {
	v, ok := request.GetArguments()["data"]
	if !ok {
		return nil, fmt.Errorf("data argument is required")
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("data must be an object, got %T", v)
	}
	return m, nil
}

// intList reads an optional array-of-numbers argument. JSON numbers arrive
// as float64.
func intList(request mcp.CallToolRequest, key string) []int {
	v, ok := request.GetArguments()[key]
	if !ok {
		return nil
	}
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]int, 0, len(arr))
	for _, elem := range arr {
		switch n := elem.(type) {
		case float64:
			out = append(out, int(n))
		case int:
			out = append(out, n)
		}
	}
	return out
}

// boolPtr reads an optional boolean argument, distinguishing "absent" from
// "false" for filters like is_completed.
func boolPtr(request mcp.CallToolRequest, key string) *bool {
	if v, ok := request.GetArguments()[key]; ok {
		if b, ok := v.(bool); ok {
			return &b
		}
	}
	return nil
}

// withIntArray declares an optional array-of-numbers parameter.
func withIntArray(name, description string) mcp.ToolOption {
	return mcp.WithArray(name,
		mcp.Description(description),
		mcp.Items(map[string]any{"type": "number"}),
	)
}

// withData declares the required free-form payload parameter of add and
// update tools.
func withData(description string) mcp.ToolOption {
	return mcp.WithObject("data",
		mcp.Required(),
		mcp.Description(description),
	)
}

// withLimit and withOffset declare the paging pair shared by listing tools.
func withLimit() mcp.ToolOption {
	return mcp.WithNumber("limit", mcp.Description("Maximum number of entities to return"))
}

func withOffset() mcp.ToolOption {
	return mcp.WithNumber("offset", mcp.Description("Number of entities to skip"))
}
