package tools

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qaops/testrail-mcp/internal/testrail"
)

// newTestRegistry points a registry at a mock TestRail backend.
func newTestRegistry(t *testing.T, handler http.HandlerFunc) *Registry {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewRegistry(testrail.NewClient(srv.URL, "user@example.com", "apikey"))
}

// registeredTool registers every tool on a fresh MCP server and returns the
// named one.
func registeredTool(t *testing.T, r *Registry, name string) *server.ServerTool {
	t.Helper()
	s := server.NewMCPServer("test", "0.0.0", server.WithToolCapabilities(true))
	r.Register(s)
	tool := s.GetTool(name)
	require.NotNil(t, tool, "tool %s should be registered", name)
	return tool
}

func callTool(t *testing.T, tool *server.ServerTool, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	request := mcp.CallToolRequest{}
	request.Params.Name = tool.Tool.Name
	request.Params.Arguments = args

	result, err := tool.Handler(context.Background(), request)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func textOf(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "content should be text")
	return text.Text
}

func TestRegistry_RegistersEveryFamily(t *testing.T) {
	r := NewRegistry(testrail.NewClient("https://example.testrail.io", "u", "k"))
	s := server.NewMCPServer("test", "0.0.0", server.WithToolCapabilities(true))
	r.Register(s)

	// One representative tool per entity family.
	for _, name := range []string{
		"get_project", "get_suite", "get_section", "get_case",
		"get_run", "get_results", "get_milestone", "get_plan",
		"get_configs", "get_user", "get_statuses",
		"add_attachment_to_case", "get_shared_step", "run_report",
		"get_variables", "get_datasets", "get_bdd_steps",
		"get_group", "get_role",
	} {
		assert.NotNil(t, s.GetTool(name), "tool %s should be registered", name)
	}

	assert.Nil(t, s.GetTool("get_bogus"))
}

func TestRegistry_ToolNamesUnique(t *testing.T) {
	r := NewRegistry(testrail.NewClient("https://example.testrail.io", "u", "k"))

	var all []server.ServerTool
	all = append(all, r.projectTools()...)
	all = append(all, r.suiteTools()...)
	all = append(all, r.sectionTools()...)
	all = append(all, r.caseTools()...)
	all = append(all, r.runTools()...)
	all = append(all, r.resultTools()...)
	all = append(all, r.milestoneTools()...)
	all = append(all, r.planTools()...)
	all = append(all, r.configTools()...)
	all = append(all, r.userTools()...)
	all = append(all, r.metaTools()...)
	all = append(all, r.attachmentTools()...)
	all = append(all, r.sharedStepTools()...)
	all = append(all, r.variableTools()...)
	all = append(all, r.datasetTools()...)
	all = append(all, r.bddTools()...)
	all = append(all, r.groupTools()...)
	all = append(all, r.roleTools()...)
	all = append(all, r.reportTools()...)

	seen := make(map[string]bool)
	for _, tool := range all {
		assert.False(t, seen[tool.Tool.Name], "duplicate tool name %s", tool.Tool.Name)
		seen[tool.Tool.Name] = true
		assert.NotEmpty(t, tool.Tool.Description, "tool %s needs a description", tool.Tool.Name)
		assert.NotNil(t, tool.Handler, "tool %s needs a handler", tool.Tool.Name)
	}
}

func TestGetProjectTool_PassesBodyThrough(t *testing.T) {
	const body = `{"id": 1, "name": "Web App", "suite_mode": 3}`
	r := newTestRegistry(t, func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/index.php?/api/v2/get_project/1", req.URL.RequestURI())
		fmt.Fprint(w, body)
	})

	tool := registeredTool(t, r, "get_project")
	result := callTool(t, tool, map[string]any{"project_id": float64(1)})

	assert.False(t, result.IsError)
	assert.Equal(t, body, textOf(t, result))
}

func TestTool_SurfacesAPIError(t *testing.T) {
	r := newTestRegistry(t, func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"error": "not found"}`)
	})

	tool := registeredTool(t, r, "get_run")
	result := callTool(t, tool, map[string]any{"run_id": float64(99)})

	assert.True(t, result.IsError)
	text := textOf(t, result)
	assert.Contains(t, text, "404")
	assert.Contains(t, text, "not found")
}

func TestTool_MissingRequiredArgument(t *testing.T) {
	r := newTestRegistry(t, func(w http.ResponseWriter, req *http.Request) {
		t.Fatal("no request should reach the backend")
	})

	tool := registeredTool(t, r, "get_project")
	result := callTool(t, tool, map[string]any{})

	assert.True(t, result.IsError)
}

func TestAddRunTool_ForwardsPayloadVerbatim(t *testing.T) {
	var sent []byte
	r := newTestRegistry(t, func(w http.ResponseWriter, req *http.Request) {
		sent, _ = io.ReadAll(req.Body)
		assert.Equal(t, "/index.php?/api/v2/add_run/1", req.URL.RequestURI())
		fmt.Fprint(w, `{"id": 81}`)
	})

	tool := registeredTool(t, r, "add_run")
	result := callTool(t, tool, map[string]any{
		"project_id": float64(1),
		"data": map[string]any{
			"suite_id":    float64(2),
			"name":        "Nightly regression",
			"include_all": true,
		},
	})

	assert.False(t, result.IsError)
	assert.JSONEq(t, `{"suite_id":2,"name":"Nightly regression","include_all":true}`, string(sent))
	assert.JSONEq(t, `{"id": 81}`, textOf(t, result))
}

func TestAddRunTool_RejectsMissingData(t *testing.T) {
	r := newTestRegistry(t, func(w http.ResponseWriter, req *http.Request) {
		t.Fatal("no request should reach the backend")
	})

	tool := registeredTool(t, r, "add_run")
	result := callTool(t, tool, map[string]any{"project_id": float64(1)})

	assert.True(t, result.IsError)
	assert.Contains(t, textOf(t, result), "data")
}

func TestGetCasesTool_BuildsFilters(t *testing.T) {
	r := newTestRegistry(t, func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t,
			"/index.php?/api/v2/get_cases/1&suite_id=2&priority_id=4,5&limit=10",
			req.URL.RequestURI())
		fmt.Fprint(w, `[]`)
	})

	tool := registeredTool(t, r, "get_cases")
	result := callTool(t, tool, map[string]any{
		"project_id":  float64(1),
		"suite_id":    float64(2),
		"priority_id": []any{float64(4), float64(5)},
		"limit":       float64(10),
	})

	assert.False(t, result.IsError)
}

func TestDeleteCaseTool_SoftFlag(t *testing.T) {
	r := newTestRegistry(t, func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, http.MethodPost, req.Method)
		assert.Equal(t, "/index.php?/api/v2/delete_case/12&soft=1", req.URL.RequestURI())
	})

	tool := registeredTool(t, r, "delete_case")
	result := callTool(t, tool, map[string]any{
		"case_id": float64(12),
		"soft":    true,
	})

	assert.False(t, result.IsError)
	assert.JSONEq(t, `{}`, textOf(t, result))
}

func TestVariableTools_EndToEnd(t *testing.T) {
	r := newTestRegistry(t, func(w http.ResponseWriter, req *http.Request) {
		switch req.URL.RequestURI() {
		case "/index.php?/api/v2/add_variable/1":
			assert.Equal(t, http.MethodPost, req.Method)
			sent, _ := io.ReadAll(req.Body)
			assert.JSONEq(t, `{"name":"browser"}`, string(sent))
			fmt.Fprint(w, `{"id": 7, "name": "browser"}`)
		case "/index.php?/api/v2/delete_variable/7":
			assert.Equal(t, http.MethodPost, req.Method)
		default:
			http.NotFound(w, req)
		}
	})

	add := registeredTool(t, r, "add_variable")
	result := callTool(t, add, map[string]any{
		"project_id": float64(1),
		"data":       map[string]any{"name": "browser"},
	})
	assert.False(t, result.IsError)
	assert.JSONEq(t, `{"id": 7, "name": "browser"}`, textOf(t, result))

	del := registeredTool(t, r, "delete_variable")
	result = callTool(t, del, map[string]any{"variable_id": float64(7)})
	assert.False(t, result.IsError)
	assert.JSONEq(t, `{}`, textOf(t, result))
}

func TestGetDatasetsTool_Paging(t *testing.T) {
	r := newTestRegistry(t, func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/index.php?/api/v2/get_datasets/3&limit=5&offset=10", req.URL.RequestURI())
		fmt.Fprint(w, `[]`)
	})

	tool := registeredTool(t, r, "get_datasets")
	result := callTool(t, tool, map[string]any{
		"project_id": float64(3),
		"limit":      float64(5),
		"offset":     float64(10),
	})

	assert.False(t, result.IsError)
}

func TestAttachmentTools_RoundTripBytes(t *testing.T) {
	content := []byte{0x89, 'P', 'N', 'G', 0x00, 0xff}

	r := newTestRegistry(t, func(w http.ResponseWriter, req *http.Request) {
		switch {
		case req.URL.RequestURI() == "/index.php?/api/v2/add_attachment_to_case/5":
			require.NoError(t, req.ParseMultipartForm(1<<20))
			file, header, err := req.FormFile("attachment")
			require.NoError(t, err)
			defer file.Close()
			uploaded, err := io.ReadAll(file)
			require.NoError(t, err)
			assert.Equal(t, content, uploaded)
			assert.Equal(t, "crash.png", header.Filename)
			fmt.Fprint(w, `{"attachment_id": 443}`)
		case req.URL.RequestURI() == "/index.php?/api/v2/get_attachment/443":
			w.Write(content)
		default:
			http.NotFound(w, req)
		}
	})

	upload := registeredTool(t, r, "add_attachment_to_case")
	result := callTool(t, upload, map[string]any{
		"case_id":  float64(5),
		"filename": "crash.png",
		"content":  base64.StdEncoding.EncodeToString(content),
	})
	assert.False(t, result.IsError)
	assert.JSONEq(t, `{"attachment_id": 443}`, textOf(t, result))

	download := registeredTool(t, r, "get_attachment")
	result = callTool(t, download, map[string]any{"attachment_id": float64(443)})
	assert.False(t, result.IsError)

	decoded, err := base64.StdEncoding.DecodeString(textOf(t, result))
	require.NoError(t, err)
	assert.Equal(t, content, decoded)
}

func TestAttachmentUpload_RejectsBadBase64(t *testing.T) {
	r := newTestRegistry(t, func(w http.ResponseWriter, req *http.Request) {
		t.Fatal("no request should reach the backend")
	})

	tool := registeredTool(t, r, "add_attachment_to_case")
	result := callTool(t, tool, map[string]any{
		"case_id":  float64(5),
		"filename": "crash.png",
		"content":  "not base64!!!",
	})

	assert.True(t, result.IsError)
	assert.Contains(t, textOf(t, result), "base64")
}

func TestHelpers(t *testing.T) {
	request := mcp.CallToolRequest{}
	request.Params.Arguments = map[string]any{
		"ids":   []any{float64(1), float64(2), 3},
		"flag":  true,
		"wrong": "nope",
		"data":  map[string]any{"name": "x"},
	}

	assert.Equal(t, []int{1, 2, 3}, intList(request, "ids"))
	assert.Nil(t, intList(request, "absent"))
	assert.Nil(t, intList(request, "wrong"))

	require.NotNil(t, boolPtr(request, "flag"))
	assert.True(t, *boolPtr(request, "flag"))
	assert.Nil(t, boolPtr(request, "absent"))
	assert.Nil(t, boolPtr(request, "wrong"))

	data, err := payload(request)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "x"}, data)

	empty := mcp.CallToolRequest{}
	empty.Params.Arguments = map[string]any{}
	_, err = payload(empty)
	assert.Error(t, err)

	bad := mcp.CallToolRequest{}
	bad.Params.Arguments = map[string]any{"data": "scalar"}
	_, err = payload(bad)
	assert.Error(t, err)
}
