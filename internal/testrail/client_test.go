package testrail

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorded captures the last request the mock TestRail backend received.
type recorded struct {
	Method string
	URI    string
	Body   []byte
	Header http.Header
}

// newTestClient starts a mock backend answering every request with the
// given status and body, and returns a client pointed at it plus the
// recording of the last request.
func newTestClient(t *testing.T, status int, response string) (*Client, *recorded) {
	t.Helper()

	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rec.Method = r.Method
		rec.URI = r.URL.RequestURI()
		rec.Body = body
		rec.Header = r.Header.Clone()

		w.WriteHeader(status)
		fmt.Fprint(w, response)
	}))
	t.Cleanup(srv.Close)

	return NewClient(srv.URL, "user@example.com", "apikey"), rec
}

func TestClient_GetPassthrough(t *testing.T) {
	const body = `{"id": 5, "title": "Login works", "suite_id": 2}`
	client, rec := newTestClient(t, http.StatusOK, body)

	raw, err := client.GetCase(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, http.MethodGet, rec.Method)
	assert.Equal(t, "/index.php?/api/v2/get_case/5", rec.URI)
	assert.Equal(t, body, string(raw))
}

func TestClient_GetIsIdempotent(t *testing.T) {
	const body = `{"id": 5}`
	client, _ := newTestClient(t, http.StatusOK, body)

	first, err := client.GetCase(context.Background(), 5)
	require.NoError(t, err)
	second, err := client.GetCase(context.Background(), 5)
	require.NoError(t, err)

	assert.Equal(t, []byte(first), []byte(second))
}

func TestClient_BasicAuth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		require.True(t, ok, "request must carry basic auth")
		assert.Equal(t, "user@example.com", user)
		assert.Equal(t, "apikey", pass)
		fmt.Fprint(w, `{}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "user@example.com", "apikey")
	_, err := client.GetStatuses(context.Background())
	require.NoError(t, err)
}

func TestClient_BaseURLTrailingSlash(t *testing.T) {
	client := NewClient("https://example.testrail.io", "u", "k")
	withSlash := NewClient("https://example.testrail.io/", "u", "k")

	assert.Equal(t, client.apiURL, withSlash.apiURL)
	assert.Equal(t, "https://example.testrail.io/index.php?/api/v2/", client.apiURL)
}

func TestClient_QueryFilters(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `[]`)

	filter := &CasesFilter{
		SuiteID:   2,
		SectionID: 7,
		CreatedBy: []int{1, 2, 3},
		Limit:     50,
		Offset:    100,
	}
	_, err := client.GetCases(context.Background(), 1, filter)
	require.NoError(t, err)

	// Parameters append in declaration order with TestRail's "&" convention.
	assert.Equal(t,
		"/index.php?/api/v2/get_cases/1&suite_id=2&section_id=7&created_by=1,2,3&limit=50&offset=100",
		rec.URI)
}

func TestClient_BoolFilterEncodesAsInt(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `[]`)

	completed := false
	_, err := client.GetProjects(context.Background(), &ProjectsFilter{IsCompleted: &completed})
	require.NoError(t, err)
	assert.Equal(t, "/index.php?/api/v2/get_projects&is_completed=0", rec.URI)
}

func TestClient_NilFilterAddsNoParams(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `[]`)

	_, err := client.GetRuns(context.Background(), 3, nil)
	require.NoError(t, err)
	assert.Equal(t, "/index.php?/api/v2/get_runs/3", rec.URI)
}

func TestClient_PostBodyPassthrough(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{"id": 9}`)

	data := map[string]any{
		"name":         "Web App",
		"suite_mode":   3,
		"announcement": "This project tracks the web frontend",
	}
	raw, err := client.AddProject(context.Background(), data)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/index.php?/api/v2/add_project", rec.URI)
	assert.Equal(t, "application/json", rec.Header.Get("Content-Type"))
	// The payload reaches the wire field-for-field, nothing added or dropped.
	assert.JSONEq(t, `{"name":"Web App","suite_mode":3,"announcement":"This project tracks the web frontend"}`, string(rec.Body))
	assert.JSONEq(t, `{"id": 9}`, string(raw))
}

func TestClient_DeleteUsesPostWithSoftParam(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, ``)

	soft := true
	raw, err := client.DeleteCase(context.Background(), 12, &soft)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/index.php?/api/v2/delete_case/12&soft=1", rec.URI)
	// Empty success bodies come back as an empty JSON object.
	assert.JSONEq(t, `{}`, string(raw))
}

func TestClient_APIError(t *testing.T) {
	client, _ := newTestClient(t, http.StatusNotFound, `{"error": "not found"}`)

	_, err := client.GetProject(context.Background(), 99)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "not found", apiErr.Message)
	assert.Contains(t, err.Error(), "404")
	assert.Contains(t, err.Error(), "not found")
}

func TestClient_APIErrorNonJSONBody(t *testing.T) {
	client, _ := newTestClient(t, http.StatusBadGateway, `upstream exploded`)

	_, err := client.GetProject(context.Background(), 1)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Empty(t, apiErr.Message)
	assert.Contains(t, err.Error(), "upstream exploded")
}

func TestClient_DecodeError(t *testing.T) {
	client, _ := newTestClient(t, http.StatusOK, `<html>maintenance page</html>`)

	_, err := client.GetProject(context.Background(), 1)
	require.Error(t, err)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "get_project/1", decodeErr.Endpoint)
}

func TestClient_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := NewClient(srv.URL, "u", "k")
	srv.Close()

	_, err := client.GetProject(context.Background(), 1)
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "network failures must not look like API errors")
	assert.Contains(t, err.Error(), "testrail request failed")
}

func TestClient_ConcurrentReads(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.RequestURI() {
		case "/index.php?/api/v2/get_project/1":
			fmt.Fprint(w, `{"id": 1, "name": "first"}`)
		case "/index.php?/api/v2/get_project/2":
			fmt.Fprint(w, `{"id": 2, "name": "second"}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "u", "k")

	var wg sync.WaitGroup
	results := make([]string, 2)
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			raw, err := client.GetProject(context.Background(), i+1)
			results[i], errs[i] = string(raw), err
		}(i)
	}
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.JSONEq(t, `{"id": 1, "name": "first"}`, results[0])
	assert.JSONEq(t, `{"id": 2, "name": "second"}`, results[1])
}

func TestClient_AttachmentUpload(t *testing.T) {
	content := []byte{0x89, 'P', 'N', 'G', 0x00, 0x01, 0x02}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/index.php?/api/v2/add_attachment_to_result/42", r.URL.RequestURI())
		require.NoError(t, r.ParseMultipartForm(1<<20))

		file, header, err := r.FormFile("attachment")
		require.NoError(t, err)
		defer file.Close()

		uploaded, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, content, uploaded, "uploaded bytes must match exactly")
		assert.Equal(t, "screenshot.png", header.Filename)

		fmt.Fprint(w, `{"attachment_id": 443}`)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "u", "k")
	raw, err := client.AddAttachmentToResult(context.Background(), 42, "screenshot.png", content)
	require.NoError(t, err)
	assert.JSONEq(t, `{"attachment_id": 443}`, string(raw))
}

func TestClient_AttachmentDownload(t *testing.T) {
	content := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/index.php?/api/v2/get_attachment/7", r.URL.RequestURI())
		w.Write(content)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "u", "k")
	got, err := client.GetAttachment(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestClient_AttachmentDownloadError(t *testing.T) {
	client, _ := newTestClient(t, http.StatusForbidden, `{"error": "no access"}`)

	_, err := client.GetAttachment(context.Background(), 7)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
}

func TestClient_UserByEmailEscapesParam(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{}`)

	_, err := client.GetUserByEmail(context.Background(), "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, "/index.php?/api/v2/get_user_by_email&email=user%40example.com", rec.URI)
}

func TestClient_PlanEntryPaths(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{}`)

	_, err := client.UpdatePlanEntry(context.Background(), 3, "e2a", map[string]any{"name": "retest"})
	require.NoError(t, err)
	assert.Equal(t, "/index.php?/api/v2/update_plan_entry/3/e2a", rec.URI)
	assert.JSONEq(t, `{"name": "retest"}`, string(rec.Body))
}

func TestClient_VariablePaths(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `{}`)
	ctx := context.Background()

	_, err := client.GetVariables(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, http.MethodGet, rec.Method)
	assert.Equal(t, "/index.php?/api/v2/get_variables/1", rec.URI)

	_, err = client.UpdateVariable(ctx, 7, map[string]any{"name": "browser"})
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/index.php?/api/v2/update_variable/7", rec.URI)
	assert.JSONEq(t, `{"name": "browser"}`, string(rec.Body))

	_, err = client.DeleteVariable(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, rec.Method)
	assert.Equal(t, "/index.php?/api/v2/delete_variable/7", rec.URI)
	assert.Empty(t, rec.Body)
}

func TestClient_DatasetAndBDDPaging(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `[]`)
	ctx := context.Background()

	_, err := client.GetDatasets(ctx, 3, &DatasetsFilter{Limit: 5, Offset: 10})
	require.NoError(t, err)
	assert.Equal(t, "/index.php?/api/v2/get_datasets/3&limit=5&offset=10", rec.URI)

	_, err = client.GetBDDSteps(ctx, 3, &BDDStepsFilter{Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, "/index.php?/api/v2/get_bdd_steps/3&limit=20", rec.URI)

	_, err = client.GetBDDSteps(ctx, 3, nil)
	require.NoError(t, err)
	assert.Equal(t, "/index.php?/api/v2/get_bdd_steps/3", rec.URI)
}

func TestClient_GroupAndRolePaths(t *testing.T) {
	client, rec := newTestClient(t, http.StatusOK, `[]`)
	ctx := context.Background()

	_, err := client.GetGroups(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/index.php?/api/v2/get_groups", rec.URI)

	_, err = client.GetGroup(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "/index.php?/api/v2/get_group/2", rec.URI)

	_, err = client.GetRoles(ctx)
	require.NoError(t, err)
	assert.Equal(t, "/index.php?/api/v2/get_roles", rec.URI)

	_, err = client.GetRole(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, "/index.php?/api/v2/get_role/4", rec.URI)
}
