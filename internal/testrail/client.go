// Package testrail provides a client for the TestRail REST API (v2).
//
// Every method performs exactly one HTTP request and returns the decoded
// JSON body unchanged. Domain rules (which suite a case belongs to, which
// statuses exist) are owned by the remote service; the client only builds
// requests and passes responses through.
package testrail

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/qaops/testrail-mcp/internal/logging"
)

// DefaultTimeout bounds each request when no other timeout is configured.
const DefaultTimeout = 30 * time.Second

// apiPath is TestRail's REST entry point. Note the embedded "?": endpoint
// names and query parameters are all appended with "&".
const apiPath = "index.php?/api/v2/"

// Client is a TestRail API client. It is safe for concurrent use; the
// underlying http.Client handles connection pooling.
type Client struct {
	apiURL   string
	username string
	apiKey   string
	http     *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.http.Timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// NewClient creates a client bound to the given TestRail instance.
// baseURL is the instance root, e.g. "https://example.testrail.io";
// apiKey is used as the basic-auth password.
func NewClient(baseURL, username, apiKey string, opts ...Option) *Client {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	c := &Client{
		apiURL:   baseURL + apiPath,
		username: username,
		apiKey:   apiKey,
		http:     &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// params accumulates query parameters in declaration order. TestRail's
// entry point already contains "?", so every pair is appended with "&".
type params []string

func (p *params) add(key, value string) {
	*p = append(*p, key+"="+url.QueryEscape(value))
}

func (p *params) addInt(key string, value int) {
	if value != 0 {
		p.add(key, strconv.Itoa(value))
	}
}

func (p *params) addInt64(key string, value int64) {
	if value != 0 {
		p.add(key, strconv.FormatInt(value, 10))
	}
}

// addInts joins values with commas, TestRail's convention for
// list-valued filters. Commas stay unescaped, matching what the API
// documents.
func (p *params) addInts(key string, values []int) {
	if len(values) == 0 {
		return
	}
	strs := make([]string, len(values))
	for i, v := range values {
		strs[i] = strconv.Itoa(v)
	}
	*p = append(*p, key+"="+strings.Join(strs, ","))
}

func (p *params) addBoolInt(key string, value *bool) {
	if value == nil {
		return
	}
	if *value {
		p.add(key, "1")
	} else {
		p.add(key, "0")
	}
}

// encode renders the pairs for appending to an endpoint name.
func (p params) encode() string {
	if len(p) == 0 {
		return ""
	}
	return "&" + strings.Join(p, "&")
}

// get issues a GET against the given endpoint and returns the decoded body.
func (c *Client) get(ctx context.Context, endpoint string, p params) (json.RawMessage, error) {
	return c.send(ctx, http.MethodGet, endpoint+p.encode(), nil)
}

// post issues a POST with an optional JSON body. TestRail uses POST for
// add, update and delete operations alike.
func (c *Client) post(ctx context.Context, endpoint string, body any, p params) (json.RawMessage, error) {
	return c.send(ctx, http.MethodPost, endpoint+p.encode(), body)
}

// send performs one HTTP exchange and decodes the response.
func (c *Client) send(ctx context.Context, method, endpoint string, body any) (json.RawMessage, error) {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.apiURL+endpoint, reqBody)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.username, c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	data, status, err := c.roundTrip(req)
	if err != nil {
		return nil, err
	}
	return decodeResponse(endpoint, status, data)
}

// sendMultipart uploads content as a multipart form, TestRail's format for
// attachment endpoints. The JSON content type must not be set here.
func (c *Client) sendMultipart(ctx context.Context, endpoint, filename string, content []byte) (json.RawMessage, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("attachment", filename)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(content); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL+endpoint, &buf)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.username, c.apiKey)
	req.Header.Set("Content-Type", w.FormDataContentType())

	data, status, err := c.roundTrip(req)
	if err != nil {
		return nil, err
	}
	return decodeResponse(endpoint, status, data)
}

// sendRaw performs a GET and returns the body bytes untouched, for binary
// downloads.
func (c *Client) sendRaw(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiURL+endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.username, c.apiKey)

	data, status, err := c.roundTrip(req)
	if err != nil {
		return nil, err
	}
	if status >= 400 {
		return nil, newAPIError(status, data)
	}
	return data, nil
}

// roundTrip executes the request and drains the body. Network failures are
// wrapped as transport errors, distinct from remote API errors.
func (c *Client) roundTrip(req *http.Request) ([]byte, int, error) {
	logging.Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Msg("testrail request")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("testrail request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("testrail request failed: %w", err)
	}

	logging.Debug().
		Int("status", resp.StatusCode).
		Int("bytes", len(data)).
		Msg("testrail response")

	return data, resp.StatusCode, nil
}

// decodeResponse turns a completed exchange into a JSON payload or an error.
func decodeResponse(endpoint string, status int, data []byte) (json.RawMessage, error) {
	if status >= 400 {
		return nil, newAPIError(status, data)
	}

	// Deletes and a few other operations return an empty body on success.
	if len(bytes.TrimSpace(data)) == 0 {
		return json.RawMessage(`{}`), nil
	}

	if !json.Valid(data) {
		return nil, &DecodeError{Endpoint: endpoint, Body: data}
	}
	return json.RawMessage(data), nil
}
