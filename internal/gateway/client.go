// Package gateway issues the three backend requests and normalizes
// success and failure into a uniform shape: a payload or a plain error.
// Every operation is a single round trip with no retries, no streaming,
// and no client-side timeout; an in-flight request runs to completion
// or to transport failure.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/innovateinc/hr-assistant/internal/model/chat"
)

// Client talks to the HR assistant backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a backend client rooted at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// SendChatTurn posts the accumulated user/assistant sequence and
// returns the assistant's reply text. The backend is stateless between
// calls, so the full context is resent every turn.
func (c *Client) SendChatTurn(ctx context.Context, messages []chat.Message) (string, error) {
	body, err := json.Marshal(chat.Request{Messages: messages})
	if err != nil {
		return "", fmt.Errorf("marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send chat request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read chat response: %w", err)
	}

	if !is2xx(resp.StatusCode) {
		return "", fmt.Errorf("chat backend returned status %d", resp.StatusCode)
	}

	var reply chat.Response
	if err := json.Unmarshal(respBody, &reply); err != nil {
		return "", fmt.Errorf("decode chat response: %w", err)
	}
	return reply.Response, nil
}

// LookupFAQ asks the backend one of the predefined questions. The
// mcpServer parameter is forwarded only when non-blank. The JSON body
// is returned verbatim; callers render it without interpreting its
// shape. On a non-2xx status the backend's detail field becomes the
// error message when present.
func (c *Client) LookupFAQ(ctx context.Context, question, mcpServer string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("question", question)
	if strings.TrimSpace(mcpServer) != "" {
		params.Set("mcp-server", mcpServer)
	}

	status, body, err := c.get(ctx, "/api/faq", params)
	if err != nil {
		return nil, err
	}
	if !is2xx(status) {
		if detail := errorDetail(body); detail != "" {
			return nil, fmt.Errorf("%s", detail)
		}
		return nil, fmt.Errorf("HTTP error, status %d", status)
	}
	return rawJSON(body)
}

// RunToolQuery sends free-text query to the tools endpoint and returns
// the JSON body verbatim.
func (c *Client) RunToolQuery(ctx context.Context, query string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("query", query)

	status, body, err := c.get(ctx, "/api/tools", params)
	if err != nil {
		return nil, err
	}
	if !is2xx(status) {
		return nil, fmt.Errorf("HTTP error, status %d", status)
	}
	return rawJSON(body)
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (int, []byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return 0, nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("read response: %w", err)
	}
	return resp.StatusCode, body, nil
}

func is2xx(status int) bool {
	return status >= 200 && status < 300
}

// errorDetail extracts the detail field from a structured error body,
// returning "" when the body is not JSON or carries no detail.
func errorDetail(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Detail
}

func rawJSON(body []byte) (json.RawMessage, error) {
	if !json.Valid(body) {
		return nil, fmt.Errorf("backend returned invalid JSON")
	}
	return json.RawMessage(body), nil
}
