// Package apiclient is a small HTTP client for the chatbot server's API,
// shared by the lisa subcommands.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/CodingWithShahzaib/openai-attorney-chatbot/pkg/openai"
)

// Flow names map to the server's chat endpoints.
const (
	FlowFinder = "chat"
	FlowLisa   = "lisa"
)

// ChatReply mirrors the server's chat response body.
type ChatReply struct {
	Message     string           `json:"message"`
	Annotations []map[string]any `json:"annotations"`
	Searched    bool             `json:"searched"`
}

// HealthReply mirrors the server's health response body.
type HealthReply struct {
	Status string `json:"status"`
	Model  string `json:"model"`
	Error  string `json:"error"`
}

// StatsReply mirrors the server's usage summary body.
type StatsReply struct {
	TotalRequests int            `json:"total_requests"`
	ByEndpoint    map[string]int `json:"by_endpoint"`
	Searches      int            `json:"searches"`
	Annotations   int            `json:"annotations"`
	Errors        int            `json:"errors"`
	AvgDurationMS int64          `json:"avg_duration_ms"`
}

type errorReply struct {
	Error string `json:"error"`
}

// Client talks to one chatbot server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client for the server at serverURL.
func New(serverURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(serverURL, "/"),
		httpClient: &http.Client{
			// search-backed replies can take a while
			Timeout: 2 * time.Minute,
		},
	}
}

// Ask sends a conversation to the given flow and returns the reply.
func (c *Client) Ask(ctx context.Context, flow string, messages []openai.Message) (*ChatReply, error) {
	body, err := json.Marshal(map[string]any{"messages": messages})
	if err != nil {
		return nil, fmt.Errorf("could not marshal conversation: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/api/"+flow, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, serverError(resp.StatusCode, respBody)
	}

	var reply ChatReply
	if err := json.Unmarshal(respBody, &reply); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}

	return &reply, nil
}

// Health runs the server's provider health check. The reply is returned for
// both healthy and down outcomes; the caller branches on Status.
func (c *Client) Health(ctx context.Context) (*HealthReply, error) {
	respBody, status, err := c.get(ctx, "/api/health")
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK && status != http.StatusServiceUnavailable {
		return nil, serverError(status, respBody)
	}

	var reply HealthReply
	if err := json.Unmarshal(respBody, &reply); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}

	return &reply, nil
}

// Stats fetches the server's aggregated usage ledger.
func (c *Client) Stats(ctx context.Context) (*StatsReply, error) {
	respBody, status, err := c.get(ctx, "/api/stats")
	if err != nil {
		return nil, err
	}

	if status != http.StatusOK {
		return nil, serverError(status, respBody)
	}

	var reply StatsReply
	if err := json.Unmarshal(respBody, &reply); err != nil {
		return nil, fmt.Errorf("could not decode response: %w", err)
	}

	return &reply, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", c.baseURL+path, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("could not create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("could not read response: %w", err)
	}

	return respBody, resp.StatusCode, nil
}

// serverError prefers the server's own error message over the raw body.
func serverError(status int, body []byte) error {
	var reply errorReply
	if err := json.Unmarshal(body, &reply); err == nil && reply.Error != "" {
		return fmt.Errorf("server returned %d: %s", status, reply.Error)
	}
	return fmt.Errorf("server returned %d: %s", status, strings.TrimSpace(string(body)))
}
