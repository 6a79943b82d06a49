// Package client is a thin HTTP client for the originbot API, used by the
// demo TUI.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client represents the originbot application client
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new application client
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type checkRequest struct {
	UserID string `json:"user_id"`
	Text   string `json:"text"`
}

type checkResponse struct {
	Reply string `json:"reply"`
	Error string `json:"error,omitempty"`
}

// StatsResponse mirrors the administrative counters endpoint
type StatsResponse struct {
	DistinctUsers int `json:"distinct_users"`
	ChecksDone    int `json:"checks_done"`
}

// CheckText submits a free-form text (or "A VS B" comparison) and returns
// the formatted reply
func (c *Client) CheckText(userID, text string) (string, error) {
	return c.postCheck("/api/check/text", userID, text)
}

// CheckDocument submits text through the document pair path
func (c *Client) CheckDocument(userID, text string) (string, error) {
	return c.postCheck("/api/check/document", userID, text)
}

// GetStats fetches the usage counters
func (c *Client) GetStats() (*StatsResponse, error) {
	resp, err := c.httpClient.Get(c.baseURL + "/api/stats")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch stats: %w", err)
	}
	defer resp.Body.Close()

	var stats StatsResponse
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, fmt.Errorf("failed to decode stats: %w", err)
	}
	return &stats, nil
}

func (c *Client) postCheck(path, userID, text string) (string, error) {
	payload, err := json.Marshal(checkRequest{UserID: userID, Text: text})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	resp, err := c.httpClient.Post(c.baseURL+path, "application/json", bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var result checkResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("server returned status %d: %s", resp.StatusCode, result.Error)
	}
	return result.Reply, nil
}
