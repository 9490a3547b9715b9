package botclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is the boundary to the external conversational-AI prediction
// endpoint. One blocking call per question, no retries.
type Client interface {
	Ask(ctx context.Context, question string) (string, error)
}

type HTTPClient struct {
	url    string
	token  string
	client *http.Client
}

var _ Client = &HTTPClient{}

func NewHTTPClient(url, token string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		url:   url,
		token: token,
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type predictionRequest struct {
	Question string `json:"question"`
}

type predictionResponse struct {
	Text *string `json:"text"`
}

func (c *HTTPClient) Ask(ctx context.Context, question string) (string, error) {
	payload, err := json.Marshal(predictionRequest{Question: question})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("bot request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("bot error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var parsed predictionResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if parsed.Text == nil {
		return "", fmt.Errorf("bot response missing text field")
	}
	return *parsed.Text, nil
}
