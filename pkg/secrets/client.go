package secrets

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client fetches environment-scoped secrets from the remote secret
// manager over its REST API. Fetched values are overlaid onto the
// process environment once at startup; the client is never consulted
// again afterwards.
type Client struct {
	baseURL     string
	token       string
	environment string
	httpClient  *http.Client
}

func NewClient(baseURL, token, environment string) *Client {
	return &Client{
		baseURL:     baseURL,
		token:       token,
		environment: environment,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type secretEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type secretsResponse struct {
	Secrets []secretEntry `json:"secrets"`
}

// Fetch returns every secret of the configured environment as a flat
// key/value map.
func (c *Client) Fetch(ctx context.Context) (map[string]string, error) {
	url := fmt.Sprintf("%s/api/v3/secrets?environment=%s", c.baseURL, c.environment)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("secret manager request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("secret manager error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var parsed secretsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	out := make(map[string]string, len(parsed.Secrets))
	for _, secret := range parsed.Secrets {
		out[secret.Key] = secret.Value
	}
	return out, nil
}
