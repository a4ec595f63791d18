package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/platefront/platefront/internal/models"
)

const defaultTimeout = 30 * time.Second

// Client posts finished drafts to the static-site generation backend.
// Site compilation itself happens entirely on that backend.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient creates a generator client for the configured endpoint
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// SubmitRequest is the payload the generation backend expects.
type SubmitRequest struct {
	Draft models.Draft `json:"draft"`
}

// SubmitResponse carries the backend's acknowledgement.
type SubmitResponse struct {
	SiteURL string `json:"siteUrl"`
	JobID   string `json:"jobId"`
}

// Submit serializes the draft and hands it to the generation backend
func (c *Client) Submit(ctx context.Context, draft models.Draft) (*SubmitResponse, error) {
	payload, err := json.Marshal(SubmitRequest{Draft: draft})
	if err != nil {
		return nil, fmt.Errorf("failed to encode draft: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach generator backend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("generator backend returned %d: %s", resp.StatusCode, body)
	}

	var result SubmitResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode generator response: %w", err)
	}

	return &result, nil
}
