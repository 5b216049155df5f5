// Package narrative calls the external narrative-generation service used
// for emergency recommendations. Its output is untrusted text: responses
// are validated before use and every failure is recoverable, callers fall
// back to the static recommendation table.
package narrative

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Client produces a free-text recommendation for an emergency category
// given the patient's critical data.
type Client interface {
	Recommend(ctx context.Context, req Request) (string, error)
}

// Request is the structured prompt sent to the narrative service.
type Request struct {
	Category    string `json:"category"`
	BloodGroup  string `json:"bloodGroup"`
	Allergies   string `json:"allergies"`
	Conditions  string `json:"conditions"`
	Medications string `json:"medications"`
}

type response struct {
	Recommendation string `json:"recommendation"`
}

// HTTPClient is the production Client. A nil *HTTPClient or an empty URL
// means no service is configured; Recommend then reports an error and the
// caller uses the static table.
type HTTPClient struct {
	url    string
	apiKey string
	client *http.Client
}

func NewHTTPClient(url, apiKey string) *HTTPClient {
	return &HTTPClient{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *HTTPClient) Recommend(ctx context.Context, req Request) (string, error) {
	if c == nil || c.url == "" {
		return "", fmt.Errorf("narrative service not configured")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal narrative request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build narrative request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("narrative service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("narrative service returned status %d", resp.StatusCode)
	}

	var parsed response
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("malformed narrative response: %w", err)
	}

	text := strings.TrimSpace(parsed.Recommendation)
	if text == "" {
		return "", fmt.Errorf("narrative response missing recommendation")
	}
	return text, nil
}
