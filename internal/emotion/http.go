package emotion

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// httpDetector talks to the emotion service's POST /process endpoint.
type httpDetector struct {
	baseURL string
	client  *http.Client
}

// NewHTTPDetector creates a Detector for the service at baseURL
// (e.g. http://127.0.0.1:3000).
func NewHTTPDetector(baseURL string, timeout time.Duration) (Detector, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("emotion: detector URL is required")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &httpDetector{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}, nil
}

// Detect sends the user's text and decodes the emotion plus its tips.
func (d *httpDetector) Detect(ctx context.Context, input string) (*Detection, error) {
	body, err := json.Marshal(map[string]string{"input": input})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.baseURL+"/process", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("emotion: detector request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("emotion: detector returned status %d", resp.StatusCode)
	}

	var detection Detection
	if err := json.NewDecoder(resp.Body).Decode(&detection); err != nil {
		return nil, fmt.Errorf("emotion: decoding detector response: %w", err)
	}
	return &detection, nil
}
