package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// Notifier posts short push messages to a Bark-style webhook. It is
// best-effort plumbing: callers log failures and move on, a lost push must
// never fail the request that triggered it.
type Notifier struct {
	apiURL     string
	httpClient *http.Client
}

func New(apiURL string) *Notifier {
	return &Notifier{
		apiURL: strings.TrimRight(apiURL, "/"),
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

func (n *Notifier) Enabled() bool {
	return n != nil && n.apiURL != ""
}

func (n *Notifier) Send(ctx context.Context, title, message, group string) error {
	if !n.Enabled() {
		return nil
	}

	payload, err := json.Marshal(map[string]string{
		"title": title,
		"body":  message,
		"group": group,
	})
	if err != nil {
		return fmt.Errorf("notify: marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.apiURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("notify: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("notify: do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("notify: push failed with status %d", resp.StatusCode)
	}
	return nil
}
