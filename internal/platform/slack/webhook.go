// Package slack delivers notify.Message values through a Slack incoming
// webhook.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/yash7800/Todo/internal/generation"
	"github.com/yash7800/Todo/internal/notify"
)

const serviceName = "slack"

// maxErrorBody bounds how much of a failed webhook response is kept.
const maxErrorBody = 4096

// ErrMissingWebhookURL is returned by NewWebhookNotifier when no URL is given.
var ErrMissingWebhookURL = errors.New("slack webhook URL cannot be empty")

type webhookPayload struct {
	Text string `json:"text"`
}

// WebhookNotifier posts {"text": ...} to an incoming webhook URL.
type WebhookNotifier struct {
	url    string
	client *http.Client
	logger *slog.Logger
}

// Ensure WebhookNotifier implements notify.Notifier interface
var _ notify.Notifier = (*WebhookNotifier)(nil)

// NewWebhookNotifier creates a notifier for webhookURL. client may be nil.
func NewWebhookNotifier(webhookURL string, client *http.Client, logger *slog.Logger) (*WebhookNotifier, error) {
	if webhookURL == "" {
		return nil, ErrMissingWebhookURL
	}
	if client == nil {
		client = &http.Client{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &WebhookNotifier{
		url:    webhookURL,
		client: client,
		logger: logger.With(slog.String("component", "slack_notifier")),
	}, nil
}

// Notify implements notify.Notifier.
func (n *WebhookNotifier) Notify(ctx context.Context, msg notify.Message) (*notify.Delivery, error) {
	if msg.Body == "" {
		return nil, notify.ErrEmptyMessage
	}

	body, err := json.Marshal(webhookPayload{Text: msg.Text()})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal slack payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create slack request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("slack request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, generation.NewUpstreamError(serviceName, resp.StatusCode, string(respBody))
	}
	_, _ = io.Copy(io.Discard, resp.Body)

	n.logger.DebugContext(ctx, "summary posted to slack",
		slog.Int("status", resp.StatusCode),
		slog.Int("text_length", len(msg.Body)))

	return &notify.Delivery{StatusCode: resp.StatusCode}, nil
}
