package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"noticetrack/internal/domain/service"

	"github.com/pkg/errors"
)

// webhookNotifier implements Notifier by sending HTTP POST requests to a
// local endpoint, typically a desktop helper or test collector
type webhookNotifier struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewWebhookNotifier creates a notifier that POSTs alerts to an endpoint
func NewWebhookNotifier(endpoint string, logger *slog.Logger) service.Notifier {
	return &webhookNotifier{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// NotifyNewNotice publishes the alert by sending HTTP POST to the endpoint
func (n *webhookNotifier) NotifyNewNotice(ctx context.Context, alert *service.NoticeAlert) error {
	body, err := json.Marshal(alert)
	if err != nil {
		return errors.WithStack(err)
	}

	n.logger.Info("[WebhookNotifier] Publishing alert",
		slog.String("endpoint", n.endpoint),
		slog.Uint64("notice_id", alert.NoticeID),
		slog.Int("unread_count", alert.UnreadCount),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("webhook returned non-success status: %d", resp.StatusCode)
	}

	return nil
}

// Close releases resources (no-op for HTTP client)
func (n *webhookNotifier) Close() error {
	return nil
}
