// Package notify pushes predictive alerts to external channels.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"mannwallet/internal/config"
	"mannwallet/internal/models"
	"mannwallet/pkg/utils"
)

// Notifier delivers alert notifications. Delivery failures are logged and
// swallowed; a broken channel never fails an analysis pass.
type Notifier interface {
	SendAlert(ctx context.Context, alert models.Alert) error
}

// Channel is a single notification transport.
type Channel interface {
	Name() string
	Send(ctx context.Context, alert models.Alert) error
	IsEnabled() bool
}

// MultiNotifier fans alerts out to every enabled channel, honoring the
// configured level filter.
type MultiNotifier struct {
	channels []Channel
	level    string
	logger   zerolog.Logger
}

// NewMultiNotifier builds a notifier from configuration.
func NewMultiNotifier(cfg config.NotificationConfig, logger zerolog.Logger) *MultiNotifier {
	n := &MultiNotifier{level: cfg.Level, logger: logger}
	if !cfg.Enabled || cfg.Level == "off" {
		return n
	}

	if cfg.Webhook.Enabled && cfg.Webhook.URL != "" {
		n.channels = append(n.channels, NewWebhookChannel(cfg.Webhook.URL))
	}
	n.channels = append(n.channels, &LogChannel{logger: logger})

	return n
}

// SendAlert implements Notifier.
func (n *MultiNotifier) SendAlert(ctx context.Context, alert models.Alert) error {
	if n.level == "high_only" && alert.Priority != models.PriorityHigh {
		return nil
	}

	for _, ch := range n.channels {
		if !ch.IsEnabled() {
			continue
		}
		if err := ch.Send(ctx, alert); err != nil {
			n.logger.Warn().
				Err(err).
				Str("channel", ch.Name()).
				Str("alert_id", alert.ID).
				Msg("Notification delivery failed")
		}
	}
	return nil
}

// WebhookChannel POSTs alerts as JSON to a configured URL.
type WebhookChannel struct {
	url    string
	client *http.Client
}

// NewWebhookChannel creates a webhook channel.
func NewWebhookChannel(url string) *WebhookChannel {
	return &WebhookChannel{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// Name implements Channel.
func (c *WebhookChannel) Name() string { return "webhook" }

// IsEnabled implements Channel.
func (c *WebhookChannel) IsEnabled() bool { return c.url != "" }

// Send implements Channel with exponential backoff on transient failures.
func (c *WebhookChannel) Send(ctx context.Context, alert models.Alert) error {
	payload, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("marshaling alert: %w", err)
	}

	return utils.Retry(ctx, utils.DefaultRetryConfig(), func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(payload))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.client.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 400 {
			return fmt.Errorf("webhook returned status %d", resp.StatusCode)
		}
		return nil
	})
}

// LogChannel writes alerts to the structured log. Always enabled; it is the
// fallback channel so fired alerts leave a trace even with no webhook set up.
type LogChannel struct {
	logger zerolog.Logger
}

// Name implements Channel.
func (c *LogChannel) Name() string { return "log" }

// IsEnabled implements Channel.
func (c *LogChannel) IsEnabled() bool { return true }

// Send implements Channel.
func (c *LogChannel) Send(_ context.Context, alert models.Alert) error {
	c.logger.Info().
		Str("event", "alert_notification").
		Str("alert_id", alert.ID).
		Str("priority", string(alert.Priority)).
		Str("action_type", string(alert.ActionType)).
		Msg(alert.Title)
	return nil
}
