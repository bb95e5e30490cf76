package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/phrimp/vnvodich-payment-service/internal/domain"
	"github.com/phrimp/vnvodich-payment-service/internal/metrics"
	"go.uber.org/zap"
)

// Publisher delivers lifecycle events to the configured subscriber.
// Delivery is strictly best-effort: every failure is logged and counted,
// none is propagated to the caller.
type Publisher struct {
	client *http.Client
	url    string
	apiKey string
	log    *zap.Logger
}

func NewPublisher(url, apiKey string, log *zap.Logger) *Publisher {
	return &Publisher{
		client: &http.Client{Timeout: 5 * time.Second},
		url:    url,
		apiKey: apiKey,
		log:    log,
	}
}

func (p *Publisher) Publish(ctx context.Context, event string, orderID string, status domain.PaymentStatus) {
	if p.url == "" {
		p.log.Debug("webhook subscriber not configured, dropping event",
			zap.String("event", event), zap.String("order_id", orderID))
		return
	}

	payload, err := json.Marshal(map[string]string{
		"event":   event,
		"orderId": orderID,
		"status":  string(status),
	})
	if err != nil {
		p.deliveryFailed(event, orderID, err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, bytes.NewReader(payload))
	if err != nil {
		p.deliveryFailed(event, orderID, err)
		return
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("API_KEY", p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		p.deliveryFailed(event, orderID, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		p.log.Warn("webhook subscriber returned non-2xx",
			zap.String("event", event),
			zap.String("order_id", orderID),
			zap.Int("status_code", resp.StatusCode))
		metrics.WebhookDeliveryFailures.Inc()
		return
	}

	p.log.Debug("webhook delivered",
		zap.String("event", event), zap.String("order_id", orderID))
}

func (p *Publisher) deliveryFailed(event, orderID string, err error) {
	p.log.Warn("failed to send webhook",
		zap.String("event", event),
		zap.String("order_id", orderID),
		zap.Error(err))
	metrics.WebhookDeliveryFailures.Inc()
}
