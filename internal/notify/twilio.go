package notify

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Aftab0008/car-end/internal/config"
	"github.com/Aftab0008/car-end/internal/domain"
	"github.com/Aftab0008/car-end/internal/observability"
	"github.com/Aftab0008/car-end/pkg/e"
)

// Notifier dispatches a formatted alert for one stored request. A single
// synchronous attempt; failure is reported, never retried here.
type Notifier interface {
	Send(ctx context.Context, req *domain.EmergencyRequest, address domain.AddressResolution) error
}

// TwilioNotifier sends the alert as a WhatsApp message through the Twilio
// Messages API, from and to statically configured identities.
type TwilioNotifier struct {
	accountSID string
	authToken  string
	from       string
	to         string
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
	metrics    *observability.Metrics
}

func NewTwilioNotifier(cfg config.TwilioConfig, logger *slog.Logger, metrics *observability.Metrics) *TwilioNotifier {
	return &TwilioNotifier{
		accountSID: cfg.AccountSID,
		authToken:  cfg.AuthToken,
		from:       cfg.From,
		to:         cfg.To,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		baseURL: "https://api.twilio.com",
		logger:  logger,
		metrics: metrics,
	}
}

func (n *TwilioNotifier) Send(ctx context.Context, emReq *domain.EmergencyRequest, address domain.AddressResolution) error {
	const op = "notify.Twilio.Send"

	body := ComposeMessage(emReq, address)

	form := url.Values{
		"From": {n.from},
		"To":   {n.to},
		"Body": {body},
	}

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", n.baseURL, n.accountSID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return e.Wrap(op, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(n.accountSID, n.authToken)

	start := time.Now()
	resp, err := n.httpClient.Do(req)
	n.metrics.NotifyDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		n.logger.Error("twilio request failed",
			slog.String("op", op),
			slog.Any("error", err),
		)
		return fmt.Errorf("%s: %w", op, e.ErrDelivery)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Provider detail stays in the logs; the caller only sees ErrDelivery.
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		n.logger.Error("twilio rejected message",
			slog.String("op", op),
			slog.String("status", resp.Status),
			slog.String("detail", string(detail)),
		)
		return fmt.Errorf("%s: status %d: %w", op, resp.StatusCode, e.ErrDelivery)
	}

	n.logger.Info("notification sent",
		slog.String("request_id", emReq.ID.String()),
		slog.Bool("address_degraded", address.Degraded),
	)
	return nil
}
