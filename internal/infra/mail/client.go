// Package mail implements the outbound mail notifier against an HTTP
// mail API (e.g. a relay or a local sink during development).
package mail

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/zap"

	"content-service/internal/infra/httpclient"
)

// Endpoint is the API path for message submission.
const Endpoint = "/api/messages"

// Config holds mail delivery settings.
type Config struct {
	From string
	To   []string
	HTTP httpclient.ClientConfig
}

// Message is the wire shape accepted by the mail API.
type Message struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Body    string   `json:"body"`
}

// Client implements domain.Notifier over an HTTP mail API.
type Client struct {
	from   string
	to     []string
	client *resty.Client
	cb     *gobreaker.CircuitBreaker[*resty.Response]
	logger *zap.Logger
}

// New creates a new mail client.
func New(cfg Config, logger *zap.Logger) *Client {
	return &Client{
		from:   cfg.From,
		to:     cfg.To,
		client: httpclient.NewRestyClient(cfg.HTTP),
		cb:     httpclient.NewCircuitBreaker[*resty.Response]("mail", cfg.HTTP.CB),
		logger: logger,
	}
}

// Name returns the notifier identifier.
func (c *Client) Name() string {
	return "mail"
}

// Send submits one message to the mail API. Delivery failures trip the
// circuit breaker so a dead relay does not stall callers.
func (c *Client) Send(ctx context.Context, subject, body string) error {
	msg := Message{
		From:    c.from,
		To:      c.to,
		Subject: subject,
		Body:    body,
	}

	_, err := c.cb.Execute(func() (*resty.Response, error) {
		r, err := c.client.R().
			SetContext(ctx).
			SetBody(msg).
			Post(Endpoint)
		if err != nil {
			return nil, err
		}
		if r.IsError() {
			return nil, fmt.Errorf("mail API returned status %d", r.StatusCode())
		}

		return r, nil
	})
	if err != nil {
		c.logger.Warn("mail send failed",
			zap.String("subject", subject),
			zap.Error(err),
			zap.String("state", c.cb.State().String()),
		)

		return fmt.Errorf("sending mail: %w", err)
	}

	c.logger.Info("mail sent",
		zap.String("subject", subject),
		zap.Int("recipients", len(c.to)),
	)

	return nil
}

// HealthCheck verifies the mail API is accessible.
func (c *Client) HealthCheck(ctx context.Context) error {
	resp, err := c.client.R().
		SetContext(ctx).
		Get("/health")
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("health check returned status %d", resp.StatusCode())
	}

	return nil
}
