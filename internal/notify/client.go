package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// Kind tells the renderer which document to produce from a payload.
type Kind string

const (
	KindStatement Kind = "statement"
	KindInvoice   Kind = "invoice"
)

// Message is one document handed to the external renderer and mailer.
type Message struct {
	Kind    Kind     `json:"kind"`
	Subject string   `json:"subject"`
	To      []string `json:"to"`
	ReplyTo string   `json:"replyTo,omitempty"`
	// Summary is a plain text body for mail clients that do not render the
	// attached document.
	Summary string `json:"summary"`
	Payload any    `json:"payload"`
}

var ErrNoRecipients = errors.New("notification has no recipients")

// Client posts messages to the renderer. With no URL configured messages are
// logged and dropped.
type Client struct {
	url      string
	apiToken string
	client   *http.Client
}

func NewClient(url, apiToken string) *Client {
	return &Client{
		url:      url,
		apiToken: apiToken,
		client:   &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) Send(ctx context.Context, msg Message) error {
	if len(msg.To) == 0 {
		return ErrNoRecipients
	}

	if c.url == "" {
		slog.InfoContext(ctx, "notifier not configured, dropping message", "kind", msg.Kind, "subject", msg.Subject, "recipients", len(msg.To))
		return nil
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encoding message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	if c.apiToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiToken)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("unexpected status code %d from notifier: %s", resp.StatusCode, bytes.TrimSpace(detail))
	}

	slog.InfoContext(ctx, "notification sent", "kind", msg.Kind, "subject", msg.Subject, "recipients", len(msg.To))

	return nil
}
