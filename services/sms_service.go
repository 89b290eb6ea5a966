package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// SMSSender delivers short messages.
type SMSSender interface {
	Send(ctx context.Context, to, message string) error
}

// HTTPSMSGateway posts messages to a generic JSON SMS gateway.
type HTTPSMSGateway struct {
	url    string
	apiKey string
	client *http.Client
}

// NewHTTPSMSGateway creates an SMS sender for the configured gateway.
func NewHTTPSMSGateway(url, apiKey string) *HTTPSMSGateway {
	return &HTTPSMSGateway{
		url:    url,
		apiKey: apiKey,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Send delivers one SMS.
func (g *HTTPSMSGateway) Send(ctx context.Context, to, message string) error {
	payload, err := json.Marshal(map[string]string{
		"to":      to,
		"message": message,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url, bytes.NewBuffer(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", g.apiKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("to", to).Msg("[services.sms] request failed")
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error().Int("status", resp.StatusCode).Str("to", to).Msg("[services.sms] gateway rejected message")
		return fmt.Errorf("SMS gateway returned status %d", resp.StatusCode)
	}
	return nil
}
