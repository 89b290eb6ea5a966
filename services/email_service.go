package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Mailer delivers transactional mail. The auth service depends on this
// interface so tests can swap in a recorder.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// ResendClient sends mail via the Resend API.
type ResendClient struct {
	apiKey string
	from   string
	client *http.Client
}

// NewResendClient creates a Resend-backed mailer.
func NewResendClient(apiKey, from string) *ResendClient {
	return &ResendClient{
		apiKey: apiKey,
		from:   from,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

// Send delivers one email. The body is wrapped in a minimal HTML shell.
func (r *ResendClient) Send(ctx context.Context, to, subject, body string) error {
	payload := map[string]any{
		"from":    r.from,
		"to":      to,
		"subject": subject,
		"html":    fmt.Sprintf("<div style=\"font-family:sans-serif\"><p>%s</p></div>", body),
	}
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "https://api.resend.com/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", r.apiKey))
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		log.Error().Err(err).Str("to", to).Msg("[services.email] request failed")
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		log.Error().Int("status", resp.StatusCode).Str("to", to).
			Str("body", string(respBody)).Msg("[services.email] resend rejected email")
		return fmt.Errorf("resend API returned status %d", resp.StatusCode)
	}
	log.Info().Str("to", to).Str("subject", subject).Msg("[services.email] email sent")
	return nil
}
