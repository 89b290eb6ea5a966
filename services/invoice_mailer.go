// ════════════════════════════════════════════════════════════
// Path: services/invoice_mailer.go
// Invoice delivery: HTML preview plus PDF attachment via Resend
// ════════════════════════════════════════════════════════════

package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/kartify-commerce/kartify-backend/models"
)

// SendOrderInvoicePDFEmail mails the customer their invoice: an inline
// HTML summary plus the generated PDF attached.
func (r *ResendClient) SendOrderInvoicePDFEmail(ctx context.Context, order *models.Order, items []models.OrderItem, customer *models.User, pdf []byte) error {
	var itemRows strings.Builder
	for _, item := range items {
		itemRows.WriteString(fmt.Sprintf(`
      <tr>
        <td style="padding: 8px 0; font-size: 14px; color: #262622;">%s</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; color: #262622;">%d</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; color: #262622;">$%.2f</td>
        <td style="padding: 8px 0; font-size: 14px; text-align: right; font-weight: 600; color: #262622;">$%.2f</td>
      </tr>
    `, item.Name, item.Quantity, item.Price, item.Price*float64(item.Quantity)))
	}

	customerName := strings.TrimSpace(customer.Name)
	if customerName == "" {
		customerName = customer.Username
	}

	htmlBody := fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Invoice - %s</title>
</head>
<body style="margin: 0; padding: 16px; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', 'Roboto', sans-serif; background-color: #fafaf7; line-height: 1.5;">
  <table width="100%%" cellpadding="0" cellspacing="0" border="0" style="max-width: 900px; margin: auto; background: #ffffff; padding: 24px;">
    <tr>
      <td style="border-bottom: 1px solid #e5e5e0; padding-bottom: 16px;">
        <h1 style="margin: 0; font-size: 30px; font-weight: bold; color: #262622;">INVOICE</h1>
      </td>
    </tr>
    <tr>
      <td style="padding: 16px 0;">
        <h2 style="margin: 0; font-size: 24px; font-weight: bold; color: #262622;">KARTIFY STORE</h2>
        <p style="margin: 4px 0; font-size: 14px; color: #79776d;">contact@kartify.shop</p>
      </td>
    </tr>
    <tr>
      <td style="padding: 16px 0;">
        <p style="margin: 0; font-size: 14px; font-weight: bold; color: #262622;">Bill To</p>
        <p style="margin: 4px 0; font-size: 14px; color: #262622;">%s</p>
        <p style="margin: 4px 0; font-size: 14px; color: #79776d;">%s</p>
        <p style="margin: 8px 0 0 0; font-size: 14px; color: #79776d;">Order Number</p>
        <p style="margin: 4px 0; font-size: 14px; font-weight: bold; color: #262622;">%s</p>
        <p style="margin: 8px 0 0 0; font-size: 14px; color: #79776d;">Order Date</p>
        <p style="margin: 4px 0; font-size: 14px; font-weight: bold; color: #262622;">%s</p>
      </td>
    </tr>
    <tr>
      <td style="padding: 16px 0; border-top: 1px solid #e5e5e0; border-bottom: 1px solid #e5e5e0;">
        <table width="100%%" cellpadding="0" cellspacing="0" border="0">
          <thead>
            <tr>
              <th style="text-align: left; font-size: 12px; text-transform: uppercase; color: #262622; padding-bottom: 8px;">Description</th>
              <th style="text-align: right; font-size: 12px; text-transform: uppercase; color: #262622; padding-bottom: 8px;">Qty</th>
              <th style="text-align: right; font-size: 12px; text-transform: uppercase; color: #262622; padding-bottom: 8px;">Price</th>
              <th style="text-align: right; font-size: 12px; text-transform: uppercase; color: #262622; padding-bottom: 8px;">Total</th>
            </tr>
          </thead>
          <tbody>
            %s
          </tbody>
        </table>
      </td>
    </tr>
    <tr>
      <td style="padding: 16px 0;">
        <table align="right" width="300" cellpadding="0" cellspacing="0" border="0">
          <tr>
            <td style="font-size: 14px; font-weight: bold; border-top: 1px solid #e5e5e0; padding-top: 8px;">Total</td>
            <td style="text-align: right; font-size: 16px; font-weight: bold; color: #262622; border-top: 1px solid #e5e5e0; padding-top: 8px;">$%.2f</td>
          </tr>
        </table>
      </td>
    </tr>
    <tr>
      <td style="padding: 16px 0; border-top: 1px solid #e5e5e0;">
        <p style="font-size: 14px; font-weight: bold; color: #262622;">Thank you for your business!</p>
      </td>
    </tr>
  </table>
</body>
</html>
`, order.OrderNumber,
		customerName, customer.Email,
		order.OrderNumber, order.CreatedAt.Format("Jan 2, 2006"),
		itemRows.String(),
		order.Total,
	)

	payload := map[string]any{
		"from":    r.from,
		"to":      customer.Email,
		"subject": fmt.Sprintf("Your Invoice #%s from Kartify Store", order.OrderNumber),
		"html":    htmlBody,
		"attachments": []map[string]any{
			{
				"filename": fmt.Sprintf("invoice-%s.pdf", order.OrderNumber),
				"content":  base64.StdEncoding.EncodeToString(pdf),
			},
		},
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
		log.Error().Err(err).Str("to", customer.Email).Msg("[services.invoice_mailer] request failed")
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		log.Error().Int("status", resp.StatusCode).Str("to", customer.Email).
			Str("body", string(respBody)).Msg("[services.invoice_mailer] resend rejected email")
		return fmt.Errorf("resend API returned status %d", resp.StatusCode)
	}
	log.Info().Str("to", customer.Email).Str("order", order.OrderNumber).
		Msg("[services.invoice_mailer] invoice email sent")
	return nil
}
