package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Notifier delivers operational emails to admins
type Notifier interface {
	Send(subject, body string, recipients []string) error
}

// ResendEmailRequest represents the request payload for the Resend API
type ResendEmailRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Html    string   `json:"html,omitempty"`
	Text    string   `json:"text,omitempty"`
}

// ResendErrorResponse represents an error response from the Resend API
type ResendErrorResponse struct {
	Message string `json:"message"`
}

// ResendNotifier sends email through the Resend HTTP API
type ResendNotifier struct {
	apiKey    string
	fromEmail string
	client    *http.Client
}

// NewResendNotifier builds a ResendNotifier. Returns nil when the API key
// or sender address is not configured, which disables notifications.
func NewResendNotifier(apiKey, fromEmail string) *ResendNotifier {
	if apiKey == "" || fromEmail == "" {
		log.Warn().Msg("Resend not configured, email notifications disabled")
		return nil
	}
	return &ResendNotifier{
		apiKey:    apiKey,
		fromEmail: fromEmail,
		client:    &http.Client{},
	}
}

// Send delivers an HTML email to recipients via Resend
func (n *ResendNotifier) Send(subject, body string, recipients []string) error {
	if len(recipients) == 0 {
		return fmt.Errorf("at least one recipient is required")
	}

	payload := ResendEmailRequest{
		From:    n.fromEmail,
		To:      recipients,
		Subject: subject,
		Html:    body,
	}
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal email payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, "https://api.resend.com/emails", bytes.NewBuffer(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create Resend API request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+n.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to Resend API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		var errResp ResendErrorResponse
		if err := json.Unmarshal(bodyBytes, &errResp); err == nil && errResp.Message != "" {
			return fmt.Errorf("resend API returned %d: %s", resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("resend API returned %d", resp.StatusCode)
	}

	log.Debug().Strs("recipients", recipients).Str("subject", subject).Msg("Email sent")
	return nil
}
