// Package messaging delivers outbound WhatsApp replies through Twilio's
// REST API.
package messaging

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Sender delivers a message to a WhatsApp number.
type Sender interface {
	Send(ctx context.Context, to, body string) error
}

// TwilioSender posts messages to the Twilio Messages endpoint with basic
// auth. Numbers carry the "whatsapp:" prefix Twilio expects.
type TwilioSender struct {
	accountSID string
	authToken  string
	from       string
	baseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewTwilioSender creates a sender for the given account. from is the
// Twilio-provisioned WhatsApp number, e.g. "whatsapp:+14155238886".
func NewTwilioSender(accountSID, authToken, from string, log zerolog.Logger) *TwilioSender {
	return &TwilioSender{
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
		baseURL:    "https://api.twilio.com",
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        log,
	}
}

// Send posts one message. Twilio returns 201 on acceptance; anything else is
// an error.
func (s *TwilioSender) Send(ctx context.Context, to, body string) error {
	form := url.Values{}
	form.Set("To", to)
	form.Set("From", s.from)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/2010-04-01/Accounts/%s/Messages.json", s.baseURL, s.accountSID)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("Send: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(s.accountSID, s.authToken)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("Send: post message: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("Send: twilio returned %d: %s", resp.StatusCode, string(payload))
	}

	s.log.Info().Str("to", to).Msg("Message sent")
	return nil
}

var _ Sender = (*TwilioSender)(nil)
