// Package handlers exposes the webhook and diagnostic HTTP endpoints.
package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Nkululeko-VillI-Nhlapo/Car-Wash-Assistant-AI-Powered/internal/api/middleware"
	"github.com/Nkululeko-VillI-Nhlapo/Car-Wash-Assistant-AI-Powered/internal/messaging"
	"github.com/rs/zerolog"
)

// Assistant produces a reply for one incoming message.
type Assistant interface {
	ProcessMessage(ctx context.Context, sender, message string) string
}

// WebhookHandler handles the Twilio WhatsApp webhook.
type WebhookHandler struct {
	assistant Assistant
	sender    messaging.Sender
	log       zerolog.Logger
}

// NewWebhookHandler creates a webhook handler.
func NewWebhookHandler(assistant Assistant, sender messaging.Sender, log zerolog.Logger) *WebhookHandler {
	return &WebhookHandler{
		assistant: assistant,
		sender:    sender,
		log:       log,
	}
}

// HandleWebhook handles POST /webhook. Twilio posts form-encoded Body and
// From fields. The reply is delivered out-of-band through the sender; a
// delivery failure is logged but does not fail the webhook, since Twilio
// would otherwise retry and double-process the message.
func (h *WebhookHandler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	message := strings.TrimSpace(r.FormValue("Body"))
	from := r.FormValue("From")

	h.log.Info().Str("from", from).Str("message", message).Msg("Webhook received")

	reply := h.assistant.ProcessMessage(ctx, from, message)

	if err := h.sender.Send(ctx, from, reply); err != nil {
		h.log.Error().Err(err).Str("to", from).Msg("Failed to send reply")
	}

	middleware.WriteJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

// StatusHandler handles the diagnostic endpoints.
type StatusHandler struct {
	log zerolog.Logger
}

// NewStatusHandler creates a status handler.
func NewStatusHandler(log zerolog.Logger) *StatusHandler {
	return &StatusHandler{log: log}
}

// HandleTest handles GET /test.
func (h *StatusHandler) HandleTest(w http.ResponseWriter, r *http.Request) {
	middleware.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "Car Detailing Assistant is running",
		"features": []string{
			"Operations Tracking with Payment Status",
			"Revenue Logging with Payment Tracking",
			"Expense Management",
			"Customer Journey Analysis",
			"South African Business Context",
			"Smart Data Collection",
		},
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// HandleHealth handles GET /health.
func (h *StatusHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	middleware.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
