// Package config loads runtime configuration from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config carries every runtime setting the service needs.
type Config struct {
	// LedgerObjectURI locates the workbook, e.g. "gs://bucket/ledger.xlsx".
	LedgerObjectURI string

	TwilioAccountSID     string
	TwilioAuthToken      string
	TwilioWhatsAppNumber string

	GeminiModel string

	OwnerName    string
	BusinessName string

	// BusinessUTCOffsetHours fixes the business timezone; South Africa is UTC+2.
	BusinessUTCOffsetHours int

	// ConversationHistoryLimit bounds the per-sender turns kept in memory.
	ConversationHistoryLimit int
}

// Load reads configuration from the environment. LEDGER_OBJECT_URI is the
// only required setting; everything else has a default.
func Load() (*Config, error) {
	cfg := &Config{
		LedgerObjectURI:          os.Getenv("LEDGER_OBJECT_URI"),
		TwilioAccountSID:         os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:          os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioWhatsAppNumber:     getEnv("TWILIO_WHATSAPP_NUMBER", "whatsapp:+14155238886"),
		GeminiModel:              getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		OwnerName:                getEnv("OWNER_NAME", "Moloi"),
		BusinessName:             getEnv("BUSINESS_NAME", "MR Banks Car Detailing"),
		BusinessUTCOffsetHours:   getEnvInt("BUSINESS_UTC_OFFSET_HOURS", 2),
		ConversationHistoryLimit: getEnvInt("CONVERSATION_HISTORY_LIMIT", 50),
	}

	if cfg.LedgerObjectURI == "" {
		return nil, fmt.Errorf("config: LEDGER_OBJECT_URI is required")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
