package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Nkululeko-VillI-Nhlapo/Car-Wash-Assistant-AI-Powered/internal/analytics"
	"github.com/Nkululeko-VillI-Nhlapo/Car-Wash-Assistant-AI-Powered/internal/api/handlers"
	"github.com/Nkululeko-VillI-Nhlapo/Car-Wash-Assistant-AI-Powered/internal/api/middleware"
	"github.com/Nkululeko-VillI-Nhlapo/Car-Wash-Assistant-AI-Powered/internal/assistant"
	"github.com/Nkululeko-VillI-Nhlapo/Car-Wash-Assistant-AI-Powered/internal/config"
	"github.com/Nkululeko-VillI-Nhlapo/Car-Wash-Assistant-AI-Powered/internal/domain"
	"github.com/Nkululeko-VillI-Nhlapo/Car-Wash-Assistant-AI-Powered/internal/ledger"
	"github.com/Nkululeko-VillI-Nhlapo/Car-Wash-Assistant-AI-Powered/internal/llm"
	"github.com/Nkululeko-VillI-Nhlapo/Car-Wash-Assistant-AI-Powered/internal/logger"
	"github.com/Nkululeko-VillI-Nhlapo/Car-Wash-Assistant-AI-Powered/internal/messaging"
	"github.com/joho/godotenv"
)

func main() {
	// Parse command-line flags
	port := flag.String("port", "8080", "HTTP server port")
	flag.Parse()

	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	// Initialize logger
	log := logger.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if cfg.TwilioAccountSID == "" || cfg.TwilioAuthToken == "" {
		log.Warn().Msg("Twilio credentials not configured - replies will fail to send")
	}

	store, err := ledger.NewGCSStore(cfg.LedgerObjectURI)
	if err != nil {
		log.Fatal().Err(err).Str("uri", cfg.LedgerObjectURI).Msg("Invalid ledger object URI")
	}

	clock := domain.NewClock(cfg.BusinessUTCOffsetHours)

	// Wire the message pipeline
	writer := ledger.NewWriter(store, clock, log)
	engine := analytics.NewEngine(store, cfg.OwnerName, log)
	generator := llm.NewGeminiGenerator(cfg.GeminiModel)
	conversations := assistant.NewConversationStore(cfg.ConversationHistoryLimit)
	router := assistant.NewRouter(writer, engine, generator, conversations, clock,
		cfg.OwnerName, cfg.BusinessName, log)

	sender := messaging.NewTwilioSender(cfg.TwilioAccountSID, cfg.TwilioAuthToken,
		cfg.TwilioWhatsAppNumber, log)

	// Initialize handlers
	webhookHandler := handlers.NewWebhookHandler(router, sender, log)
	statusHandler := handlers.NewStatusHandler(log)

	// Create router
	mux := http.NewServeMux()

	mux.HandleFunc("/webhook", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			webhookHandler.HandleWebhook(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/test", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			statusHandler.HandleTest(w, r)
		} else {
			middleware.WriteError(w, http.StatusMethodNotAllowed, "Method not allowed")
		}
	})

	mux.HandleFunc("/health", statusHandler.HandleHealth)

	// Apply middleware
	handler := middleware.Recovery(log)(
		middleware.Logger(log)(
			middleware.RequestID(
				middleware.CORS(mux),
			),
		),
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + *port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Str("port", *port).Str("business", cfg.BusinessName).Msg("Starting assistant server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
