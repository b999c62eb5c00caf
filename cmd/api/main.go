package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/WailSalutem-Health-Care/clinic-service/internal/advisor"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/auth"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/config"
	httpserver "github.com/WailSalutem-Health-Care/clinic-service/internal/http"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/logging"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/messaging"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/store"
	"github.com/WailSalutem-Health-Care/clinic-service/internal/telemetry"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	logger := logging.New(cfg.Env, cfg.LogLevel)

	ctx := context.Background()

	otelCfg := telemetry.LoadConfig()
	if otelCfg.Enabled() {
		provider, err := telemetry.InitProvider(ctx, otelCfg)
		if err != nil {
			log.Warn().Err(err).Msg("telemetry disabled")
		} else {
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = provider.Shutdown(shutdownCtx)
			}()
		}
	}

	metrics, err := telemetry.InitMetrics()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize metrics")
	}

	kv, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.StoreBackend).Msg("failed to open store")
	}
	defer kv.Close()

	var publisher messaging.PublisherInterface = messaging.NoopPublisher{}
	if cfg.EventsEnabled {
		p, err := messaging.NewPublisher(cfg.RabbitMQURL)
		if err != nil {
			log.Warn().Err(err).Msg("RabbitMQ unavailable, events will not be published")
		} else {
			publisher = p
		}
	}
	defer publisher.Close()

	var adv advisor.Advisor = advisor.Disabled{}
	if cfg.AdvisorEnabled() {
		gemini := advisor.NewGemini(advisor.GeminiConfig{
			APIKey:     cfg.GeminiAPIKey,
			BaseURL:    cfg.GeminiBaseURL,
			FlashModel: cfg.GeminiFlashModel,
			ProModel:   cfg.GeminiProModel,
			Timeout:    cfg.AdvisorTimeout,
		}, nil)
		adv = advisor.NewBreaker(gemini, advisor.BreakerConfig{}, metrics)
	} else {
		log.Info().Msg("GEMINI_API_KEY not set, clinical assistant disabled")
	}

	perms, err := auth.LoadPermissions(cfg.PermissionsFile)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.PermissionsFile).Msg("failed to load permissions")
	}

	authCfg := auth.Config{
		Secret:     []byte(cfg.SessionSecret),
		Issuer:     cfg.SessionIssuer,
		TTL:        cfg.SessionTTL,
		LoginDelay: cfg.LoginDelay,
	}

	router := httpserver.SetupRouter(httpserver.Deps{
		KV:         kv,
		Publisher:  publisher,
		Advisor:    adv,
		Verifier:   auth.NewVerifier(authCfg),
		Perms:      perms,
		AuthConfig: authCfg,
		Metrics:    metrics,
		Logger:     &logger,
		StaticDir:  cfg.StaticDir,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpserver.CORSMiddleware(cfg.Origins())(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("store", cfg.StoreBackend).Msg("clinic-service starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down clinic-service")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
