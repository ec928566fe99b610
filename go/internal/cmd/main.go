package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/jonboulle/clockwork"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/DomonziHUN/f1-manager/go/internal/auction/events"
	"github.com/DomonziHUN/f1-manager/go/internal/dbconfig"
	"github.com/DomonziHUN/f1-manager/go/internal/gateway"
	"github.com/DomonziHUN/f1-manager/go/internal/users"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("could not load .env file")
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	config, err := loadConfig(getEnv("CONFIG_PATH", "config.yaml"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal().Msg("JWT_SECRET environment variable is required")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	dbCfg := dbconfig.NewConfigFromEnv()

	database, err := setupDatabase(dbCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer database.Close()

	pool, err := setupPgxPool(ctx, dbCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create pgx pool")
	}
	defer pool.Close()

	// NATS is optional; without it auction events only reach the logs.
	natsURL := getEnv("NATS_URL", nats.DefaultURL)
	var publisher events.Publisher = events.NoopPublisher{}
	var liveManager *gateway.ConnectionManager

	jsCfg := events.DefaultJetStreamConfig()
	jsCfg.URL = natsURL
	if jsPublisher, err := events.NewJetStreamPublisher(jsCfg); err != nil {
		log.Warn().Err(err).Msg("NATS unavailable, auction events disabled")
	} else {
		defer jsPublisher.Close()
		publisher = jsPublisher

		liveManager = gateway.NewConnectionManager(gateway.DefaultConnectionConfig())
		go liveManager.Start(ctx)

		feedCfg := gateway.DefaultLiveFeedConfig()
		feedCfg.URL = natsURL
		feed, err := gateway.NewLiveFeed(liveManager, feedCfg)
		if err != nil {
			log.Warn().Err(err).Msg("failed to set up live feed")
		} else {
			defer feed.Stop()
			go func() {
				if err := feed.Start(ctx); err != nil {
					log.Error().Err(err).Msg("live feed consumer failed")
				}
			}()
		}
	}

	tokens := users.NewTokenIssuer(jwtSecret, config.sessionTTL())
	clock := clockwork.NewRealClock()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	services := setupServices(database, pool, config, tokens, publisher, clock, rng)

	if err := services.Scheduler.Start(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to start auction scheduler")
	}

	router := gateway.NewRouter(services.Handler, services.Users, liveManager)
	server := setupServer(router)

	go func() {
		log.Info().Str("addr", server.Addr).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server failed")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	sig := <-sigChan

	log.Info().Str("signal", sig.String()).Msg("received shutdown signal")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}

	if err := services.Scheduler.Stop(); err != nil {
		log.Error().Err(err).Msg("scheduler stop failed")
	}

	cancel()
	log.Info().Msg("shutdown complete")
}
