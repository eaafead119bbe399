package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mpbridge/internal/adapter/http/routes"
	"mpbridge/internal/adapter/persistence/repository"
	"mpbridge/internal/config"
	"mpbridge/internal/infrastructure/database"
	"mpbridge/internal/infrastructure/dedup"
	"mpbridge/internal/infrastructure/messaging"
	"mpbridge/pkg/mercadopago"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           Mercado Pago Bridge API
// @version         1.0
// @description     Checkout, subscription and webhook routes backed by Mercado Pago.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /api/mp

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// --- Logger ---
	logger, err := newLogger(cfg.Server.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	integration, err := cfg.Integration()
	if err != nil {
		logger.Fatal("[mp][main] failed to load catalog", zap.Error(err))
	}
	integration.OnEvent = func(_ context.Context, e mercadopago.Event) error {
		logger.Info("[mp][main] event",
			zap.String("type", string(e.Type)),
			zap.String("id", e.ID),
			zap.String("status", e.Data.Status),
			zap.String("external_reference", e.Data.ExternalReference),
		)
		return nil
	}

	ctx := context.Background()
	opts := []mercadopago.Option{mercadopago.WithLogger(logger)}
	if cfg.MercadoPago.Mock {
		opts = append(opts, mercadopago.WithMockGateway())
	}

	// --- Event journal (DynamoDB) ---
	if cfg.Journal.Enabled {
		ddb, err := database.ConnectDynamoDB(ctx, database.DynamoDBOptions{
			Region:   cfg.Journal.Region,
			Endpoint: cfg.Journal.Endpoint,
		})
		if err != nil {
			logger.Fatal("[mp][main] failed to connect to DynamoDB", zap.Error(err))
		}
		opts = append(opts, mercadopago.WithEventJournal(repository.NewEventDynamoRepository(ddb, cfg.Journal.Table)))
		logger.Info("[mp][main] event journal enabled", zap.String("table", cfg.Journal.Table))
	}

	// --- Event publisher (Kafka) ---
	if cfg.Kafka.Enabled() {
		publisher := messaging.NewKafkaEventPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
		defer publisher.Close()
		opts = append(opts, mercadopago.WithEventPublisher(publisher))
		logger.Info("[mp][main] kafka publisher enabled", zap.Strings("brokers", cfg.Kafka.Brokers), zap.String("topic", cfg.Kafka.Topic))
	}

	// --- Webhook dedup (Redis with in-memory fallback) ---
	if cfg.Dedup.Enabled {
		deduper, err := dedup.NewWebhookDeduper(ctx, cfg.Dedup.RedisAddr, cfg.Dedup.RedisPass, cfg.Dedup.RedisDB)
		if err != nil {
			logger.Warn("[mp][main] redis unavailable for webhook dedup, using in-memory fallback", zap.Error(err))
		}
		opts = append(opts, mercadopago.WithWebhookDeduper(deduper, cfg.Dedup.TTL))
	}

	mp, err := mercadopago.New(integration, opts...)
	if err != nil {
		logger.Fatal("[mp][main] failed to build integration", zap.Error(err))
	}

	// --- Routes ---
	router := routes.NewEngine(logger, routes.RouterOptions{Health: true, Swagger: true})
	mp.Register(router.Group(cfg.Server.RoutePrefix))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("[mp][main] starting server", zap.String("addr", srv.Addr), zap.String("prefix", cfg.Server.RoutePrefix))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("[mp][main] failed to start server", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("[mp][main] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("[mp][main] server forced to shutdown", zap.Error(err))
	}
	logger.Info("[mp][main] server exited")
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
