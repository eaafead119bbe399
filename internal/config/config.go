package config

import (
	"fmt"
	"strings"
	"time"

	"mpbridge/internal/domain/entities"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Config struct {
	Server      ServerConfig
	MercadoPago MercadoPagoConfig
	Journal     JournalConfig
	Dedup       DedupConfig
	Kafka       KafkaConfig
}

type ServerConfig struct {
	Port        int
	Env         string // "development", "production"
	RoutePrefix string
}

type MercadoPagoConfig struct {
	AccessToken     string
	PublicKey       string
	WebhookSecret   string
	BaseURL         string
	SuccessURL      string
	FailureURL      string
	PendingURL      string
	NotificationURL string
	CatalogFile     string
	Mock            bool
}

type JournalConfig struct {
	Enabled  bool
	Table    string
	Region   string
	Endpoint string
}

type DedupConfig struct {
	Enabled   bool
	RedisAddr string
	RedisPass string
	RedisDB   int
	TTL       time.Duration
}

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Enabled reports whether events should be published to Kafka.
func (k KafkaConfig) Enabled() bool {
	return len(k.Brokers) > 0 && k.Topic != ""
}

// Load reads configuration from the .env file and environment variables.
func Load() (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("APP_PORT", 8080)
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("MP_ROUTE_PREFIX", "/api/mp")
	v.SetDefault("EVENT_JOURNAL_ENABLED", false)
	v.SetDefault("EVENTS_TABLE", "mp_events")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("WEBHOOK_DEDUP_ENABLED", false)
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("WEBHOOK_DEDUP_TTL", "24h")
	v.SetDefault("KAFKA_EVENTS_TOPIC", "mercadopago.events")

	ttl, err := time.ParseDuration(v.GetString("WEBHOOK_DEDUP_TTL"))
	if err != nil {
		return nil, fmt.Errorf("WEBHOOK_DEDUP_TTL: %w", err)
	}

	mock := false
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(v.GetString(key))) {
		case "1", "true", "yes", "on", "mock":
			mock = true
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:        v.GetInt("APP_PORT"),
			Env:         v.GetString("APP_ENV"),
			RoutePrefix: v.GetString("MP_ROUTE_PREFIX"),
		},
		MercadoPago: MercadoPagoConfig{
			AccessToken:     v.GetString("MERCADOPAGO_ACCESS_TOKEN"),
			PublicKey:       v.GetString("MERCADOPAGO_PUBLIC_KEY"),
			WebhookSecret:   v.GetString("MERCADOPAGO_WEBHOOK_SECRET"),
			BaseURL:         v.GetString("APP_BASE_URL"),
			SuccessURL:      v.GetString("MERCADOPAGO_SUCCESS_URL"),
			FailureURL:      v.GetString("MERCADOPAGO_FAILURE_URL"),
			PendingURL:      v.GetString("MERCADOPAGO_PENDING_URL"),
			NotificationURL: v.GetString("MERCADOPAGO_NOTIFICATION_URL"),
			CatalogFile:     v.GetString("MERCADOPAGO_CATALOG_FILE"),
			Mock:            mock,
		},
		Journal: JournalConfig{
			Enabled:  v.GetBool("EVENT_JOURNAL_ENABLED"),
			Table:    v.GetString("EVENTS_TABLE"),
			Region:   v.GetString("AWS_REGION"),
			Endpoint: v.GetString("DYNAMODB_ENDPOINT"),
		},
		Dedup: DedupConfig{
			Enabled:   v.GetBool("WEBHOOK_DEDUP_ENABLED"),
			RedisAddr: v.GetString("REDIS_ADDR"),
			RedisPass: v.GetString("REDIS_PASS"),
			RedisDB:   v.GetInt("REDIS_DB"),
			TTL:       ttl,
		},
		Kafka: KafkaConfig{
			Brokers: splitList(v.GetString("KAFKA_BROKERS")),
			Topic:   v.GetString("KAFKA_EVENTS_TOPIC"),
		},
	}

	if cfg.MercadoPago.AccessToken == "" && !cfg.MercadoPago.Mock {
		zap.L().Warn("MERCADOPAGO_ACCESS_TOKEN is not set")
	}
	if cfg.MercadoPago.BaseURL == "" {
		zap.L().Warn("APP_BASE_URL is not set; redirect URLs must come from the request or explicit settings")
	}

	return cfg, nil
}

// Integration builds the integration settings, reading the product and plan
// catalog when MERCADOPAGO_CATALOG_FILE is set.
func (c *Config) Integration() (entities.Config, error) {
	mp := c.MercadoPago
	out := entities.Config{
		AccessToken:     mp.AccessToken,
		PublicKey:       mp.PublicKey,
		WebhookSecret:   mp.WebhookSecret,
		BaseURL:         mp.BaseURL,
		SuccessURL:      mp.SuccessURL,
		FailureURL:      mp.FailureURL,
		PendingURL:      mp.PendingURL,
		NotificationURL: mp.NotificationURL,
	}
	if mp.CatalogFile == "" {
		return out, nil
	}
	catalog, err := LoadCatalog(mp.CatalogFile)
	if err != nil {
		return entities.Config{}, err
	}
	out.Products = catalog.ProductMap()
	out.Plans = catalog.PlanMap()
	return out, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
