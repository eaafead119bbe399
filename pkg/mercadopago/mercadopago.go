// Package mercadopago wires Mercado Pago checkouts, subscriptions and webhooks
// into a Go HTTP server.
//
//	mp, err := mercadopago.New(mercadopago.Config{
//		AccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
//		BaseURL:     "https://shop.example",
//		Products:    map[string]mercadopago.ProductConfig{"pro": {Title: "Pro", UnitPrice: 1500}},
//		OnEvent: func(ctx context.Context, e mercadopago.Event) error {
//			log.Println(e.Type, e.Data.ID)
//			return nil
//		},
//	})
//	http.Handle("/api/mp/", mp.Handler)
//
// The handler serves checkout, subscribe, webhook and config under whatever
// prefix it is mounted on.
package mercadopago

import (
	"context"
	"errors"
	"net/http"
	"time"

	"mpbridge/internal/adapter/http/handlers"
	"mpbridge/internal/adapter/http/routes"
	"mpbridge/internal/infrastructure/payments"
	"mpbridge/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var ErrAccessTokenRequired = errors.New("access token is required")

// Instance is what New returns.
type Instance struct {
	// Handler serves the Mercado Pago routes.
	Handler http.Handler
	// API performs the same operations without HTTP.
	API    *API
	Config Config

	handler *handlers.MercadoPagoHandler
}

// Register mounts the routes on an existing gin application.
func (i *Instance) Register(rg *gin.RouterGroup) {
	routes.Mount(rg, i.handler)
}

type options struct {
	logger    *zap.Logger
	gateway   Gateway
	journal   EventJournal
	publisher EventPublisher
	deduper   WebhookDeduper
	dedupTTL  time.Duration
	mock      bool
}

type Option func(*options)

// WithLogger replaces the default zap.L() logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithGateway replaces the Mercado Pago SDK gateway.
func WithGateway(g Gateway) Option {
	return func(o *options) { o.gateway = g }
}

// WithMockGateway keeps all calls in-process. Same as PAYMENT_GATEWAY_MOCK=true.
func WithMockGateway() Option {
	return func(o *options) { o.mock = true }
}

// WithEventJournal stores every dispatched event. Journal failures are logged
// and never fail the webhook.
func WithEventJournal(j EventJournal) Option {
	return func(o *options) { o.journal = j }
}

// WithEventPublisher forwards every dispatched event after OnEvent.
func WithEventPublisher(p EventPublisher) Option {
	return func(o *options) { o.publisher = p }
}

// WithWebhookDeduper skips notifications whose id was already processed
// within ttl. A zero ttl means 24h.
func WithWebhookDeduper(d WebhookDeduper, ttl time.Duration) Option {
	return func(o *options) {
		o.deduper = d
		o.dedupTTL = ttl
	}
}

// New validates cfg and builds the route handler and the direct API.
func New(cfg Config, opts ...Option) (*Instance, error) {
	if cfg.AccessToken == "" {
		return nil, ErrAccessTokenRequired
	}

	o := options{logger: zap.L(), mock: payments.IsMockEnabled()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}
	log := o.logger

	gateway := o.gateway
	if gateway == nil {
		g, err := payments.NewMercadoPagoGateway(cfg.AccessToken, payments.WithMockMode(o.mock), payments.WithLogger(log))
		if err != nil {
			return nil, err
		}
		gateway = g
	}

	webhookOpts := []usecase.WebhookOption{usecase.WithWebhookLogger(log)}
	if o.journal != nil {
		webhookOpts = append(webhookOpts, usecase.WithEventJournal(o.journal))
	}
	if o.publisher != nil {
		webhookOpts = append(webhookOpts, usecase.WithEventPublisher(o.publisher))
	}
	if o.deduper != nil {
		webhookOpts = append(webhookOpts, usecase.WithWebhookDeduper(o.deduper, o.dedupTTL))
	}

	// Deliveries over HTTP are signed; direct API calls come from the host
	// application and skip verification.
	httpWebhookOpts := webhookOpts
	if cfg.WebhookSecret != "" {
		httpWebhookOpts = append(append([]usecase.WebhookOption{}, webhookOpts...),
			usecase.WithWebhookValidator(payments.NewWebhookValidator(cfg.WebhookSecret)))
	}

	checkout := usecase.NewCheckoutUseCase(cfg, gateway, log)
	subscription := usecase.NewSubscriptionUseCase(cfg, gateway, log)
	webhook := usecase.NewWebhookUseCase(gateway, cfg.OnEvent, webhookOpts...)
	httpWebhook := usecase.NewWebhookUseCase(gateway, cfg.OnEvent, httpWebhookOpts...)

	h := handlers.NewMercadoPagoHandler(checkout, subscription, httpWebhook, cfg.PublicKey, log)

	return &Instance{
		Handler: routes.NewRouter(h, log, routes.RouterOptions{}),
		API: &API{
			checkout:     checkout,
			subscription: subscription,
			webhook:      webhook,
			gateway:      gateway,
		},
		Config:  cfg,
		handler: h,
	}, nil
}

// API exposes the integration to server code.
type API struct {
	checkout     usecase.ICheckoutUseCase
	subscription usecase.ISubscriptionUseCase
	webhook      usecase.IWebhookUseCase
	gateway      Gateway
}

func (a *API) CreatePreference(ctx context.Context, req CheckoutRequest) (CheckoutResponse, error) {
	return a.checkout.CreatePreference(ctx, req)
}

func (a *API) CreateSubscription(ctx context.Context, req SubscribeRequest) (SubscribeResponse, error) {
	return a.subscription.CreateSubscription(ctx, req)
}

func (a *API) GetPayment(ctx context.Context, id string) (Payment, error) {
	return a.gateway.GetPayment(ctx, id)
}

func (a *API) GetSubscription(ctx context.Context, id string) (PreApproval, error) {
	return a.gateway.GetPreApproval(ctx, id)
}

// ProcessWebhook resolves and dispatches a notification the caller already
// trusts. It returns a nil event when the notification was ignored.
func (a *API) ProcessWebhook(ctx context.Context, body WebhookBody) (*Event, error) {
	return a.webhook.Process(ctx, WebhookNotification{Body: body})
}

// ListEvents returns the journaled events of a payment or subscription, oldest first.
func (a *API) ListEvents(ctx context.Context, resourceID string) ([]Event, error) {
	return a.webhook.ListEvents(ctx, resourceID)
}
