package handlers

import (
	"errors"
	"net/http"
	"strings"

	"mpbridge/internal/adapter/http/dto/request"
	"mpbridge/internal/adapter/http/dto/response"
	"mpbridge/internal/domain/entities"
	"mpbridge/internal/usecase"
	"mpbridge/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Route names. The handler matches them against the last path segment so it
// works under any mount prefix.
const (
	ActionCheckout  = "checkout"
	ActionSubscribe = "subscribe"
	ActionWebhook   = "webhook"
	ActionConfig    = "config"
)

// MercadoPagoHandler serves the checkout, subscription, webhook and config routes.
type MercadoPagoHandler struct {
	checkout     usecase.ICheckoutUseCase
	subscription usecase.ISubscriptionUseCase
	webhook      usecase.IWebhookUseCase
	publicKey    string
	log          *zap.Logger
}

func NewMercadoPagoHandler(checkout usecase.ICheckoutUseCase, subscription usecase.ISubscriptionUseCase, webhook usecase.IWebhookUseCase, publicKey string, logger *zap.Logger) *MercadoPagoHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MercadoPagoHandler{
		checkout:     checkout,
		subscription: subscription,
		webhook:      webhook,
		publicKey:    publicKey,
		log:          logger,
	}
}

// Dispatch routes on the last non-empty path segment.
func (h *MercadoPagoHandler) Dispatch(c *gin.Context) {
	action := lastSegment(c.Request.URL.Path)

	switch action {
	case ActionCheckout:
		h.postOnly(c, h.Checkout)
	case ActionSubscribe:
		h.postOnly(c, h.Subscribe)
	case ActionWebhook:
		h.postOnly(c, h.Webhook)
	case ActionConfig:
		h.Config(c)
	default:
		appErr := pkg.NewDomainErrorSimple("NOT_FOUND", "Not Found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
	}
}

func (h *MercadoPagoHandler) postOnly(c *gin.Context, next gin.HandlerFunc) {
	if c.Request.Method != http.MethodPost {
		appErr := pkg.NewDomainErrorSimple("METHOD_NOT_ALLOWED", "Method not allowed", http.StatusMethodNotAllowed)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	next(c)
}

// Checkout godoc
// @Summary      Create a checkout preference
// @Description  Creates a Mercado Pago preference from a configured product or explicit items.
// @Tags         mercadopago
// @Accept       json
// @Produce      json
// @Param        request  body      entities.CheckoutRequest  true  "Checkout request"
// @Success      200      {object}  entities.CheckoutResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /checkout [post]
func (h *MercadoPagoHandler) Checkout(c *gin.Context) {
	var req entities.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("[checkout][handler] invalid body", zap.Error(err))
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid JSON body", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res, err := h.checkout.CreatePreference(c.Request.Context(), req)
	if err != nil {
		h.log.Warn("[checkout][handler] create failed", zap.Error(err))
		appErr := mapMercadoPagoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, res)
}

// Subscribe godoc
// @Summary      Create a subscription
// @Description  Creates a Mercado Pago preapproval from a configured plan or custom plan fields.
// @Tags         mercadopago
// @Accept       json
// @Produce      json
// @Param        request  body      entities.SubscribeRequest  true  "Subscription request"
// @Success      200      {object}  entities.SubscribeResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      500      {object}  pkg.HTTPError
// @Router       /subscribe [post]
func (h *MercadoPagoHandler) Subscribe(c *gin.Context) {
	var req entities.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("[subscription][handler] invalid body", zap.Error(err))
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid JSON body", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	res, err := h.subscription.CreateSubscription(c.Request.Context(), req)
	if err != nil {
		h.log.Warn("[subscription][handler] create failed", zap.Error(err))
		appErr := mapMercadoPagoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, res)
}

// Webhook godoc
// @Summary      Receive a Mercado Pago notification
// @Description  Re-fetches the notified payment or subscription and dispatches the normalized event. Replies 200 with an empty body once handled.
// @Tags         mercadopago
// @Accept       json
// @Param        request      body    entities.WebhookBody  false  "Notification"
// @Param        x-signature  header  string                false  "Mercado Pago signature"
// @Param        x-request-id header  string                false  "Mercado Pago request id"
// @Success      200
// @Failure      401  {object}  pkg.HTTPError
// @Failure      500  {object}  pkg.HTTPError
// @Router       /webhook [post]
func (h *MercadoPagoHandler) Webhook(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		h.log.Warn("[webhook][handler] read body failed", zap.Error(err))
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	body, err := request.ParseWebhook(raw, c.Request.URL.Query())
	if err != nil {
		// Acknowledge so Mercado Pago stops retrying a payload we will never understand.
		h.log.Warn("[webhook][handler] unparseable notification acknowledged", zap.Int("body_len", len(raw)), zap.Error(err))
		c.Status(http.StatusOK)
		return
	}

	event, err := h.webhook.Process(c.Request.Context(), entities.WebhookNotification{
		Body:         body,
		Signature:    c.GetHeader("x-signature"),
		RequestID:    c.GetHeader("x-request-id"),
		SignedDataID: c.Query("data.id"),
	})
	if err != nil {
		appErr := mapMercadoPagoError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if event != nil {
		h.log.Debug("[webhook][handler] event dispatched", zap.String("event_type", string(event.Type)), zap.String("resource_id", event.ID))
	}
	c.Status(http.StatusOK)
}

// Config godoc
// @Summary      Public configuration
// @Description  Returns the Mercado Pago public key for client-side SDKs.
// @Tags         mercadopago
// @Produce      json
// @Success      200  {object}  response.ConfigResponse
// @Router       /config [get]
func (h *MercadoPagoHandler) Config(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromPublicKey(h.publicKey))
}

func mapMercadoPagoError(err error) *pkg.AppError {
	switch {
	case usecase.IsValidationError(err):
		return pkg.NewDomainErrorSimple("VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSignature):
		return pkg.NewDomainErrorSimple("INVALID_SIGNATURE", "Invalid signature", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainError("GATEWAY_NOT_CONFIGURED", err.Error(), err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", err.Error(), err, http.StatusInternalServerError)
	}
}

func lastSegment(path string) string {
	parts := strings.Split(strings.Trim(path, "/"), "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] != "" {
			return parts[i]
		}
	}
	return ""
}
