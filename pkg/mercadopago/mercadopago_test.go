package mercadopago

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"mpbridge/internal/infrastructure/dedup"
	"mpbridge/internal/infrastructure/payments"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func testConfig(onEvent EventHandler) Config {
	return Config{
		AccessToken: "TEST-token",
		PublicKey:   "TEST-public",
		BaseURL:     "https://shop.test",
		Products: map[string]ProductConfig{
			"pro": {Title: "Pro Plan", UnitPrice: 1500},
		},
		Plans: map[string]PlanConfig{
			"monthly": {Reason: "Monthly", TransactionAmount: 500, Frequency: 1, FrequencyType: FrequencyMonths},
		},
		OnEvent: onEvent,
	}
}

func post(h http.Handler, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestNew_RequiresAccessToken(t *testing.T) {
	if _, err := New(Config{}); !errors.Is(err, ErrAccessTokenRequired) {
		t.Fatalf("expected ErrAccessTokenRequired, got %v", err)
	}
}

func TestInstance_Handler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var events []Event
	mp, err := New(testConfig(func(_ context.Context, e Event) error {
		events = append(events, e)
		return nil
	}), WithMockGateway(), WithLogger(zap.NewNop()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w := post(mp.Handler, "/api/mp/checkout", `{"productId":"pro"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("checkout: expected 200, got %d %s", w.Code, w.Body.String())
	}
	var checkout CheckoutResponse
	if err := json.Unmarshal(w.Body.Bytes(), &checkout); err != nil || checkout.PreferenceID == "" || checkout.URL == "" {
		t.Fatalf("checkout: unexpected body %s", w.Body.String())
	}

	w = post(mp.Handler, "/api/mp/subscribe", `{"planId":"monthly","payerEmail":"a@test.com"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("subscribe: expected 200, got %d %s", w.Code, w.Body.String())
	}

	w = post(mp.Handler, "/api/mp/webhook", `{"id":1,"type":"payment","action":"payment.updated","data":{"id":"555"}}`, nil)
	if w.Code != http.StatusOK || w.Body.Len() != 0 {
		t.Fatalf("webhook: expected empty 200, got %d %q", w.Code, w.Body.String())
	}
	if len(events) != 1 || events[0].Type != EventPaymentApproved || events[0].ID != "555" {
		t.Fatalf("unexpected events %+v", events)
	}

	w = post(mp.Handler, "/api/mp/unknown", `{}`, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}

func TestInstance_WebhookSignature(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig(nil)
	cfg.WebhookSecret = "shh"

	mp, err := New(cfg, WithMockGateway(), WithLogger(zap.NewNop()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	body := `{"type":"payment","data":{"id":"555"}}`
	w := post(mp.Handler, "/api/mp/webhook", body, map[string]string{"x-signature": "ts=1,v1=deadbeef", "x-request-id": "r1"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for bad signature, got %d", w.Code)
	}

	hash := payments.NewWebhookValidator("shh").Sign(payments.Manifest("555", "r1", "1"))
	w = post(mp.Handler, "/api/mp/webhook", body, map[string]string{"x-signature": "ts=1,v1=" + hash, "x-request-id": "r1"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 for valid signature, got %d %s", w.Code, w.Body.String())
	}

	// Direct API calls are trusted.
	ev, err := mp.API.ProcessWebhook(context.Background(), WebhookBody{Type: "payment", Data: WebhookDataID("555")})
	if err != nil || ev == nil || ev.Type != EventPaymentApproved {
		t.Fatalf("unexpected direct webhook result ev=%+v err=%v", ev, err)
	}
}

func TestInstance_Register(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mp, err := New(testConfig(nil), WithMockGateway(), WithLogger(zap.NewNop()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	app := gin.New()
	app.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	mp.Register(app.Group("/payments"))

	w := httptest.NewRecorder()
	app.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/payments/config", nil))
	if w.Code != http.StatusOK || w.Body.String() != `{"publicKey":"TEST-public"}` {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}

func TestAPI(t *testing.T) {
	mp, err := New(testConfig(nil), WithMockGateway(), WithLogger(zap.NewNop()), WithWebhookDeduper(dedup.NewMemoryDeduper(), 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	pref, err := mp.API.CreatePreference(ctx, CheckoutRequest{Items: []CheckoutItem{{Title: "Book", UnitPrice: 10, Quantity: 1}}})
	if err != nil || pref.PreferenceID == "" {
		t.Fatalf("unexpected preference %+v err=%v", pref, err)
	}

	if _, err := mp.API.CreateSubscription(ctx, SubscribeRequest{PlanID: "monthly"}); err == nil {
		t.Fatalf("expected payerEmail error")
	}

	p, err := mp.API.GetPayment(ctx, "42")
	if err != nil || p.Status != "approved" {
		t.Fatalf("unexpected payment %+v err=%v", p, err)
	}

	sub, err := mp.API.GetSubscription(ctx, "sub-1")
	if err != nil || sub.Status != "authorized" {
		t.Fatalf("unexpected subscription %+v err=%v", sub, err)
	}

	body := WebhookBody{ID: "9", Type: "subscription_preapproval", Data: WebhookDataID("sub-1")}
	first, err := mp.API.ProcessWebhook(ctx, body)
	if err != nil || first == nil || first.Type != EventSubscriptionAuthorized {
		t.Fatalf("unexpected first delivery ev=%+v err=%v", first, err)
	}
	second, err := mp.API.ProcessWebhook(ctx, body)
	if err != nil || second != nil {
		t.Fatalf("expected duplicate delivery to be skipped, got ev=%+v err=%v", second, err)
	}

	if _, err := mp.API.ListEvents(ctx, "sub-1"); err == nil {
		t.Fatalf("expected error without a journal")
	}
}

func TestInstance_RegisterAtRoot(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mp, err := New(testConfig(nil), WithMockGateway(), WithLogger(zap.NewNop()))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	app := gin.New()
	app.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	mp.Register(app.Group("/"))

	w := post(app, "/checkout", `{"productId":"pro"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected checkout 200 at root, got %d %s", w.Code, w.Body.String())
	}
}
