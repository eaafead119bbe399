package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"mpbridge/internal/adapter/http/handlers/mocks"
	"mpbridge/internal/domain/entities"
	"mpbridge/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type handlerMocks struct {
	checkout     *mocks.MockICheckoutUseCase
	subscription *mocks.MockISubscriptionUseCase
	webhook      *mocks.MockIWebhookUseCase
}

func newTestRouter(t *testing.T, publicKey string) (*gin.Engine, handlerMocks) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	m := handlerMocks{
		checkout:     mocks.NewMockICheckoutUseCase(ctrl),
		subscription: mocks.NewMockISubscriptionUseCase(ctrl),
		webhook:      mocks.NewMockIWebhookUseCase(ctrl),
	}
	h := NewMercadoPagoHandler(m.checkout, m.subscription, m.webhook, publicKey, nil)

	r := gin.New()
	r.Any("/api/mp/*action", h.Dispatch)
	return r, m
}

func doRequest(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("body is not json: %q", w.Body.String())
	}
	msg, _ := body["error"].(string)
	return msg
}

func TestMercadoPagoHandler_Dispatch(t *testing.T) {
	t.Run("unknown route", func(t *testing.T) {
		r, _ := newTestRouter(t, "")
		w := doRequest(r, http.MethodPost, "/api/mp/refund", "{}")
		if w.Code != http.StatusNotFound || decodeError(t, w) != "Not Found" {
			t.Fatalf("expected 404 Not Found, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("wrong method", func(t *testing.T) {
		r, _ := newTestRouter(t, "")
		for _, path := range []string{"/api/mp/checkout", "/api/mp/subscribe", "/api/mp/webhook"} {
			w := doRequest(r, http.MethodGet, path, "")
			if w.Code != http.StatusMethodNotAllowed || decodeError(t, w) != "Method not allowed" {
				t.Fatalf("%s: expected 405, got %d %s", path, w.Code, w.Body.String())
			}
		}
	})

	t.Run("trailing slash", func(t *testing.T) {
		r, _ := newTestRouter(t, "pk")
		w := doRequest(r, http.MethodGet, "/api/mp/config/", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMercadoPagoHandler_Config(t *testing.T) {
	r, _ := newTestRouter(t, "")
	w := doRequest(r, http.MethodPost, "/api/mp/config", "")
	if w.Code != http.StatusOK || w.Body.String() != `{"publicKey":null}` {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}

	r, _ = newTestRouter(t, "APP_USR-1")
	w = doRequest(r, http.MethodGet, "/api/mp/config", "")
	if w.Body.String() != `{"publicKey":"APP_USR-1"}` {
		t.Fatalf("unexpected response %s", w.Body.String())
	}
}

func TestMercadoPagoHandler_Checkout(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		r, _ := newTestRouter(t, "")
		w := doRequest(r, http.MethodPost, "/api/mp/checkout", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("validation error", func(t *testing.T) {
		r, m := newTestRouter(t, "")
		m.checkout.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).Return(entities.CheckoutResponse{}, fmt.Errorf("%w: gold", usecase.ErrProductNotFound))

		w := doRequest(r, http.MethodPost, "/api/mp/checkout", `{"productId":"gold"}`)
		if w.Code != http.StatusBadRequest || decodeError(t, w) != "product not found: gold" {
			t.Fatalf("expected 400 product not found, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("gateway error", func(t *testing.T) {
		r, m := newTestRouter(t, "")
		m.checkout.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).Return(entities.CheckoutResponse{}, errors.New("mp unavailable"))

		w := doRequest(r, http.MethodPost, "/api/mp/checkout", `{"productId":"pro"}`)
		if w.Code != http.StatusInternalServerError || decodeError(t, w) != "mp unavailable" {
			t.Fatalf("expected 500 with message, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		r, m := newTestRouter(t, "")
		m.checkout.EXPECT().CreatePreference(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req entities.CheckoutRequest) (entities.CheckoutResponse, error) {
			if req.ProductID != "pro" || req.Quantity != 2 || req.Metadata["user"] != "u1" {
				t.Fatalf("unexpected request %+v", req)
			}
			return entities.CheckoutResponse{URL: "https://mp/init", PreferenceID: "pref-1", SandboxURL: "https://mp/sandbox"}, nil
		})

		w := doRequest(r, http.MethodPost, "/api/mp/checkout", `{"productId":"pro","quantity":2,"metadata":{"user":"u1"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d %s", w.Code, w.Body.String())
		}
		var res entities.CheckoutResponse
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil || res.PreferenceID != "pref-1" || res.SandboxURL != "https://mp/sandbox" {
			t.Fatalf("unexpected response %s", w.Body.String())
		}
	})
}

func TestMercadoPagoHandler_Subscribe(t *testing.T) {
	t.Run("validation error", func(t *testing.T) {
		r, m := newTestRouter(t, "")
		m.subscription.EXPECT().CreateSubscription(gomock.Any(), gomock.Any()).Return(entities.SubscribeResponse{}, usecase.ErrPayerEmailRequired)

		w := doRequest(r, http.MethodPost, "/api/mp/subscribe", `{"planId":"monthly"}`)
		if w.Code != http.StatusBadRequest || decodeError(t, w) != "payerEmail is required" {
			t.Fatalf("expected 400, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		r, m := newTestRouter(t, "")
		m.subscription.EXPECT().CreateSubscription(gomock.Any(), entities.SubscribeRequest{PlanID: "monthly", PayerEmail: "a@test.com"}).
			Return(entities.SubscribeResponse{URL: "https://mp/sub", SubscriptionID: "sub-1"}, nil)

		w := doRequest(r, http.MethodPost, "/api/mp/subscribe", `{"planId":"monthly","payerEmail":"a@test.com"}`)
		if w.Code != http.StatusOK || w.Body.String() != `{"url":"https://mp/sub","subscriptionId":"sub-1"}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}

func TestMercadoPagoHandler_Webhook(t *testing.T) {
	t.Run("unparseable body acknowledged", func(t *testing.T) {
		r, _ := newTestRouter(t, "")
		w := doRequest(r, http.MethodPost, "/api/mp/webhook", "not json")
		if w.Code != http.StatusOK || w.Body.Len() != 0 {
			t.Fatalf("expected empty 200, got %d %q", w.Code, w.Body.String())
		}
	})

	t.Run("processed", func(t *testing.T) {
		r, m := newTestRouter(t, "")
		m.webhook.EXPECT().Process(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n entities.WebhookNotification) (*entities.Event, error) {
			if n.Body.Type != "payment" || n.Body.Data.ID != "123" {
				t.Fatalf("unexpected body %+v", n.Body)
			}
			if n.Signature != "ts=1,v1=abc" || n.RequestID != "req-1" || n.SignatureDataID() != "123" {
				t.Fatalf("unexpected signature fields %+v", n)
			}
			return &entities.Event{Type: entities.EventPaymentApproved, ID: "123"}, nil
		})

		req := httptest.NewRequest(http.MethodPost, "/api/mp/webhook?data.id=123&type=payment", bytes.NewBufferString(`{"type":"payment","data":{"id":123}}`))
		req.Header.Set("x-signature", "ts=1,v1=abc")
		req.Header.Set("x-request-id", "req-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK || w.Body.Len() != 0 {
			t.Fatalf("expected empty 200, got %d %q", w.Code, w.Body.String())
		}
	})

	t.Run("ipn query only", func(t *testing.T) {
		r, m := newTestRouter(t, "")
		m.webhook.EXPECT().Process(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, n entities.WebhookNotification) (*entities.Event, error) {
			if n.Body.Type != "preapproval" || n.Body.Data.ID != "sub-1" {
				t.Fatalf("unexpected body %+v", n.Body)
			}
			return nil, nil
		})

		w := doRequest(r, http.MethodPost, "/api/mp/webhook?topic=preapproval&id=sub-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid signature", func(t *testing.T) {
		r, m := newTestRouter(t, "")
		m.webhook.EXPECT().Process(gomock.Any(), gomock.Any()).Return(nil, usecase.ErrInvalidSignature)

		w := doRequest(r, http.MethodPost, "/api/mp/webhook", `{"type":"payment","data":{"id":"1"}}`)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("handler failure", func(t *testing.T) {
		r, m := newTestRouter(t, "")
		m.webhook.EXPECT().Process(gomock.Any(), gomock.Any()).Return(nil, errors.New("event handler: db down"))

		w := doRequest(r, http.MethodPost, "/api/mp/webhook", `{"type":"payment","data":{"id":"1"}}`)
		if w.Code != http.StatusInternalServerError || decodeError(t, w) != "event handler: db down" {
			t.Fatalf("expected 500, got %d %s", w.Code, w.Body.String())
		}
	})
}

func TestLastSegment(t *testing.T) {
	cases := map[string]string{
		"/api/mp/checkout":  "checkout",
		"/api/mp/checkout/": "checkout",
		"webhook":           "webhook",
		"/":                 "",
	}
	for in, want := range cases {
		if got := lastSegment(in); got != want {
			t.Fatalf("lastSegment(%q) = %q, want %q", in, got, want)
		}
	}
}
