package payments

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"mpbridge/internal/domain/entities"
	"mpbridge/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/mperror"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")

	if _, err := NewMercadoPagoGateway(" "); !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}

	g, err := NewMercadoPagoGateway("", WithMockMode(true))
	if err != nil || g == nil {
		t.Fatalf("mock mode must not require a token, got %v", err)
	}
}

func TestIsMockEnabled(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "On")
	if !IsMockEnabled() {
		t.Fatalf("expected mock mode from MERCADOPAGO_MOCK")
	}
	if ParseMockFlag("false") || ParseMockFlag("") {
		t.Fatalf("unexpected mock flag")
	}
}

func TestMercadoPagoGateway_MockMode(t *testing.T) {
	g, err := NewMercadoPagoGateway("", WithMockMode(true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	pref, err := g.CreatePreference(ctx, entities.PreferenceDraft{Items: []entities.PreferenceItem{{Title: "Book", Quantity: 1, UnitPrice: 10}}})
	if err != nil || pref.ID == "" || pref.InitPoint == "" || pref.SandboxInitPoint == "" {
		t.Fatalf("unexpected preference: %+v err=%v", pref, err)
	}

	pre, err := g.CreatePreApproval(ctx, entities.PreApprovalDraft{Reason: "Monthly", Status: "pending"})
	if err != nil || pre.ID == "" || pre.InitPoint == "" || pre.Status != "pending" {
		t.Fatalf("unexpected preapproval: %+v err=%v", pre, err)
	}

	p, err := g.GetPayment(ctx, "123")
	if err != nil || p.ID != "123" || p.Status != "approved" || len(p.Raw) == 0 {
		t.Fatalf("unexpected payment: %+v err=%v", p, err)
	}

	sub, err := g.GetPreApproval(ctx, "sub-1")
	if err != nil || sub.Status != "authorized" {
		t.Fatalf("unexpected preapproval: %+v err=%v", sub, err)
	}
}

func TestMercadoPagoGateway_InvalidIDs(t *testing.T) {
	g, _ := NewMercadoPagoGateway("", WithMockMode(true))

	if _, err := g.GetPayment(context.Background(), "abc"); !errors.Is(err, interfaces.ErrInvalidResourceID) {
		t.Fatalf("expected ErrInvalidResourceID, got %v", err)
	}
	if _, err := g.GetPreApproval(context.Background(), ""); !errors.Is(err, interfaces.ErrInvalidResourceID) {
		t.Fatalf("expected ErrInvalidResourceID, got %v", err)
	}
}

func TestIsGatewayNotFound(t *testing.T) {
	notFound := &mperror.ResponseError{StatusCode: http.StatusNotFound, Message: "Not Found"}
	if !isGatewayNotFound(notFound) {
		t.Fatalf("expected 404 response to be not found")
	}
	if !isGatewayNotFound(fmt.Errorf("get payment: %w", notFound)) {
		t.Fatalf("expected wrapped 404 response to be not found")
	}
	unavailable := &mperror.ResponseError{StatusCode: http.StatusServiceUnavailable, Message: "upstream: resource not found in cache"}
	if isGatewayNotFound(unavailable) {
		t.Fatalf("5xx must not be treated as not found")
	}
	if isGatewayNotFound(errors.New(`{"status":404}`)) || isGatewayNotFound(nil) {
		t.Fatalf("unexpected not found")
	}
}
