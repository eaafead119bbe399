package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"mpbridge/internal/domain/entities"
	"mpbridge/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/mperror"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preapproval"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"go.uber.org/zap"
)

var ErrMissingMercadoPagoAccessToken = errors.New("access token is required")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway talks to Mercado Pago through the official SDK.
//
// In mock mode no request leaves the process: created resources get random
// ids and fetched resources come back approved/authorized.
type MercadoPagoGateway struct {
	preferences  preference.Client
	payments     payment.Client
	preapprovals preapproval.Client
	mockMode     bool
	log          *zap.Logger
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

type GatewayOption func(*MercadoPagoGateway)

// WithMockMode overrides the PAYMENT_GATEWAY_MOCK / MERCADOPAGO_MOCK env switch.
func WithMockMode(enabled bool) GatewayOption {
	return func(g *MercadoPagoGateway) { g.mockMode = enabled }
}

func WithLogger(l *zap.Logger) GatewayOption {
	return func(g *MercadoPagoGateway) {
		if l != nil {
			g.log = l
		}
	}
}

func NewMercadoPagoGateway(accessToken string, opts ...GatewayOption) (*MercadoPagoGateway, error) {
	g := &MercadoPagoGateway{mockMode: IsMockEnabled(), log: zap.NewNop()}
	for _, opt := range opts {
		opt(g)
	}

	if g.mockMode {
		g.log.Info("[mp][gateway] mock mode enabled")
		return g, nil
	}

	if strings.TrimSpace(accessToken) == "" {
		g.log.Error("[mp][gateway] missing access token")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		g.log.Error("[mp][gateway] failed creating sdk config", zap.Error(err))
		return nil, err
	}
	g.preferences = preference.NewClient(cfg)
	g.payments = payment.NewClient(cfg)
	g.preapprovals = preapproval.NewClient(cfg)
	g.log.Info("[mp][gateway] Mercado Pago client initialized")

	return g, nil
}

func (g *MercadoPagoGateway) CreatePreference(ctx context.Context, draft entities.PreferenceDraft) (entities.Preference, error) {
	if g.mockMode {
		id := uuid.NewString()
		g.log.Info("[mp][gateway] mock create-preference", zap.String("preference_id", id))
		return entities.Preference{
			ID:               id,
			InitPoint:        "https://www.mercadopago.com/checkout/v1/redirect?pref_id=" + id,
			SandboxInitPoint: "https://sandbox.mercadopago.com/checkout/v1/redirect?pref_id=" + id,
			Raw:              mockRaw(map[string]any{"id": id, "items": len(draft.Items)}),
		}, nil
	}
	if g.preferences == nil {
		return entities.Preference{}, ErrMercadoPagoGatewayNotConfigured
	}

	req := preference.Request{
		Items:             make([]preference.ItemRequest, 0, len(draft.Items)),
		AutoReturn:        draft.AutoReturn,
		ExternalReference: draft.ExternalReference,
		NotificationURL:   draft.NotificationURL,
		Metadata:          draft.Metadata,
	}
	for _, it := range draft.Items {
		req.Items = append(req.Items, preference.ItemRequest{
			ID:          it.ID,
			Title:       it.Title,
			Description: it.Description,
			PictureURL:  it.PictureURL,
			CategoryID:  it.CategoryID,
			CurrencyID:  it.CurrencyID,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	if draft.BackURLs != (entities.BackURLs{}) {
		req.BackURLs = &preference.BackURLsRequest{
			Success: draft.BackURLs.Success,
			Failure: draft.BackURLs.Failure,
			Pending: draft.BackURLs.Pending,
		}
	}
	if draft.PayerEmail != "" {
		req.Payer = &preference.PayerRequest{Email: draft.PayerEmail}
	}

	g.log.Info("[mp][gateway] create-preference start", zap.Int("items", len(req.Items)))
	resp, err := g.preferences.Create(ctx, req)
	if err != nil {
		g.log.Error("[mp][gateway] sdk create-preference failed", zap.Error(err))
		return entities.Preference{}, err
	}
	g.log.Info("[mp][gateway] create-preference success", zap.String("preference_id", resp.ID))

	return entities.Preference{
		ID:               resp.ID,
		InitPoint:        resp.InitPoint,
		SandboxInitPoint: resp.SandboxInitPoint,
		Raw:              g.marshalRaw(resp),
	}, nil
}

func (g *MercadoPagoGateway) CreatePreApproval(ctx context.Context, draft entities.PreApprovalDraft) (entities.PreApproval, error) {
	if g.mockMode {
		id := uuid.NewString()
		g.log.Info("[mp][gateway] mock create-preapproval", zap.String("subscription_id", id))
		return entities.PreApproval{
			ID:                id,
			Status:            draft.Status,
			Reason:            draft.Reason,
			ExternalReference: draft.ExternalReference,
			PayerEmail:        draft.PayerEmail,
			InitPoint:         "https://www.mercadopago.com/subscriptions/checkout?preapproval_id=" + id,
			AutoRecurring:     draft.AutoRecurring,
			Raw:               mockRaw(map[string]any{"id": id, "status": draft.Status}),
		}, nil
	}
	if g.preapprovals == nil {
		return entities.PreApproval{}, ErrMercadoPagoGatewayNotConfigured
	}

	req := preapproval.Request{
		Reason:            draft.Reason,
		PayerEmail:        draft.PayerEmail,
		BackURL:           draft.BackURL,
		ExternalReference: draft.ExternalReference,
		Status:            draft.Status,
		AutoRecurring: &preapproval.AutoRecurringRequest{
			Frequency:         draft.AutoRecurring.Frequency,
			FrequencyType:     draft.AutoRecurring.FrequencyType,
			TransactionAmount: draft.AutoRecurring.TransactionAmount,
			CurrencyID:        draft.AutoRecurring.CurrencyID,
		},
	}

	g.log.Info("[mp][gateway] create-preapproval start", zap.String("reason", draft.Reason))
	resp, err := g.preapprovals.Create(ctx, req)
	if err != nil {
		g.log.Error("[mp][gateway] sdk create-preapproval failed", zap.Error(err))
		return entities.PreApproval{}, err
	}
	g.log.Info("[mp][gateway] create-preapproval success", zap.String("subscription_id", resp.ID))

	return g.fromPreApproval(resp), nil
}

func (g *MercadoPagoGateway) GetPayment(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	numericID, err := strconv.Atoi(id)
	if err != nil || numericID <= 0 {
		return entities.Payment{}, fmt.Errorf("payment %q: %w", id, interfaces.ErrInvalidResourceID)
	}

	if g.mockMode {
		now := time.Now().UTC()
		g.log.Info("[mp][gateway] mock get-payment", zap.String("payment_id", id))
		return entities.Payment{
			ID:           id,
			Status:       "approved",
			StatusDetail: "accredited",
			CurrencyID:   entities.DefaultCurrencyID,
			DateCreated:  now,
			DateApproved: now,
			Raw:          mockRaw(map[string]any{"id": numericID, "status": "approved", "status_detail": "accredited"}),
		}, nil
	}
	if g.payments == nil {
		return entities.Payment{}, ErrMercadoPagoGatewayNotConfigured
	}

	resp, err := g.payments.Get(ctx, numericID)
	if err != nil {
		if isGatewayNotFound(err) {
			return entities.Payment{}, fmt.Errorf("payment %s: %w", id, interfaces.ErrResourceNotFound)
		}
		g.log.Error("[mp][gateway] sdk get-payment failed", zap.String("payment_id", id), zap.Error(err))
		return entities.Payment{}, err
	}

	return entities.Payment{
		ID:                strconv.Itoa(resp.ID),
		Status:            resp.Status,
		StatusDetail:      resp.StatusDetail,
		ExternalReference: resp.ExternalReference,
		TransactionAmount: resp.TransactionAmount,
		CurrencyID:        resp.CurrencyID,
		PaymentMethodID:   resp.PaymentMethodID,
		PaymentTypeID:     resp.PaymentTypeID,
		PayerEmail:        resp.Payer.Email,
		Metadata:          resp.Metadata,
		DateCreated:       resp.DateCreated,
		DateApproved:      resp.DateApproved,
		Raw:               g.marshalRaw(resp),
	}, nil
}

func (g *MercadoPagoGateway) GetPreApproval(ctx context.Context, id string) (entities.PreApproval, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PreApproval{}, fmt.Errorf("preapproval: %w", interfaces.ErrInvalidResourceID)
	}

	if g.mockMode {
		g.log.Info("[mp][gateway] mock get-preapproval", zap.String("subscription_id", id))
		return entities.PreApproval{
			ID:     id,
			Status: "authorized",
			Raw:    mockRaw(map[string]any{"id": id, "status": "authorized"}),
		}, nil
	}
	if g.preapprovals == nil {
		return entities.PreApproval{}, ErrMercadoPagoGatewayNotConfigured
	}

	resp, err := g.preapprovals.Get(ctx, id)
	if err != nil {
		if isGatewayNotFound(err) {
			return entities.PreApproval{}, fmt.Errorf("preapproval %s: %w", id, interfaces.ErrResourceNotFound)
		}
		g.log.Error("[mp][gateway] sdk get-preapproval failed", zap.String("subscription_id", id), zap.Error(err))
		return entities.PreApproval{}, err
	}
	return g.fromPreApproval(resp), nil
}

func (g *MercadoPagoGateway) fromPreApproval(resp *preapproval.Response) entities.PreApproval {
	return entities.PreApproval{
		ID:                resp.ID,
		Status:            resp.Status,
		Reason:            resp.Reason,
		ExternalReference: resp.ExternalReference,
		PayerEmail:        resp.PayerEmail,
		InitPoint:         resp.InitPoint,
		AutoRecurring: entities.AutoRecurring{
			Frequency:         resp.AutoRecurring.Frequency,
			FrequencyType:     resp.AutoRecurring.FrequencyType,
			TransactionAmount: resp.AutoRecurring.TransactionAmount,
			CurrencyID:        resp.AutoRecurring.CurrencyID,
		},
		Raw: g.marshalRaw(resp),
	}
}

func (g *MercadoPagoGateway) marshalRaw(v any) json.RawMessage {
	b, err := json.Marshal(v)
	if err != nil {
		g.log.Warn("[mp][gateway] response marshal failed", zap.Error(err))
		return nil
	}
	return b
}

func mockRaw(v map[string]any) json.RawMessage {
	v["mock"] = true
	b, _ := json.Marshal(v)
	return b
}

// IsMockEnabled reads the PAYMENT_GATEWAY_MOCK and MERCADOPAGO_MOCK switches.
func IsMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		if ParseMockFlag(os.Getenv(key)) {
			return true
		}
	}
	return false
}

func ParseMockFlag(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}

func isGatewayNotFound(err error) bool {
	var re *mperror.ResponseError
	return errors.As(err, &re) && re.StatusCode == http.StatusNotFound
}
