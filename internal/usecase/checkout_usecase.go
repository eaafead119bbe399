package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"mpbridge/internal/domain/entities"
	"mpbridge/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// ICheckoutUseCase creates one-time payment preferences.
type ICheckoutUseCase interface {
	CreatePreference(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutResponse, error)
}

type CheckoutUseCase struct {
	cfg     entities.Config
	gateway interfaces.IPaymentGateway
	log     *zap.Logger
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(cfg entities.Config, gateway interfaces.IPaymentGateway, logger *zap.Logger) *CheckoutUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CheckoutUseCase{cfg: cfg, gateway: gateway, log: logger}
}

func (u *CheckoutUseCase) CreatePreference(ctx context.Context, req entities.CheckoutRequest) (entities.CheckoutResponse, error) {
	u.log.Info("[checkout][usecase] create-preference start",
		zap.String("product_id", req.ProductID),
		zap.Int("items", len(req.Items)),
	)
	if u.gateway == nil {
		return entities.CheckoutResponse{}, ErrGatewayNotConfigured
	}

	items, err := u.resolveItems(req)
	if err != nil {
		u.log.Warn("[checkout][usecase] invalid items", zap.Error(err))
		return entities.CheckoutResponse{}, err
	}

	draft := entities.PreferenceDraft{
		Items: items,
		BackURLs: entities.BackURLs{
			Success: redirectURL(req.SuccessURL, u.cfg.SuccessURL, u.cfg.BaseURL, "success"),
			Failure: redirectURL(req.FailureURL, u.cfg.FailureURL, u.cfg.BaseURL, "failure"),
			Pending: redirectURL(req.PendingURL, u.cfg.PendingURL, u.cfg.BaseURL, "pending"),
		},
		PayerEmail:        strings.TrimSpace(req.PayerEmail),
		ExternalReference: req.ExternalReference,
		NotificationURL:   u.cfg.NotificationURL,
		Metadata:          req.Metadata,
	}
	// Mercado Pago rejects auto_return without a success URL.
	if draft.BackURLs.Success != "" {
		draft.AutoReturn = "approved"
	}

	pref, err := u.gateway.CreatePreference(ctx, draft)
	if err != nil {
		u.log.Error("[checkout][usecase] gateway create-preference failed", zap.Error(err))
		return entities.CheckoutResponse{}, err
	}
	if pref.ID == "" || pref.InitPoint == "" {
		u.log.Error("[checkout][usecase] preference without id or init_point", zap.String("preference_id", pref.ID))
		return entities.CheckoutResponse{}, ErrPreferenceFailed
	}

	sandbox := pref.SandboxInitPoint
	if sandbox == "" {
		sandbox = pref.InitPoint
	}
	u.log.Info("[checkout][usecase] create-preference success", zap.String("preference_id", pref.ID))
	return entities.CheckoutResponse{URL: pref.InitPoint, PreferenceID: pref.ID, SandboxURL: sandbox}, nil
}

func (u *CheckoutUseCase) resolveItems(req entities.CheckoutRequest) ([]entities.PreferenceItem, error) {
	var src []entities.CheckoutItem
	switch {
	case len(req.Items) > 0:
		src = req.Items
	case req.ProductID != "":
		product, ok := u.cfg.Products[req.ProductID]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, req.ProductID)
		}
		qty := req.Quantity
		if qty == 0 {
			qty = 1
		}
		src = []entities.CheckoutItem{{
			ID:          req.ProductID,
			Title:       product.Title,
			UnitPrice:   product.UnitPrice,
			Quantity:    qty,
			CurrencyID:  product.CurrencyID,
			Description: product.Description,
			PictureURL:  product.PictureURL,
			CategoryID:  product.CategoryID,
		}}
	default:
		return nil, ErrNoItems
	}

	items := make([]entities.PreferenceItem, 0, len(src))
	for i, it := range src {
		title := strings.TrimSpace(it.Title)
		switch {
		case title == "":
			return nil, fmt.Errorf("%w: item %d has no title", ErrInvalidItem, i)
		case it.Quantity < 1:
			return nil, fmt.Errorf("%w: item %q quantity must be at least 1", ErrInvalidItem, title)
		case it.UnitPrice <= 0:
			return nil, fmt.Errorf("%w: item %q unitPrice must be positive", ErrInvalidItem, title)
		}
		id := it.ID
		if id == "" {
			id = itemIDFromTitle(title)
		}
		currency := it.CurrencyID
		if currency == "" {
			currency = entities.DefaultCurrencyID
		}
		items = append(items, entities.PreferenceItem{
			ID:          id,
			Title:       title,
			Description: it.Description,
			PictureURL:  it.PictureURL,
			CategoryID:  it.CategoryID,
			CurrencyID:  currency,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
		})
	}
	return items, nil
}

var whitespaceRun = regexp.MustCompile(`\s+`)

func itemIDFromTitle(title string) string {
	return whitespaceRun.ReplaceAllString(strings.ToLower(title), "_")
}

// redirectURL picks the request override, then the configured URL, then the
// base URL default.
func redirectURL(override, configured, baseURL, kind string) string {
	if override != "" {
		return override
	}
	if configured != "" {
		return configured
	}
	if baseURL == "" {
		return ""
	}
	return strings.TrimRight(baseURL, "/") + "/payment/" + kind
}
