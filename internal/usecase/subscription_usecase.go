package usecase

import (
	"context"
	"fmt"
	"strings"

	"mpbridge/internal/domain/entities"
	"mpbridge/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// ISubscriptionUseCase creates recurring payment agreements.
type ISubscriptionUseCase interface {
	CreateSubscription(ctx context.Context, req entities.SubscribeRequest) (entities.SubscribeResponse, error)
}

type SubscriptionUseCase struct {
	cfg     entities.Config
	gateway interfaces.IPaymentGateway
	log     *zap.Logger
}

var _ ISubscriptionUseCase = (*SubscriptionUseCase)(nil)

func NewSubscriptionUseCase(cfg entities.Config, gateway interfaces.IPaymentGateway, logger *zap.Logger) *SubscriptionUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubscriptionUseCase{cfg: cfg, gateway: gateway, log: logger}
}

func (u *SubscriptionUseCase) CreateSubscription(ctx context.Context, req entities.SubscribeRequest) (entities.SubscribeResponse, error) {
	u.log.Info("[subscription][usecase] create start",
		zap.String("plan_id", req.PlanID),
		zap.Int("metadata_keys", len(req.Metadata)),
	)
	if u.gateway == nil {
		return entities.SubscribeResponse{}, ErrGatewayNotConfigured
	}

	email := strings.TrimSpace(req.PayerEmail)
	if email == "" {
		return entities.SubscribeResponse{}, ErrPayerEmailRequired
	}

	plan, err := u.resolvePlan(req)
	if err != nil {
		u.log.Warn("[subscription][usecase] invalid plan", zap.String("plan_id", req.PlanID), zap.Error(err))
		return entities.SubscribeResponse{}, err
	}

	backURL := req.BackURL
	if backURL == "" {
		backURL = u.cfg.BaseURL
	}

	currency := plan.CurrencyID
	if currency == "" {
		currency = entities.DefaultCurrencyID
	}

	pre, err := u.gateway.CreatePreApproval(ctx, entities.PreApprovalDraft{
		Reason:            plan.Reason,
		PayerEmail:        email,
		BackURL:           backURL,
		ExternalReference: req.ExternalReference,
		Status:            "pending",
		AutoRecurring: entities.AutoRecurring{
			Frequency:         plan.Frequency,
			FrequencyType:     string(plan.FrequencyType),
			TransactionAmount: plan.TransactionAmount,
			CurrencyID:        currency,
		},
	})
	if err != nil {
		u.log.Error("[subscription][usecase] gateway create-preapproval failed", zap.Error(err))
		return entities.SubscribeResponse{}, err
	}
	if pre.ID == "" || pre.InitPoint == "" {
		u.log.Error("[subscription][usecase] preapproval without id or init_point", zap.String("subscription_id", pre.ID))
		return entities.SubscribeResponse{}, ErrSubscriptionFailed
	}

	u.log.Info("[subscription][usecase] create success", zap.String("subscription_id", pre.ID))
	return entities.SubscribeResponse{URL: pre.InitPoint, SubscriptionID: pre.ID}, nil
}

func (u *SubscriptionUseCase) resolvePlan(req entities.SubscribeRequest) (entities.PlanConfig, error) {
	var plan entities.PlanConfig
	if req.PlanID != "" {
		p, ok := u.cfg.Plans[req.PlanID]
		if !ok {
			return entities.PlanConfig{}, fmt.Errorf("%w: %s", ErrPlanNotFound, req.PlanID)
		}
		plan = p
	} else {
		if strings.TrimSpace(req.Reason) == "" || req.TransactionAmount <= 0 || req.Frequency <= 0 || req.FrequencyType == "" {
			return entities.PlanConfig{}, ErrIncompletePlan
		}
		plan = entities.PlanConfig{
			Reason:            req.Reason,
			TransactionAmount: req.TransactionAmount,
			CurrencyID:        req.CurrencyID,
			Frequency:         req.Frequency,
			FrequencyType:     req.FrequencyType,
		}
	}
	if !plan.FrequencyType.Valid() {
		return entities.PlanConfig{}, fmt.Errorf("%w: %q", ErrInvalidFrequencyType, plan.FrequencyType)
	}
	return plan, nil
}
