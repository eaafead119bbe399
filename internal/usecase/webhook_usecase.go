package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mpbridge/internal/domain/entities"
	"mpbridge/internal/usecase/interfaces"

	"go.uber.org/zap"
)

// DefaultDedupTTL is how long a processed notification id is remembered.
const DefaultDedupTTL = 24 * time.Hour

// IWebhookUseCase turns Mercado Pago notifications into normalized events.
//
// Behavior:
//   - Verify the signature when a validator is configured.
//   - Re-fetch the payment or preapproval the notification points at.
//   - Map its status to an EventType and hand the event to OnEvent and the
//     optional sinks.
//
// A nil event with a nil error means the notification was ignored.
type IWebhookUseCase interface {
	Process(ctx context.Context, n entities.WebhookNotification) (*entities.Event, error)
	ListEvents(ctx context.Context, resourceID string) ([]entities.Event, error)
}

type WebhookUseCase struct {
	gateway   interfaces.IPaymentGateway
	onEvent   entities.EventHandler
	validator interfaces.IWebhookValidator
	deduper   interfaces.IWebhookDeduper
	dedupTTL  time.Duration
	publisher interfaces.IEventPublisher
	journal   interfaces.IEventRepository
	log       *zap.Logger
}

var _ IWebhookUseCase = (*WebhookUseCase)(nil)

type WebhookOption func(*WebhookUseCase)

func WithWebhookValidator(v interfaces.IWebhookValidator) WebhookOption {
	return func(u *WebhookUseCase) { u.validator = v }
}

func WithWebhookDeduper(d interfaces.IWebhookDeduper, ttl time.Duration) WebhookOption {
	return func(u *WebhookUseCase) {
		u.deduper = d
		if ttl > 0 {
			u.dedupTTL = ttl
		}
	}
}

func WithEventPublisher(p interfaces.IEventPublisher) WebhookOption {
	return func(u *WebhookUseCase) { u.publisher = p }
}

func WithEventJournal(r interfaces.IEventRepository) WebhookOption {
	return func(u *WebhookUseCase) { u.journal = r }
}

func WithWebhookLogger(l *zap.Logger) WebhookOption {
	return func(u *WebhookUseCase) {
		if l != nil {
			u.log = l
		}
	}
}

func NewWebhookUseCase(gateway interfaces.IPaymentGateway, onEvent entities.EventHandler, opts ...WebhookOption) *WebhookUseCase {
	u := &WebhookUseCase{
		gateway:  gateway,
		onEvent:  onEvent,
		dedupTTL: DefaultDedupTTL,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

func (u *WebhookUseCase) Process(ctx context.Context, n entities.WebhookNotification) (*entities.Event, error) {
	body := n.Body
	log := u.log.With(
		zap.String("type", body.Type),
		zap.String("notification_id", body.ID.String()),
		zap.String("data_id", body.Data.ID.String()),
	)
	log.Info("[webhook][usecase] process start", zap.String("action", body.Action))

	if u.validator != nil && !u.validator.Validate(n.Signature, n.RequestID, n.SignatureDataID()) {
		log.Warn("[webhook][usecase] invalid signature", zap.String("request_id", n.RequestID))
		return nil, ErrInvalidSignature
	}

	dedupKey := ""
	if u.deduper != nil && body.ID != "" {
		dedupKey = "mp:webhook:" + body.ID.String()
		seen, err := u.deduper.Seen(ctx, dedupKey, u.dedupTTL)
		switch {
		case err != nil:
			log.Warn("[webhook][usecase] dedup check failed; processing anyway", zap.Error(err))
			dedupKey = ""
		case seen:
			log.Info("[webhook][usecase] duplicate notification skipped")
			return nil, nil
		}
	}

	event, err := u.handle(ctx, body, log)
	if err != nil {
		if dedupKey != "" {
			if fErr := u.deduper.Forget(ctx, dedupKey); fErr != nil {
				log.Warn("[webhook][usecase] dedup release failed", zap.Error(fErr))
			}
		}
		log.Error("[webhook][usecase] process failed", zap.Error(err))
		return nil, err
	}
	if event == nil {
		log.Info("[webhook][usecase] notification ignored")
		return nil, nil
	}
	log.Info("[webhook][usecase] process success", zap.String("event_type", string(event.Type)))
	return event, nil
}

func (u *WebhookUseCase) handle(ctx context.Context, body entities.WebhookBody, log *zap.Logger) (*entities.Event, error) {
	event, err := u.resolve(ctx, body, log)
	if err != nil || event == nil {
		return nil, err
	}

	if u.onEvent != nil {
		if err := u.onEvent(ctx, *event); err != nil {
			return nil, fmt.Errorf("event handler: %w", err)
		}
	}
	if u.publisher != nil {
		if err := u.publisher.Publish(ctx, *event); err != nil {
			return nil, fmt.Errorf("publish event: %w", err)
		}
	}
	if u.journal != nil {
		if err := u.journal.Save(ctx, *event); err != nil {
			log.Warn("[webhook][usecase] journal save failed", zap.Error(err))
		}
	}
	return event, nil
}

func (u *WebhookUseCase) resolve(ctx context.Context, body entities.WebhookBody, log *zap.Logger) (*entities.Event, error) {
	id := body.Data.ID.String()

	switch body.Type {
	case entities.WebhookTypePayment:
		if u.gateway == nil {
			return nil, ErrGatewayNotConfigured
		}
		p, err := u.gateway.GetPayment(ctx, id)
		if isMissingResource(err) {
			log.Warn("[webhook][usecase] payment not found", zap.Error(err))
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("get payment %s: %w", id, err)
		}
		return NewPaymentEvent(p, body), nil

	case entities.WebhookTypePreApproval, entities.WebhookTopicPreApproval:
		if u.gateway == nil {
			return nil, ErrGatewayNotConfigured
		}
		p, err := u.gateway.GetPreApproval(ctx, id)
		if isMissingResource(err) {
			log.Warn("[webhook][usecase] subscription not found", zap.Error(err))
			return nil, nil
		}
		if err != nil {
			return nil, fmt.Errorf("get subscription %s: %w", id, err)
		}
		return NewSubscriptionEvent(p, body), nil
	}

	return nil, nil
}

func (u *WebhookUseCase) ListEvents(ctx context.Context, resourceID string) ([]entities.Event, error) {
	if u.journal == nil {
		return nil, ErrJournalDisabled
	}
	return u.journal.ListByResourceID(ctx, resourceID)
}

func isMissingResource(err error) bool {
	return errors.Is(err, interfaces.ErrResourceNotFound) || errors.Is(err, interfaces.ErrInvalidResourceID)
}
