package usecase

import "mpbridge/internal/domain/entities"

var paymentEvents = map[string]entities.EventType{
	"approved":     entities.EventPaymentApproved,
	"pending":      entities.EventPaymentPending,
	"in_process":   entities.EventPaymentInProcess,
	"rejected":     entities.EventPaymentRejected,
	"cancelled":    entities.EventPaymentCancelled,
	"refunded":     entities.EventPaymentRefunded,
	"charged_back": entities.EventPaymentChargedBack,
}

var subscriptionEvents = map[string]entities.EventType{
	"authorized": entities.EventSubscriptionAuthorized,
	"pending":    entities.EventSubscriptionPending,
	"paused":     entities.EventSubscriptionPaused,
	"cancelled":  entities.EventSubscriptionCancelled,
}

// PaymentEventType maps a payment status to its event type. Unknown statuses
// become payment.created for payments that exist and are dropped otherwise.
func PaymentEventType(p entities.Payment) (entities.EventType, bool) {
	if t, ok := paymentEvents[p.Status]; ok {
		return t, true
	}
	if p.ID != "" {
		return entities.EventPaymentCreated, true
	}
	return "", false
}

// SubscriptionEventType maps a preapproval status to its event type.
func SubscriptionEventType(p entities.PreApproval) (entities.EventType, bool) {
	t, ok := subscriptionEvents[p.Status]
	return t, ok
}

// NewPaymentEvent returns nil when the payment status does not map to an event.
func NewPaymentEvent(p entities.Payment, body entities.WebhookBody) *entities.Event {
	t, ok := PaymentEventType(p)
	if !ok {
		return nil
	}
	return &entities.Event{
		Type: t,
		ID:   body.Data.ID.String(),
		Data: entities.EventData{
			ID:                p.ID,
			Status:            statusOrUnknown(p.Status),
			ExternalReference: p.ExternalReference,
			Metadata:          p.Metadata,
			TransactionAmount: p.TransactionAmount,
			CurrencyID:        p.CurrencyID,
			PayerEmail:        p.PayerEmail,
			PaymentMethodID:   p.PaymentMethodID,
		},
		Raw:     p.Raw,
		Webhook: body,
	}
}

// NewSubscriptionEvent returns nil when the preapproval status does not map to an event.
func NewSubscriptionEvent(p entities.PreApproval, body entities.WebhookBody) *entities.Event {
	t, ok := SubscriptionEventType(p)
	if !ok {
		return nil
	}
	data := entities.EventData{
		ID:                p.ID,
		Status:            statusOrUnknown(p.Status),
		ExternalReference: p.ExternalReference,
		Reason:            p.Reason,
	}
	if p.AutoRecurring != (entities.AutoRecurring{}) {
		recurring := p.AutoRecurring
		data.AutoRecurring = &recurring
	}
	return &entities.Event{
		Type:    t,
		ID:      body.Data.ID.String(),
		Data:    data,
		Raw:     p.Raw,
		Webhook: body,
	}
}

func statusOrUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
