package entities

import "encoding/json"

// EventType is the stable, provider-independent name of a webhook event.
//
// The set is closed: provider statuses that do not map to one of these are
// dropped during normalization.
type EventType string

const (
	EventPaymentCreated     EventType = "payment.created"
	EventPaymentApproved    EventType = "payment.approved"
	EventPaymentPending     EventType = "payment.pending"
	EventPaymentInProcess   EventType = "payment.in_process"
	EventPaymentRejected    EventType = "payment.rejected"
	EventPaymentCancelled   EventType = "payment.cancelled"
	EventPaymentRefunded    EventType = "payment.refunded"
	EventPaymentChargedBack EventType = "payment.charged_back"

	EventSubscriptionAuthorized EventType = "subscription.authorized"
	EventSubscriptionPending    EventType = "subscription.pending"
	EventSubscriptionPaused     EventType = "subscription.paused"
	EventSubscriptionCancelled  EventType = "subscription.cancelled"
)

// Event is what OnEvent receives after a webhook has been resolved against
// the provider API.
type Event struct {
	Type    EventType       `json:"type"`
	ID      string          `json:"id"`
	Data    EventData       `json:"data"`
	Raw     json.RawMessage `json:"raw,omitempty"`
	Webhook WebhookBody     `json:"webhook"`
}

// EventData is the normalized view of a payment or a subscription.
type EventData struct {
	ID                string         `json:"id"`
	Status            string         `json:"status"`
	ExternalReference string         `json:"externalReference,omitempty"`
	Metadata          map[string]any `json:"metadata,omitempty"`

	// payment
	TransactionAmount float64 `json:"transactionAmount,omitempty"`
	CurrencyID        string  `json:"currencyId,omitempty"`
	PayerEmail        string  `json:"payerEmail,omitempty"`
	PaymentMethodID   string  `json:"paymentMethodId,omitempty"`

	// subscription
	Reason        string         `json:"reason,omitempty"`
	AutoRecurring *AutoRecurring `json:"autoRecurring,omitempty"`
}

type AutoRecurring struct {
	Frequency         int     `json:"frequency"`
	FrequencyType     string  `json:"frequencyType"`
	TransactionAmount float64 `json:"transactionAmount"`
	CurrencyID        string  `json:"currencyId"`
}
