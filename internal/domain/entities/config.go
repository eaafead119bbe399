package entities

import "context"

// DefaultCurrencyID is applied to items and plans that do not name a currency.
const DefaultCurrencyID = "ARS"

// FrequencyType is the billing period unit of a subscription plan.
type FrequencyType string

const (
	FrequencyDays   FrequencyType = "days"
	FrequencyMonths FrequencyType = "months"
)

// Valid reports whether the frequency type is one Mercado Pago accepts.
func (f FrequencyType) Valid() bool {
	return f == FrequencyDays || f == FrequencyMonths
}

// EventHandler receives every normalized webhook event.
type EventHandler func(ctx context.Context, event Event) error

// Config is the integration configuration shared by the route handler and
// the direct API.
//
// Redirect defaults:
//   - SuccessURL: BaseURL + "/payment/success"
//   - FailureURL: BaseURL + "/payment/failure"
//   - PendingURL: BaseURL + "/payment/pending"
type Config struct {
	AccessToken   string
	PublicKey     string
	WebhookSecret string

	BaseURL         string
	SuccessURL      string
	FailureURL      string
	PendingURL      string
	NotificationURL string

	Products map[string]ProductConfig
	Plans    map[string]PlanConfig

	OnEvent EventHandler
}

// ProductConfig is a pre-configured checkout product addressed by productId.
type ProductConfig struct {
	Title       string  `json:"title"`
	UnitPrice   float64 `json:"unitPrice"`
	CurrencyID  string  `json:"currencyId,omitempty"`
	Description string  `json:"description,omitempty"`
	PictureURL  string  `json:"pictureUrl,omitempty"`
	CategoryID  string  `json:"categoryId,omitempty"`
}

// PlanConfig is a pre-configured subscription plan addressed by planId.
type PlanConfig struct {
	Reason            string        `json:"reason"`
	TransactionAmount float64       `json:"transactionAmount"`
	CurrencyID        string        `json:"currencyId,omitempty"`
	Frequency         int           `json:"frequency"`
	FrequencyType     FrequencyType `json:"frequencyType"`
}
