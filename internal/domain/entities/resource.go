package entities

import (
	"encoding/json"
	"time"
)

// Payment is the subset of a Mercado Pago payment the integration reads.
type Payment struct {
	ID                string
	Status            string
	StatusDetail      string
	ExternalReference string
	TransactionAmount float64
	CurrencyID        string
	PaymentMethodID   string
	PaymentTypeID     string
	PayerEmail        string
	Metadata          map[string]any
	DateCreated       time.Time
	DateApproved      time.Time

	Raw json.RawMessage
}

// PreApproval is the subset of a Mercado Pago subscription the integration reads.
type PreApproval struct {
	ID                string
	Status            string
	Reason            string
	ExternalReference string
	PayerEmail        string
	InitPoint         string
	AutoRecurring     AutoRecurring

	Raw json.RawMessage
}

// Preference is a created checkout preference.
type Preference struct {
	ID               string
	InitPoint        string
	SandboxInitPoint string

	Raw json.RawMessage
}

type PreferenceItem struct {
	ID          string
	Title       string
	Description string
	PictureURL  string
	CategoryID  string
	CurrencyID  string
	Quantity    int
	UnitPrice   float64
}

type BackURLs struct {
	Success string
	Failure string
	Pending string
}

// PreferenceDraft is what the checkout use case asks the gateway to create.
type PreferenceDraft struct {
	Items             []PreferenceItem
	PayerEmail        string
	BackURLs          BackURLs
	AutoReturn        string
	ExternalReference string
	NotificationURL   string
	Metadata          map[string]any
}

// PreApprovalDraft is what the subscription use case asks the gateway to create.
type PreApprovalDraft struct {
	Reason            string
	PayerEmail        string
	BackURL           string
	ExternalReference string
	Status            string
	AutoRecurring     AutoRecurring
}
