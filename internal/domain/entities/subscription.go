package entities

// SubscribeRequest asks for a recurring payment agreement (preapproval).
//
// Either PlanID (resolved against Config.Plans) or the custom plan fields
// Reason, TransactionAmount, Frequency and FrequencyType must be set.
// Metadata is accepted for parity with checkout; preapprovals have no
// metadata field, so it is only logged.
type SubscribeRequest struct {
	PlanID string `json:"planId,omitempty"`

	Reason            string        `json:"reason,omitempty"`
	TransactionAmount float64       `json:"transactionAmount,omitempty"`
	Frequency         int           `json:"frequency,omitempty"`
	FrequencyType     FrequencyType `json:"frequencyType,omitempty"`
	CurrencyID        string        `json:"currencyId,omitempty"`

	PayerEmail        string         `json:"payerEmail"`
	Metadata          map[string]any `json:"metadata,omitempty"`
	ExternalReference string         `json:"externalReference,omitempty"`
	BackURL           string         `json:"backUrl,omitempty"`
}

type SubscribeResponse struct {
	URL            string `json:"url"`
	SubscriptionID string `json:"subscriptionId"`
}
