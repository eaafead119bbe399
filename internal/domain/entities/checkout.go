package entities

// CheckoutRequest asks for a one-time payment preference.
//
// Either ProductID (resolved against Config.Products) or Items must be set.
// When both are present Items wins.
type CheckoutRequest struct {
	ProductID string         `json:"productId,omitempty"`
	Items     []CheckoutItem `json:"items,omitempty"`
	Quantity  int            `json:"quantity,omitempty"`

	Metadata          map[string]any `json:"metadata,omitempty"`
	PayerEmail        string         `json:"payerEmail,omitempty"`
	ExternalReference string         `json:"externalReference,omitempty"`

	SuccessURL string `json:"successUrl,omitempty"`
	FailureURL string `json:"failureUrl,omitempty"`
	PendingURL string `json:"pendingUrl,omitempty"`
}

type CheckoutItem struct {
	ID          string  `json:"id,omitempty"`
	Title       string  `json:"title"`
	UnitPrice   float64 `json:"unitPrice"`
	Quantity    int     `json:"quantity"`
	CurrencyID  string  `json:"currencyId,omitempty"`
	Description string  `json:"description,omitempty"`
	PictureURL  string  `json:"pictureUrl,omitempty"`
	CategoryID  string  `json:"categoryId,omitempty"`
}

// CheckoutResponse carries the redirect URLs of a created preference.
type CheckoutResponse struct {
	URL          string `json:"url"`
	PreferenceID string `json:"preferenceId"`
	SandboxURL   string `json:"sandboxUrl"`
}
