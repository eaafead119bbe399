package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Webhook topics sent by Mercado Pago.
const (
	WebhookTypePayment      = "payment"
	WebhookTypePreApproval  = "subscription_preapproval"
	WebhookTopicPreApproval = "preapproval"
)

// ResourceID holds an identifier Mercado Pago sends either as a JSON string or
// as a JSON number.
type ResourceID string

func (r *ResourceID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*r = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*r = ResourceID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("resource id: %w", err)
	}
	*r = ResourceID(n.String())
	return nil
}

func (r ResourceID) String() string { return string(r) }

// WebhookData is the "data" object of a notification.
type WebhookData struct {
	ID ResourceID `json:"id"`
}

// WebhookBody is the notification payload posted by Mercado Pago.
type WebhookBody struct {
	ID          ResourceID  `json:"id"`
	LiveMode    bool        `json:"live_mode"`
	Type        string      `json:"type"`
	DateCreated string      `json:"date_created,omitempty"`
	UserID      ResourceID  `json:"user_id,omitempty"`
	APIVersion  string      `json:"api_version,omitempty"`
	Action      string      `json:"action,omitempty"`
	Data        WebhookData `json:"data"`
}

// WebhookNotification is a received webhook together with the headers used
// for signature verification.
//
// SignedDataID is the data.id query parameter, which Mercado Pago signs. When
// empty the body's data.id is used.
type WebhookNotification struct {
	Body         WebhookBody
	Signature    string
	RequestID    string
	SignedDataID string
}

func (n WebhookNotification) SignatureDataID() string {
	if n.SignedDataID != "" {
		return n.SignedDataID
	}
	return n.Body.Data.ID.String()
}
