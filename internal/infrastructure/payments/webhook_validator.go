package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"mpbridge/internal/usecase/interfaces"
)

// WebhookValidator checks the x-signature header Mercado Pago attaches to
// webhook deliveries.
//
// Header format: ts=<timestamp>,v1=<hex hmac>
// Signed manifest: id:<data.id>;request-id:<x-request-id>;ts:<timestamp>;
// Parts whose value is empty are left out of the manifest.
type WebhookValidator struct {
	secret []byte
}

var _ interfaces.IWebhookValidator = (*WebhookValidator)(nil)

func NewWebhookValidator(secret string) *WebhookValidator {
	return &WebhookValidator{secret: []byte(secret)}
}

func (v *WebhookValidator) Validate(signature, requestID, dataID string) bool {
	if len(v.secret) == 0 || signature == "" {
		return false
	}
	ts, hash := splitSignature(signature)
	if ts == "" || hash == "" {
		return false
	}
	expected := v.Sign(Manifest(dataID, requestID, ts))
	return hmac.Equal([]byte(strings.ToLower(hash)), []byte(expected))
}

// Sign returns the hex HMAC-SHA256 of manifest.
func (v *WebhookValidator) Sign(manifest string) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(manifest))
	return hex.EncodeToString(mac.Sum(nil))
}

func Manifest(dataID, requestID, ts string) string {
	var b strings.Builder
	if dataID != "" {
		b.WriteString("id:" + strings.ToLower(dataID) + ";")
	}
	if requestID != "" {
		b.WriteString("request-id:" + requestID + ";")
	}
	b.WriteString("ts:" + ts + ";")
	return b.String()
}

func splitSignature(header string) (ts, hash string) {
	for _, part := range strings.Split(header, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			continue
		}
		switch strings.TrimSpace(key) {
		case "ts":
			ts = strings.TrimSpace(value)
		case "v1":
			hash = strings.TrimSpace(value)
		}
	}
	return ts, hash
}
