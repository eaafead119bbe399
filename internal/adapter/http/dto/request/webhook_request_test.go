package request

import (
	"errors"
	"net/url"
	"testing"
)

func TestParseWebhook(t *testing.T) {
	t.Run("json body with numeric ids", func(t *testing.T) {
		raw := []byte(`{"id":12345,"live_mode":true,"type":"payment","date_created":"2024-01-01T00:00:00Z","user_id":44,"api_version":"v1","action":"payment.created","data":{"id":"999"}}`)
		body, err := ParseWebhook(raw, url.Values{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if body.ID != "12345" || body.UserID != "44" || body.Data.ID != "999" || !body.LiveMode || body.Action != "payment.created" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("numeric data id", func(t *testing.T) {
		body, err := ParseWebhook([]byte(`{"type":"payment","data":{"id":999}}`), url.Values{})
		if err != nil || body.Data.ID != "999" {
			t.Fatalf("unexpected body: %+v err=%v", body, err)
		}
	})

	t.Run("ipn query fallback", func(t *testing.T) {
		body, err := ParseWebhook(nil, url.Values{"topic": {"payment"}, "id": {"321"}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if body.Type != "payment" || body.Data.ID != "321" {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("body wins over query", func(t *testing.T) {
		body, err := ParseWebhook([]byte(`{"type":"subscription_preapproval","data":{"id":"sub-1"}}`), url.Values{"type": {"payment"}, "data.id": {"1"}})
		if err != nil || body.Type != "subscription_preapproval" || body.Data.ID != "sub-1" {
			t.Fatalf("unexpected body: %+v err=%v", body, err)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		if _, err := ParseWebhook([]byte(`{`), url.Values{}); err == nil {
			t.Fatalf("expected json error")
		}
	})

	t.Run("empty", func(t *testing.T) {
		if _, err := ParseWebhook([]byte("  "), url.Values{}); !errors.Is(err, ErrEmptyWebhook) {
			t.Fatalf("expected ErrEmptyWebhook, got %v", err)
		}
	})
}
