package request

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/url"

	"mpbridge/internal/domain/entities"
)

var ErrEmptyWebhook = errors.New("webhook has neither body nor query parameters")

// ParseWebhook decodes a Mercado Pago notification.
//
// Webhooks carry everything in the JSON body; legacy IPN deliveries only send
// ?topic=<type>&id=<resource id>. Fields missing from the body are filled from
// the query string (type, topic, data.id, id).
func ParseWebhook(raw []byte, query url.Values) (entities.WebhookBody, error) {
	var body entities.WebhookBody

	raw = bytes.TrimSpace(raw)
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &body); err != nil {
			return entities.WebhookBody{}, err
		}
	}

	if body.Type == "" {
		body.Type = firstNonEmpty(query.Get("type"), query.Get("topic"))
	}
	if body.Data.ID == "" {
		body.Data.ID = entities.ResourceID(firstNonEmpty(query.Get("data.id"), query.Get("id")))
	}

	if body.Type == "" && body.Data.ID == "" {
		return entities.WebhookBody{}, ErrEmptyWebhook
	}
	return body, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
