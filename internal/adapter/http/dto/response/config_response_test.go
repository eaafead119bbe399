package response

import (
	"encoding/json"
	"testing"
)

func TestFromPublicKey(t *testing.T) {
	b, _ := json.Marshal(FromPublicKey(""))
	if string(b) != `{"publicKey":null}` {
		t.Fatalf("unexpected json: %s", b)
	}

	b, _ = json.Marshal(FromPublicKey("APP_USR-123"))
	if string(b) != `{"publicKey":"APP_USR-123"}` {
		t.Fatalf("unexpected json: %s", b)
	}
}
