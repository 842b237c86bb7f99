package gateway

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// EventPaymentCaptured is the only webhook event that drives a state
// transition; everything else is acknowledged and ignored.
const EventPaymentCaptured = "payment.captured"

// WebhookEvent mirrors the gateway's callback payload shape.
type WebhookEvent struct {
	Event   string `json:"event"`
	Payload struct {
		Payment struct {
			Entity struct {
				ID      string `json:"id"`
				OrderID string `json:"order_id"`
				Amount  int64  `json:"amount"`
			} `json:"entity"`
		} `json:"payment"`
	} `json:"payload"`
}

// SignWebhookBody computes the hex HMAC-SHA256 digest the gateway sends
// in its signature header.
func SignWebhookBody(body []byte, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyWebhookSignature checks the signature header against the exact
// raw body. This is the sole authenticity gate on the webhook endpoint,
// so the comparison is constant-time.
func VerifyWebhookSignature(body []byte, signature, secret string) bool {
	expected := SignWebhookBody(body, secret)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// ParseWebhookEvent decodes a verified body. Callers must only pass
// bodies that passed VerifyWebhookSignature.
func ParseWebhookEvent(body []byte) (*WebhookEvent, error) {
	var event WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return nil, fmt.Errorf("malformed webhook event: %w", err)
	}
	return &event, nil
}
