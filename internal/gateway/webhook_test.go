package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "whsec_test_123"

func TestVerifyWebhookSignature_Valid(t *testing.T) {
	body := []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"order_id":"order_abc","amount":999}}}}`)

	sig := SignWebhookBody(body, testSecret)

	assert.True(t, VerifyWebhookSignature(body, sig, testSecret))
}

func TestVerifyWebhookSignature_TamperedBody(t *testing.T) {
	body := []byte(`{"event":"payment.captured","payload":{"payment":{"entity":{"order_id":"order_abc","amount":999}}}}`)
	sig := SignWebhookBody(body, testSecret)

	// Every single-byte mutation must break verification.
	for i := range body {
		mutated := make([]byte, len(body))
		copy(mutated, body)
		mutated[i] ^= 0x01

		assert.False(t, VerifyWebhookSignature(mutated, sig, testSecret),
			"mutation at byte %d accepted", i)
	}
}

func TestVerifyWebhookSignature_WrongSecret(t *testing.T) {
	body := []byte(`{"event":"payment.captured"}`)
	sig := SignWebhookBody(body, testSecret)

	assert.False(t, VerifyWebhookSignature(body, sig, "other_secret"))
}

func TestVerifyWebhookSignature_EmptySignature(t *testing.T) {
	body := []byte(`{"event":"payment.captured"}`)

	assert.False(t, VerifyWebhookSignature(body, "", testSecret))
}

func TestParseWebhookEvent(t *testing.T) {
	body := []byte(`{
		"event": "payment.captured",
		"payload": {
			"payment": {
				"entity": {
					"id": "pay_xyz",
					"order_id": "order_abc",
					"amount": 999
				}
			}
		}
	}`)

	event, err := ParseWebhookEvent(body)
	require.NoError(t, err)
	assert.Equal(t, EventPaymentCaptured, event.Event)
	assert.Equal(t, "order_abc", event.Payload.Payment.Entity.OrderID)
	assert.Equal(t, int64(999), event.Payload.Payment.Entity.Amount)
}

func TestParseWebhookEvent_Malformed(t *testing.T) {
	_, err := ParseWebhookEvent([]byte(`not json`))
	require.Error(t, err)
}
