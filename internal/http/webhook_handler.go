package http

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/seuristic/image-ecommerce/internal/gateway"
	"github.com/seuristic/image-ecommerce/internal/service"
)

// SignatureHeader carries the gateway's HMAC digest of the raw body.
const SignatureHeader = "X-Razorpay-Signature"

const maxWebhookBody = 1 << 20 // 1MB

type WebhookHandler struct {
	orders OrderService
	secret string
}

func NewWebhookHandler(orders OrderService, webhookSecret string) *WebhookHandler {
	return &WebhookHandler{orders: orders, secret: webhookSecret}
}

// POST /api/webhook/razorpay
//
// The endpoint is open to the internet; the signature check is the only
// authenticity gate and always runs first against the exact raw body.
func (h *WebhookHandler) HandleRazorpay(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxWebhookBody))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Something went wrong")
		return
	}

	signature := r.Header.Get(SignatureHeader)
	if !gateway.VerifyWebhookSignature(body, signature, h.secret) {
		respondError(w, http.StatusBadRequest, "Invalid signature")
		return
	}

	event, err := gateway.ParseWebhookEvent(body)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Malformed event")
		return
	}

	if event.Event == gateway.EventPaymentCaptured {
		entity := event.Payload.Payment.Entity
		err := h.orders.HandlePaymentCaptured(r.Context(), entity.OrderID, entity.Amount)
		switch {
		case err == nil:
		case errors.Is(err, service.ErrOrderNotFound):
			// Not a failure towards the gateway; a retry cannot fix it.
			log.Printf("webhook: no order for gateway id %s", entity.OrderID)
		case errors.Is(err, service.ErrAmountMismatch):
			log.Printf("webhook: amount mismatch for gateway id %s (captured %d)", entity.OrderID, entity.Amount)
		case errors.Is(err, service.ErrOrderFailed):
			log.Printf("webhook: late capture for already failed order, gateway id %s", entity.OrderID)
		default:
			log.Printf("webhook: transition failed: %v", err)
			respondError(w, http.StatusInternalServerError, "Something went wrong")
			return
		}
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": "success"})
}
