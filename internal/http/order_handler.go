package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/seuristic/image-ecommerce/internal/domain"
	"github.com/seuristic/image-ecommerce/internal/service"
)

type OrderHandler struct {
	orders OrderService
}

func NewOrderHandler(orders OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

type checkoutRequestDTO struct {
	ProductID string              `json:"productId"`
	Variant   domain.ImageVariant `json:"variant"`
}

type checkoutResponseDTO struct {
	OrderID   string `json:"orderId"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	DBOrderID string `json:"dbOrderId"`
}

// POST /api/orders
func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())
	if identity == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req checkoutRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := h.orders.CreateOrder(r.Context(), identity.UserID, req.ProductID, req.Variant)
	if err != nil {
		if errors.Is(err, service.ErrInvalidVariant) {
			respondError(w, http.StatusBadRequest, "productId and variant are required")
			return
		}
		log.Printf("checkout failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	respondJSON(w, http.StatusCreated, checkoutResponseDTO{
		OrderID:   result.GatewayOrderID,
		Amount:    result.Amount,
		Currency:  result.Currency,
		DBOrderID: result.DBOrderID,
	})
}

// GET /api/orders/user
func (h *OrderHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	identity := IdentityFromContext(r.Context())
	if identity == nil {
		respondError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	orders, err := h.orders.ListUserOrders(r.Context(), identity.UserID)
	if err != nil {
		log.Printf("order history failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	if orders == nil {
		orders = []domain.OrderWithProduct{}
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"orders": orders})
}
