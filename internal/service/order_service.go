package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/seuristic/image-ecommerce/internal/domain"
	"github.com/seuristic/image-ecommerce/internal/gateway"
	"github.com/seuristic/image-ecommerce/internal/notify"
	"github.com/seuristic/image-ecommerce/internal/repository"
)

const orderCurrency = "INR"

// CheckoutResult is what the client needs to open the gateway's
// checkout widget.
type CheckoutResult struct {
	GatewayOrderID string
	Amount         int64
	Currency       string
	DBOrderID      string
}

type OrderService struct {
	orders   repository.OrderRepository
	products repository.ProductRepository
	users    repository.UserRepository
	gateway  gateway.PaymentGateway
	mailer   notify.Mailer
}

func NewOrderService(
	orders repository.OrderRepository,
	products repository.ProductRepository,
	users repository.UserRepository,
	gw gateway.PaymentGateway,
	mailer notify.Mailer,
) *OrderService {
	return &OrderService{
		orders:   orders,
		products: products,
		users:    users,
		gateway:  gw,
		mailer:   mailer,
	}
}

// CreateOrder opens a gateway-side order for the variant price in minor
// units, then persists a local pending order carrying the gateway id. If
// the local write fails after the gateway call succeeded, the gateway
// order is left orphaned; the reconciliation sweep picks it up.
func (s *OrderService) CreateOrder(ctx context.Context, userID, productID string, variant domain.ImageVariant) (*CheckoutResult, error) {
	if productID == "" || !variant.Valid() {
		return nil, ErrInvalidVariant
	}

	amount := int64(math.Round(variant.Price * 100))

	gwOrder, err := s.gateway.CreateOrder(ctx, gateway.CreateOrderRequest{
		Amount:    amount,
		Currency:  orderCurrency,
		Receipt:   fmt.Sprintf("receipt-%d", time.Now().UnixMilli()),
		ProductID: productID,
	})
	if err != nil {
		return nil, fmt.Errorf("gateway order create failed: %w", err)
	}

	order := &domain.Order{
		UserID:         userID,
		ProductID:      productID,
		Variant:        variant,
		GatewayOrderID: gwOrder.ID,
		Amount:         amount,
		Status:         domain.OrderPending,
	}

	dbOrderID, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("order persist failed: %w", err)
	}

	return &CheckoutResult{
		GatewayOrderID: gwOrder.ID,
		Amount:         gwOrder.Amount,
		Currency:       gwOrder.Currency,
		DBOrderID:      dbOrderID,
	}, nil
}

// HandlePaymentCaptured applies the pending -> completed transition for
// the order matching the gateway order id, then best-effort notifies the
// owner. Re-delivery of the same event re-applies the same terminal
// value, which is why callers treat this as idempotent.
func (s *OrderService) HandlePaymentCaptured(ctx context.Context, gatewayOrderID string, capturedAmount int64) error {
	order, err := s.orders.CompleteByGatewayOrderID(ctx, gatewayOrderID, capturedAmount)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			// No such order, wrong amount, or a terminal failed order; tell
			// them apart so each case is visible in logs.
			order, lookupErr := s.orders.FindByGatewayOrderID(ctx, gatewayOrderID)
			if lookupErr != nil {
				return ErrOrderNotFound
			}
			if order.Amount != capturedAmount {
				return ErrAmountMismatch
			}
			return ErrOrderFailed
		}
		return fmt.Errorf("order transition failed: %w", err)
	}

	s.notifyOwner(ctx, order)
	return nil
}

func (s *OrderService) notifyOwner(ctx context.Context, order *domain.Order) {
	user, err := s.users.FindByID(ctx, order.UserID)
	if err != nil {
		log.Printf("order %s completed but owner lookup failed: %v", order.ID, err)
		return
	}

	productName := order.ProductID
	if product, err := s.products.FindByID(ctx, order.ProductID); err == nil {
		productName = product.Name
	}

	if err := s.mailer.SendOrderCompleted(user.Email, productName); err != nil {
		log.Printf("order %s completed but notification failed: %v", order.ID, err)
	}
}

// ListUserOrders returns the caller's orders newest-first, each joined
// with the product display fields the history page renders.
func (s *OrderService) ListUserOrders(ctx context.Context, userID string) ([]domain.OrderWithProduct, error) {
	orders, err := s.orders.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("order list failed: %w", err)
	}

	productByID := make(map[string]*domain.Product)
	result := make([]domain.OrderWithProduct, 0, len(orders))
	for _, order := range orders {
		entry := domain.OrderWithProduct{Order: order}

		product, ok := productByID[order.ProductID]
		if !ok {
			product, err = s.products.FindByID(ctx, order.ProductID)
			if err != nil {
				if !errors.Is(err, repository.ErrProductNotFound) {
					return nil, fmt.Errorf("product join failed: %w", err)
				}
				product = nil
			}
			productByID[order.ProductID] = product
		}
		if product != nil {
			entry.ProductName = product.Name
			entry.ProductImageURL = product.ImageURL
		}

		result = append(result, entry)
	}

	return result, nil
}
