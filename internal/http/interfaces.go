package http

import (
	"context"

	"github.com/seuristic/image-ecommerce/internal/domain"
	"github.com/seuristic/image-ecommerce/internal/service"
)

// Handler dependencies are consumer-defined interfaces; the concrete
// implementations live in internal/service.

type OrderService interface {
	CreateOrder(ctx context.Context, userID, productID string, variant domain.ImageVariant) (*service.CheckoutResult, error)
	ListUserOrders(ctx context.Context, userID string) ([]domain.OrderWithProduct, error)
	HandlePaymentCaptured(ctx context.Context, gatewayOrderID string, capturedAmount int64) error
}

type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
}

type UserService interface {
	Register(ctx context.Context, email, password string) (*domain.User, error)
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
}
