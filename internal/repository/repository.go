package repository

import (
	"context"
	"errors"
	"time"

	"github.com/seuristic/image-ecommerce/internal/domain"
)

var (
	ErrOrderNotFound   = errors.New("order not found")
	ErrProductNotFound = errors.New("product not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrDuplicateEmail  = errors.New("email already registered")
)

// OrderRepository defines the order store operations. Consumers define
// this interface, not the MongoDB implementation.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (string, error)
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*domain.Order, error)
	// CompleteByGatewayOrderID atomically sets status=completed on the
	// order matching both the gateway order id and the expected amount.
	// A single document update, so concurrent redeliveries converge.
	CompleteByGatewayOrderID(ctx context.Context, gatewayOrderID string, amount int64) (*domain.Order, error)
	MarkFailed(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	FindPendingOlderThan(ctx context.Context, age time.Duration) ([]domain.Order, error)
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (string, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindAll(ctx context.Context) ([]domain.Product, error)
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (string, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
}
