package cache

import (
	"context"
	"errors"

	"github.com/seuristic/image-ecommerce/internal/domain"
)

var ErrCacheMiss = errors.New("cache miss")

// ProductCache fronts the catalog read path. Misses fall through to the
// repository; writes are best-effort.
type ProductCache interface {
	GetList(ctx context.Context) ([]domain.Product, error)
	SetList(ctx context.Context, products []domain.Product) error
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	SetProduct(ctx context.Context, product *domain.Product) error
	Invalidate(ctx context.Context) error
}
