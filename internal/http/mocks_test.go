package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/seuristic/image-ecommerce/internal/auth"
	"github.com/seuristic/image-ecommerce/internal/domain"
	"github.com/seuristic/image-ecommerce/internal/service"
)

var errAny = errors.New("boom")

// --- Mocks ---

type orderServiceMock struct {
	result       *service.CheckoutResult
	orders       []domain.OrderWithProduct
	err          error
	capturedIDs  []string
	capturedAmts []int64
}

func (m *orderServiceMock) CreateOrder(_ context.Context, userID, productID string, variant domain.ImageVariant) (*service.CheckoutResult, error) {
	if m.err != nil {
		return nil, m.err
	}
	if productID == "" || !variant.Valid() {
		return nil, service.ErrInvalidVariant
	}
	return m.result, nil
}

func (m *orderServiceMock) ListUserOrders(context.Context, string) ([]domain.OrderWithProduct, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.orders, nil
}

func (m *orderServiceMock) HandlePaymentCaptured(_ context.Context, gatewayOrderID string, amount int64) error {
	m.capturedIDs = append(m.capturedIDs, gatewayOrderID)
	m.capturedAmts = append(m.capturedAmts, amount)
	return m.err
}

type productServiceMock struct {
	products []domain.Product
	product  *domain.Product
	err      error
}

func (m *productServiceMock) List(context.Context) ([]domain.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.products, nil
}

func (m *productServiceMock) Get(context.Context, string) (*domain.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.product == nil {
		return nil, service.ErrProductNotFound
	}
	return m.product, nil
}

func (m *productServiceMock) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	product.ID = "product-1"
	return product, nil
}

type userServiceMock struct {
	user *domain.User
	err  error
}

func (m *userServiceMock) Register(context.Context, string, string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

func (m *userServiceMock) Authenticate(context.Context, string, string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

// --- helpers ---

func withUser(r *http.Request) *http.Request {
	identity := &auth.Identity{UserID: "user-1", Email: "a@b.com", Role: domain.RoleUser}
	return r.WithContext(WithIdentity(r.Context(), identity))
}

func withAdmin(r *http.Request) *http.Request {
	identity := &auth.Identity{UserID: "admin-1", Email: "admin@b.com", Role: domain.RoleAdmin}
	return r.WithContext(WithIdentity(r.Context(), identity))
}
