package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/seuristic/image-ecommerce/internal/cache"
	"github.com/seuristic/image-ecommerce/internal/domain"
	"github.com/seuristic/image-ecommerce/internal/gateway"
	"github.com/seuristic/image-ecommerce/internal/repository"
)

type mockOrderRepo struct {
	m      sync.Mutex
	orders map[string]*domain.Order // keyed by local id
	nextID int
	err    error
}

func newMockOrderRepo() *mockOrderRepo {
	return &mockOrderRepo{orders: make(map[string]*domain.Order)}
}

func (m *mockOrderRepo) Create(_ context.Context, order *domain.Order) (string, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return "", m.err
	}
	m.nextID++
	order.ID = fmt.Sprintf("order-%d", m.nextID)
	order.CreatedAt = time.Now()
	copied := *order
	m.orders[order.ID] = &copied
	return order.ID, nil
}

func (m *mockOrderRepo) FindByID(_ context.Context, id string) (*domain.Order, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if order, ok := m.orders[id]; ok {
		copied := *order
		return &copied, nil
	}
	return nil, repository.ErrOrderNotFound
}

func (m *mockOrderRepo) FindByGatewayOrderID(_ context.Context, gatewayOrderID string) (*domain.Order, error) {
	m.m.Lock()
	defer m.m.Unlock()
	for _, order := range m.orders {
		if order.GatewayOrderID == gatewayOrderID {
			copied := *order
			return &copied, nil
		}
	}
	return nil, repository.ErrOrderNotFound
}

func (m *mockOrderRepo) CompleteByGatewayOrderID(_ context.Context, gatewayOrderID string, amount int64) (*domain.Order, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, order := range m.orders {
		if order.GatewayOrderID == gatewayOrderID && order.Amount == amount && order.Status != domain.OrderFailed {
			order.Status = domain.OrderCompleted
			order.UpdatedAt = time.Now()
			copied := *order
			return &copied, nil
		}
	}
	return nil, repository.ErrOrderNotFound
}

func (m *mockOrderRepo) MarkFailed(_ context.Context, id string) error {
	m.m.Lock()
	defer m.m.Unlock()
	if order, ok := m.orders[id]; ok && order.Status == domain.OrderPending {
		order.Status = domain.OrderFailed
		return nil
	}
	return repository.ErrOrderNotFound
}

func (m *mockOrderRepo) ListByUser(_ context.Context, userID string) ([]domain.Order, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	result := []domain.Order{}
	for _, order := range m.orders {
		if order.UserID == userID {
			result = append(result, *order)
		}
	}
	return result, nil
}

func (m *mockOrderRepo) FindPendingOlderThan(_ context.Context, age time.Duration) ([]domain.Order, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	cutoff := time.Now().Add(-age)
	var result []domain.Order
	for _, order := range m.orders {
		if order.Status == domain.OrderPending && order.CreatedAt.Before(cutoff) {
			result = append(result, *order)
		}
	}
	return result, nil
}

func (m *mockOrderRepo) get(id string) *domain.Order {
	m.m.Lock()
	defer m.m.Unlock()
	if order, ok := m.orders[id]; ok {
		copied := *order
		return &copied
	}
	return nil
}

type mockProductRepo struct {
	m        sync.Mutex
	products map[string]*domain.Product
	err      error
}

func newMockProductRepo() *mockProductRepo {
	return &mockProductRepo{products: make(map[string]*domain.Product)}
}

func (m *mockProductRepo) Create(_ context.Context, product *domain.Product) (string, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return "", m.err
	}
	if product.ID == "" {
		product.ID = "product-1"
	}
	copied := *product
	m.products[product.ID] = &copied
	return product.ID, nil
}

func (m *mockProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if product, ok := m.products[id]; ok {
		copied := *product
		return &copied, nil
	}
	return nil, repository.ErrProductNotFound
}

func (m *mockProductRepo) FindAll(_ context.Context) ([]domain.Product, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	result := []domain.Product{}
	for _, product := range m.products {
		result = append(result, *product)
	}
	return result, nil
}

type mockUserRepo struct {
	m     sync.Mutex
	users map[string]*domain.User // keyed by id
	err   error
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*domain.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *domain.User) (string, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return "", m.err
	}
	if user.ID == "" {
		user.ID = "user-1"
	}
	for _, existing := range m.users {
		if existing.Email == user.Email {
			return "", repository.ErrDuplicateEmail
		}
	}
	copied := *user
	m.users[user.ID] = &copied
	return user.ID, nil
}

func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	for _, user := range m.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

func (m *mockUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if user, ok := m.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, repository.ErrUserNotFound
}

type mockGateway struct {
	m       sync.Mutex
	created []gateway.CreateOrderRequest
	nextID  string
	states  map[string]gateway.OrderState
	err     error
}

func newMockGateway() *mockGateway {
	return &mockGateway{nextID: "order_gw_1", states: make(map[string]gateway.OrderState)}
}

func (m *mockGateway) CreateOrder(_ context.Context, req gateway.CreateOrderRequest) (*gateway.GatewayOrder, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	m.created = append(m.created, req)
	return &gateway.GatewayOrder{ID: m.nextID, Amount: req.Amount, Currency: req.Currency}, nil
}

func (m *mockGateway) FetchOrderState(_ context.Context, gatewayOrderID string) (gateway.OrderState, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return "", m.err
	}
	if state, ok := m.states[gatewayOrderID]; ok {
		return state, nil
	}
	return gateway.StateCreated, nil
}

type mockMailer struct {
	m    sync.Mutex
	sent []string // "to|productName"
	err  error
}

func (m *mockMailer) SendOrderCompleted(to, productName string) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.sent = append(m.sent, to+"|"+productName)
	return m.err
}

func (m *mockMailer) sentCount() int {
	m.m.Lock()
	defer m.m.Unlock()
	return len(m.sent)
}

type mockProductCache struct {
	m       sync.Mutex
	list    []domain.Product
	byID    map[string]*domain.Product
	hasList bool
	err     error
}

func newMockProductCache() *mockProductCache {
	return &mockProductCache{byID: make(map[string]*domain.Product)}
}

func (m *mockProductCache) GetList(context.Context) ([]domain.Product, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if !m.hasList {
		return nil, cache.ErrCacheMiss
	}
	return m.list, nil
}

func (m *mockProductCache) SetList(_ context.Context, products []domain.Product) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.list = products
	m.hasList = true
	return m.err
}

func (m *mockProductCache) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	m.m.Lock()
	defer m.m.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if product, ok := m.byID[id]; ok {
		return product, nil
	}
	return nil, cache.ErrCacheMiss
}

func (m *mockProductCache) SetProduct(_ context.Context, product *domain.Product) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.byID[product.ID] = product
	return m.err
}

func (m *mockProductCache) Invalidate(context.Context) error {
	m.m.Lock()
	defer m.m.Unlock()
	m.list = nil
	m.hasList = false
	return m.err
}

func (m *mockProductCache) listCached() bool {
	m.m.Lock()
	defer m.m.Unlock()
	return m.hasList
}
