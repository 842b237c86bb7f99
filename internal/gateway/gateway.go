package gateway

import "context"

type OrderState string

const (
	StateCreated   OrderState = "created"
	StateAttempted OrderState = "attempted"
	StatePaid      OrderState = "paid"
)

// GatewayOrder is the gateway-side order the client-side checkout widget
// opens against.
type GatewayOrder struct {
	ID       string
	Amount   int64 // minor currency units
	Currency string
}

type CreateOrderRequest struct {
	Amount    int64 // minor currency units
	Currency  string
	Receipt   string
	ProductID string
}

// PaymentGateway abstracts the upstream payment provider. One
// implementation exists; the interface is here so services and the
// reconciliation worker can be tested without the provider.
type PaymentGateway interface {
	CreateOrder(ctx context.Context, req CreateOrderRequest) (*GatewayOrder, error)
	FetchOrderState(ctx context.Context, gatewayOrderID string) (OrderState, error)
}
