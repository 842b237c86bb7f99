package gateway

import (
	"context"
	"fmt"

	razorpay "github.com/razorpay/razorpay-go"
)

type razorpayGateway struct {
	client *razorpay.Client
}

func NewRazorpayGateway(keyID, keySecret string) PaymentGateway {
	return &razorpayGateway{
		client: razorpay.NewClient(keyID, keySecret),
	}
}

// The razorpay SDK does not take a context; the ctx parameter is kept so
// the interface matches every other outbound call in the codebase.
func (g *razorpayGateway) CreateOrder(_ context.Context, req CreateOrderRequest) (*GatewayOrder, error) {
	data := map[string]interface{}{
		"amount":   req.Amount,
		"currency": req.Currency,
		"receipt":  req.Receipt,
		"notes": map[string]interface{}{
			"productId": req.ProductID,
		},
	}

	body, err := g.client.Order.Create(data, nil)
	if err != nil {
		return nil, fmt.Errorf("razorpay order create failed: %w", err)
	}

	id, ok := body["id"].(string)
	if !ok {
		return nil, fmt.Errorf("razorpay order create: missing id in response")
	}

	return &GatewayOrder{
		ID:       id,
		Amount:   req.Amount,
		Currency: req.Currency,
	}, nil
}

func (g *razorpayGateway) FetchOrderState(_ context.Context, gatewayOrderID string) (OrderState, error) {
	body, err := g.client.Order.Fetch(gatewayOrderID, nil, nil)
	if err != nil {
		return "", fmt.Errorf("razorpay order fetch failed: %w", err)
	}

	status, ok := body["status"].(string)
	if !ok {
		return "", fmt.Errorf("razorpay order fetch: missing status in response")
	}

	return OrderState(status), nil
}
