package domain

import "time"

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderFailed    OrderStatus = "failed"
)

// Order is one purchase attempt. Status leaves pending exactly once,
// driven by a verified gateway callback (or the reconciliation sweep);
// completed and failed are terminal.
type Order struct {
	ID             string       `bson:"_id,omitempty" json:"id"`
	UserID         string       `bson:"user_id" json:"userId"`
	ProductID      string       `bson:"product_id" json:"productId"`
	Variant        ImageVariant `bson:"variant" json:"variant"`
	GatewayOrderID string       `bson:"gateway_order_id" json:"gatewayOrderId"`
	Amount         int64        `bson:"amount" json:"amount"` // minor currency units
	Status         OrderStatus  `bson:"status" json:"status"`
	CreatedAt      time.Time    `bson:"created_at" json:"createdAt"`
	UpdatedAt      time.Time    `bson:"updated_at" json:"updatedAt"`
}

// OrderWithProduct is the order history read model: the order plus the
// minimal product fields the client renders.
type OrderWithProduct struct {
	Order           `bson:",inline"`
	ProductName     string `json:"productName"`
	ProductImageURL string `json:"productImageUrl"`
}
