package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/seuristic/image-ecommerce/internal/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoOrderRepository struct {
	collection *mongo.Collection
}

func NewMongoOrderRepository(db *mongo.Database) OrderRepository {
	return &mongoOrderRepository{
		collection: db.Collection("orders"),
	}
}

func (m *mongoOrderRepository) Create(ctx context.Context, order *domain.Order) (string, error) {
	now := time.Now()
	if order.ID == "" {
		order.ID = primitive.NewObjectID().Hex()
	}
	order.CreatedAt = now
	order.UpdatedAt = now

	_, err := m.collection.InsertOne(ctx, order)
	if err != nil {
		return "", fmt.Errorf("failed to create order: %w", err)
	}

	return order.ID, nil
}

func (m *mongoOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	var order domain.Order

	err := m.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return &order, nil
}

func (m *mongoOrderRepository) FindByGatewayOrderID(ctx context.Context, gatewayOrderID string) (*domain.Order, error) {
	var order domain.Order

	err := m.collection.FindOne(ctx, bson.M{"gateway_order_id": gatewayOrderID}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return &order, nil
}

// CompleteByGatewayOrderID transitions in one document update keyed on the
// gateway order id plus the amount the gateway confirmed. Matching on the
// amount enforces the purchase-terms invariant without a second round trip.
// The status predicate keeps completed matchable so redelivery stays
// idempotent, while a failed order is terminal and never revived.
func (m *mongoOrderRepository) CompleteByGatewayOrderID(ctx context.Context, gatewayOrderID string, amount int64) (*domain.Order, error) {
	filter := bson.M{
		"gateway_order_id": gatewayOrderID,
		"amount":           amount,
		"status":           bson.M{"$in": []domain.OrderStatus{domain.OrderPending, domain.OrderCompleted}},
	}
	update := bson.M{
		"$set": bson.M{
			"status":     domain.OrderCompleted,
			"updated_at": time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var order domain.Order
	err := m.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("failed to complete order: %w", err)
	}

	return &order, nil
}

func (m *mongoOrderRepository) MarkFailed(ctx context.Context, id string) error {
	filter := bson.M{"_id": id, "status": domain.OrderPending}
	update := bson.M{
		"$set": bson.M{
			"status":     domain.OrderFailed,
			"updated_at": time.Now(),
		},
	}

	result, err := m.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to mark order failed: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrOrderNotFound
	}

	return nil
}

func (m *mongoOrderRepository) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	filter := bson.M{"user_id": userID}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := m.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer cursor.Close(ctx)

	orders := []domain.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	return orders, nil
}

func (m *mongoOrderRepository) FindPendingOlderThan(ctx context.Context, age time.Duration) ([]domain.Order, error) {
	filter := bson.M{
		"status":     domain.OrderPending,
		"created_at": bson.M{"$lt": time.Now().Add(-age)},
	}

	cursor, err := m.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find pending orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []domain.Order
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("failed to decode pending orders: %w", err)
	}

	return orders, nil
}

func (m *mongoOrderRepository) CreateIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "gateway_order_id", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "created_at", Value: -1}},
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: 1}},
		},
	}

	_, err := m.collection.Indexes().CreateMany(ctx, indexes)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	return nil
}
