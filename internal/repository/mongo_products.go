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
)

type mongoProductRepository struct {
	collection *mongo.Collection
}

func NewMongoProductRepository(db *mongo.Database) ProductRepository {
	return &mongoProductRepository{
		collection: db.Collection("products"),
	}
}

func (m *mongoProductRepository) Create(ctx context.Context, product *domain.Product) (string, error) {
	if product.ID == "" {
		product.ID = primitive.NewObjectID().Hex()
	}
	product.CreatedAt = time.Now()

	_, err := m.collection.InsertOne(ctx, product)
	if err != nil {
		return "", fmt.Errorf("failed to create product: %w", err)
	}

	return product.ID, nil
}

func (m *mongoProductRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	var product domain.Product

	err := m.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return &product, nil
}

func (m *mongoProductRepository) FindAll(ctx context.Context) ([]domain.Product, error) {
	cursor, err := m.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer cursor.Close(ctx)

	products := []domain.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %w", err)
	}

	return products, nil
}
