package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectMongoDB opens the process-wide client. Called once at startup;
// the returned handle is shared by every repository.
func ConnectMongoDB(ctx context.Context, uri, database string) (*mongo.Database, error) {
	clientOpts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(100).
		SetMinPoolSize(5)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Ping to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client.Database(database), nil
}

// EnsureIndexes builds the indexes every collection relies on. Safe to call
// on every startup; Mongo treats an existing identical index as a no-op.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	orders := &mongoOrderRepository{collection: db.Collection("orders")}
	if err := orders.CreateIndexes(ctx); err != nil {
		return fmt.Errorf("order indexes: %w", err)
	}
	users := &mongoUserRepository{collection: db.Collection("users")}
	if err := users.CreateIndexes(ctx); err != nil {
		return fmt.Errorf("user indexes: %w", err)
	}
	return nil
}
