// Package mongodb owns the document-store connection used by the storefront
// stores (users, orders, reviews).
package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vivekmishra161/AKC-autoparts-1/config"
)

var (
	Client *mongo.Client
	DB     *mongo.Database
)

// Connect dials MongoDB and verifies the connection with a ping.
func Connect() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	clientOpts := options.Client().ApplyURI(config.MongoURI()).
		SetConnectTimeout(5 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(25)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return fmt.Errorf("mongodb: connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return fmt.Errorf("mongodb: ping: %w", err)
	}

	Client = client
	DB = client.Database(config.MongoDatabase())
	return nil
}

// Ping reports whether MongoDB is reachable.
func Ping(ctx context.Context) error {
	if Client == nil {
		return fmt.Errorf("mongodb: not connected")
	}
	return Client.Ping(ctx, nil)
}

// Collection returns a handle on the named collection.
func Collection(name string) *mongo.Collection {
	return DB.Collection(name)
}

// Disconnect closes the client. Safe to call when never connected.
func Disconnect(ctx context.Context) error {
	if Client == nil {
		return nil
	}
	return Client.Disconnect(ctx)
}
