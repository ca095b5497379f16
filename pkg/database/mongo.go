package database

import (
	"context"
	"fmt"
	"time"

	"movie-store/pkg/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo wraps the client and database handle, built once at startup
// and passed into repositories.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// InitDB connects to MongoDB and verifies the connection
func InitDB(config utils.DatabaseConfig) (*Mongo, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.URI))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	// Test connection
	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx, nil); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &Mongo{
		client: client,
		db:     client.Database(config.Name),
	}, nil
}

// Collection returns a handle to the named collection
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// Close disconnects the underlying client
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
