package storage

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Storage wraps a MongoDB client and a database reference.
// It is safe for concurrent use.
type Storage struct {
	client   *mongo.Client
	database *mongo.Database
}

// New creates a new MongoDB storage connection and verifies it with a ping.
// The caller must call Close to release the connection.
func New(ctx context.Context, cfg Config) (*Storage, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("MongoDB URL is required")
	}

	dbName := cfg.Database
	if dbName == "" {
		dbName = "gostarter"
	}

	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return &Storage{
		client:   client,
		database: client.Database(dbName),
	}, nil
}

// Database returns the underlying *mongo.Database for direct access
func (s *Storage) Database() *mongo.Database {
	return s.database
}

// Client returns the underlying *mongo.Client for direct access
func (s *Storage) Client() *mongo.Client {
	return s.client
}

// Name returns the database name the storage is bound to.
func (s *Storage) Name() string {
	return s.database.Name()
}

// DropDatabase destroys the entire bound database and all its collections.
func (s *Storage) DropDatabase(ctx context.Context) error {
	if err := s.database.Drop(ctx); err != nil {
		return fmt.Errorf("failed to drop database %s: %w", s.database.Name(), err)
	}
	return nil
}

// Close releases the MongoDB connection.
func (s *Storage) Close() error {
	if s.client != nil {
		return s.client.Disconnect(context.Background())
	}
	return nil
}
