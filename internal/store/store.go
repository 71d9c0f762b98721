// Package store encapsulates MongoDB client management and collection handles.
package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/doctorshouse/backend/config"
)

// Collection names used across the backend.
const (
	CollectionUsers        = "users"
	CollectionDoctors      = "doctors"
	CollectionReviews      = "reviews"
	CollectionAppointments = "appointments"
)

// Manager owns a MongoDB client and the configured database handle.
type Manager struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewManager initializes the Mongo client using the supplied configuration and
// verifies connectivity with a ping.
func NewManager(ctx context.Context, cfg config.MongoConfig) (*Manager, error) {
	if cfg.URI == "" {
		return nil, errors.New("mongo uri is empty")
	}

	timeout := 10 * time.Second
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	opts := options.Client().ApplyURI(cfg.URI).SetConnectTimeout(timeout)
	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	return &Manager{
		client: client,
		db:     client.Database(cfg.Database),
	}, nil
}

// Database returns the configured database handle.
func (m *Manager) Database() *mongo.Database {
	return m.db
}

// Collection returns a collection handle for the given name.
func (m *Manager) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// Users returns the users collection handle.
func (m *Manager) Users() *mongo.Collection {
	return m.Collection(CollectionUsers)
}

// Doctors returns the doctors collection handle.
func (m *Manager) Doctors() *mongo.Collection {
	return m.Collection(CollectionDoctors)
}

// Reviews returns the reviews collection handle.
func (m *Manager) Reviews() *mongo.Collection {
	return m.Collection(CollectionReviews)
}

// Appointments returns the appointments collection handle.
func (m *Manager) Appointments() *mongo.Collection {
	return m.Collection(CollectionAppointments)
}

// Ping verifies connectivity, used by the readiness probe.
func (m *Manager) Ping(ctx context.Context) error {
	if m == nil || m.client == nil {
		return errors.New("store manager is not initialized")
	}
	return m.client.Ping(ctx, readpref.Primary())
}

// EnsureIndexes creates the foundational indexes. Collections are created
// implicitly if they do not already exist. The unique compound index on the
// appointment tuple makes the booking toggle's check-then-act race lose at
// the storage boundary; the server itself never requires it.
func (m *Manager) EnsureIndexes(ctx context.Context) error {
	if m == nil || m.db == nil {
		return errors.New("store manager is not initialized")
	}

	userIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "email", Value: 1}},
			Options: options.Index().
				SetName("email_unique").
				SetUnique(true),
		},
	}
	if _, err := m.Users().Indexes().CreateMany(ctx, userIndexes); err != nil {
		return fmt.Errorf("create users indexes: %w", err)
	}

	doctorIndexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "name", Value: 1}},
			Options: options.Index().SetName("name_idx"),
		},
	}
	if _, err := m.Doctors().Indexes().CreateMany(ctx, doctorIndexes); err != nil {
		return fmt.Errorf("create doctors indexes: %w", err)
	}

	appointmentIndexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "email", Value: 1},
				{Key: "date", Value: 1},
				{Key: "time", Value: 1},
			},
			Options: options.Index().
				SetName("slot_tuple_unique").
				SetUnique(true),
		},
	}
	if _, err := m.Appointments().Indexes().CreateMany(ctx, appointmentIndexes); err != nil {
		return fmt.Errorf("create appointments indexes: %w", err)
	}

	return nil
}

// Close disconnects the Mongo client.
func (m *Manager) Close(ctx context.Context) error {
	if m == nil || m.client == nil {
		return nil
	}
	return m.client.Disconnect(ctx)
}
