package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoConfig configures the MongoDB connection.
type MongoConfig struct {
	URI        string // Connection URI (default: mongodb://localhost:27017)
	Database   string // Database name (default: planboard)
	Collection string // Collection name (default: missions)
}

func (c MongoConfig) withDefaults() MongoConfig {
	if c.URI == "" {
		c.URI = "mongodb://localhost:27017"
	}
	if c.Database == "" {
		c.Database = "planboard"
	}
	if c.Collection == "" {
		c.Collection = "missions"
	}
	return c
}

// MongoStore is a MongoDB-backed mission store.
// Mission documents live in a single collection keyed by uuid; they carry no
// TTL, so missions persist until deleted.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to MongoDB and verifies the connection.
// Transient ping failures are retried with backoff before giving up.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	cfg = cfg.withDefaults()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.URI, err)
	}

	if err := retryTransient(ctx, func() error {
		return client.Ping(ctx, nil)
	}); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping %s: %w", cfg.URI, err)
	}

	return &MongoStore{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Create persists a new mission.
func (s *MongoStore) Create(ctx context.Context, m Mission) error {
	_, err := s.coll.InsertOne(ctx, m)
	if mongo.IsDuplicateKeyError(err) {
		return ErrExists
	}
	if err != nil {
		return fmt.Errorf("insert mission %s: %w", m.ID, err)
	}
	return nil
}

// Get retrieves a mission by id. Transient read failures are retried.
func (s *MongoStore) Get(ctx context.Context, id string) (Mission, error) {
	var m Mission
	err := retryTransient(ctx, func() error {
		return s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&m)
	})
	if errors.Is(err, mongo.ErrNoDocuments) {
		return Mission{}, ErrNotFound
	}
	if err != nil {
		return Mission{}, fmt.Errorf("find mission %s: %w", id, err)
	}
	return m, nil
}

// List returns all missions ordered by creation time.
// Transient read failures are retried.
func (s *MongoStore) List(ctx context.Context) ([]Mission, error) {
	var missions []Mission
	err := retryTransient(ctx, func() error {
		cur, err := s.coll.Find(ctx, bson.M{},
			options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}))
		if err != nil {
			return err
		}
		missions = missions[:0]
		return cur.All(ctx, &missions)
	})
	if err != nil {
		return nil, fmt.Errorf("list missions: %w", err)
	}
	return missions, nil
}

// Update replaces an existing mission.
func (s *MongoStore) Update(ctx context.Context, m Mission) error {
	res, err := s.coll.ReplaceOne(ctx, bson.M{"_id": m.ID}, m)
	if err != nil {
		return fmt.Errorf("replace mission %s: %w", m.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a mission.
func (s *MongoStore) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete mission %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Close disconnects from MongoDB.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

var _ Store = (*MongoStore)(nil)

// retryTransient executes fn up to 3 times with doubling backoff while the
// error looks transient (driver timeout or network error). Other errors are
// returned immediately.
//
// Only reads and the initial ping go through this: a timed-out write may
// have landed on the server, and replaying it would misreport the outcome
// (a landed insert replays as ErrExists).
func retryTransient(ctx context.Context, fn func() error) error {
	const attempts = 3
	delay := time.Second

	var lastErr error
	for i := range attempts {
		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err
		if !isTransient(err) {
			return err
		}
		if i < attempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
				delay *= 2
			}
		}
	}
	return lastErr
}

func isTransient(err error) bool {
	return mongo.IsTimeout(err) || mongo.IsNetworkError(err)
}
