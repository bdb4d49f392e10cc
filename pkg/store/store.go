// Package store provides persistence for mission documents.
//
// This package defines the Store interface for mission storage,
// with implementations for different backends:
//   - memory: In-memory storage for development/testing
//   - mongo: MongoDB-backed storage for the API server
//
// # Architecture
//
// A mission document bundles an authored plan with its computed board
// layout and timestamps. The layout is recomputed whenever the plan
// changes, so reads never need the layout engine. The Store interface
// supports:
//   - Create/Get/List/Update/Delete operations
//   - Sentinel errors for missing and duplicate documents
//
// # Usage
//
// Create a store:
//
//	// Development
//	st := store.NewMemoryStore()
//
//	// API server
//	st, err := store.NewMongoStore(ctx, store.MongoConfig{
//	    URI: "mongodb://localhost:27017",
//	})
//
// Manage missions:
//
//	m := store.New(p)
//	if err := st.Create(ctx, m); err != nil {
//	    return err
//	}
//
//	m, err := st.Get(ctx, id)
//	if errors.Is(err, store.ErrNotFound) {
//	    // Mission does not exist
//	}
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/planboard/planboard/pkg/plan"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when a mission does not exist.
	ErrNotFound = errors.New("mission not found")

	// ErrExists is returned when creating a mission whose id is already taken.
	ErrExists = errors.New("mission already exists")
)

// Mission is one stored mission: the authored plan, its computed board, and
// bookkeeping timestamps. The layout is derived state - it is recomputed on
// every plan change and must never be edited independently.
type Mission struct {
	ID        string      `json:"id" bson:"_id"`
	Plan      plan.Plan   `json:"plan" bson:"plan"`
	Layout    plan.Layout `json:"layout" bson:"layout"`
	CreatedAt time.Time   `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time   `json:"updated_at" bson:"updated_at"`
}

// Name returns the mission's display name (the plan name, or the id when the
// plan is unnamed).
func (m Mission) Name() string {
	if m.Plan.Name != "" {
		return m.Plan.Name
	}
	return m.ID
}

// New builds a mission document around a plan: fresh uuid, computed board,
// creation timestamps.
func New(p plan.Plan) Mission {
	now := time.Now().UTC()
	return Mission{
		ID:        uuid.NewString(),
		Plan:      p,
		Layout:    plan.FromResult(p, p.Compute()),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// WithPlan returns a copy of the mission with the plan replaced, the board
// recomputed, and the update timestamp refreshed.
func (m Mission) WithPlan(p plan.Plan) Mission {
	m.Plan = p
	m.Layout = plan.FromResult(p, p.Compute())
	m.UpdatedAt = time.Now().UTC()
	return m
}

// Store is the interface for mission storage backends.
type Store interface {
	// Create persists a new mission.
	// Returns ErrExists if the id is already taken.
	Create(ctx context.Context, m Mission) error

	// Get retrieves a mission by id.
	// Returns ErrNotFound if the mission does not exist.
	Get(ctx context.Context, id string) (Mission, error)

	// List returns all missions ordered by creation time.
	List(ctx context.Context) ([]Mission, error)

	// Update replaces an existing mission.
	// Returns ErrNotFound if the mission does not exist.
	Update(ctx context.Context, m Mission) error

	// Delete removes a mission.
	// Returns ErrNotFound if the mission does not exist.
	Delete(ctx context.Context, id string) error

	// Close releases backend resources.
	Close(ctx context.Context) error
}
