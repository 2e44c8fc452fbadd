package mock

import (
	"context"
	"fmt"

	"github.com/poiesic/vecload/core"
	"github.com/poiesic/vecload/store"
)

// Store is a test double for store.Store backed by in-process maps.
// It allows custom behavior injection via function fields.
type Store struct {
	// CollectionExistsFunc is called by CollectionExists if set.
	// If nil, consults the in-memory collection map.
	CollectionExistsFunc func(ctx context.Context, name string) (bool, error)

	// CreateCollectionFunc is called by CreateCollection if set.
	// If nil, records the collection in the in-memory map.
	CreateCollectionFunc func(ctx context.Context, spec store.CollectionSpec) error

	// UpsertPointsFunc is called by UpsertPoints if set.
	// If nil, appends the points to the in-memory collection.
	UpsertPointsFunc func(ctx context.Context, collection string, points []core.Point) error

	// CloseFunc is called by Close if set.
	CloseFunc func() error

	collections map[string]store.CollectionSpec
	points      map[string][]core.Point

	existsCalls int
	createCalls int
	upsertCalls int
	closed      bool
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{
		collections: make(map[string]store.CollectionSpec),
		points:      make(map[string][]core.Point),
	}
}

var _ store.Store = (*Store)(nil)

// CollectionExists reports whether the collection was created or seeded.
func (m *Store) CollectionExists(ctx context.Context, name string) (bool, error) {
	m.existsCalls++

	if m.CollectionExistsFunc != nil {
		return m.CollectionExistsFunc(ctx, name)
	}

	_, ok := m.collections[name]
	return ok, nil
}

// CreateCollection records the collection, failing if it already exists.
func (m *Store) CreateCollection(ctx context.Context, spec store.CollectionSpec) error {
	m.createCalls++

	if m.CreateCollectionFunc != nil {
		return m.CreateCollectionFunc(ctx, spec)
	}

	if _, ok := m.collections[spec.Name]; ok {
		return fmt.Errorf("collection %q already exists", spec.Name)
	}
	m.collections[spec.Name] = spec
	return nil
}

// UpsertPoints appends the batch to the named collection. Points are not
// deduplicated by id; tests only need arrival counts and order.
func (m *Store) UpsertPoints(ctx context.Context, collection string, points []core.Point) error {
	m.upsertCalls++

	if m.UpsertPointsFunc != nil {
		return m.UpsertPointsFunc(ctx, collection, points)
	}

	if _, ok := m.collections[collection]; !ok {
		return fmt.Errorf("collection %q does not exist", collection)
	}
	m.points[collection] = append(m.points[collection], points...)
	return nil
}

// Close marks the store closed.
func (m *Store) Close() error {
	m.closed = true

	if m.CloseFunc != nil {
		return m.CloseFunc()
	}
	return nil
}

// SeedCollection registers a collection as pre-existing without counting a
// creation call.
func (m *Store) SeedCollection(spec store.CollectionSpec) {
	m.collections[spec.Name] = spec
}

// Collection returns the spec a collection was created with.
func (m *Store) Collection(name string) (store.CollectionSpec, bool) {
	spec, ok := m.collections[name]
	return spec, ok
}

// Points returns everything upserted into the named collection, in arrival
// order.
func (m *Store) Points(collection string) []core.Point {
	return m.points[collection]
}

// ExistsCalls returns the number of CollectionExists calls.
func (m *Store) ExistsCalls() int { return m.existsCalls }

// CreateCalls returns the number of CreateCollection calls.
func (m *Store) CreateCalls() int { return m.createCalls }

// UpsertCalls returns the number of UpsertPoints calls.
func (m *Store) UpsertCalls() int { return m.upsertCalls }

// Closed reports whether Close was called.
func (m *Store) Closed() bool { return m.closed }
