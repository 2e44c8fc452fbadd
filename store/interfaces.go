package store

import (
	"context"

	"github.com/poiesic/vecload/core"
)

// Distance identifies the similarity metric a collection is created with.
type Distance string

const (
	// DistanceCosine is cosine similarity, the metric this pipeline
	// provisions by default.
	DistanceCosine Distance = "Cosine"
	// DistanceEuclid is euclidean (L2) distance.
	DistanceEuclid Distance = "Euclid"
	// DistanceDot is dot-product similarity.
	DistanceDot Distance = "Dot"
)

// CollectionSpec describes a collection to provision.
type CollectionSpec struct {
	Name       string
	Dimensions uint64
	Distance   Distance
}

// Store is a remote vector store reachable over a client handle.
// The pipeline drives it from a single goroutine; implementations are not
// required to be safe for concurrent use.
type Store interface {
	// CollectionExists reports whether a collection with the given name
	// already exists in the store.
	CollectionExists(ctx context.Context, name string) (bool, error)

	// CreateCollection creates a collection with the spec's dimensionality
	// and distance metric. It is an error to create a collection that
	// already exists; callers use EnsureCollection for idempotent setup.
	CreateCollection(ctx context.Context, spec CollectionSpec) error

	// UpsertPoints writes a batch of points into the named collection,
	// inserting or overwriting by point id. The batch is sent in one call;
	// it either fully succeeds or the whole call errors.
	UpsertPoints(ctx context.Context, collection string, points []core.Point) error

	// Close releases the client handle and its connections.
	Close() error
}
