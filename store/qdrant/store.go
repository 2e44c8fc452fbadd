package qdrant

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"

	"github.com/poiesic/vecload/core"
	"github.com/poiesic/vecload/store"
)

// Store is a Qdrant-backed store.Store speaking gRPC through the official
// client.
type Store struct {
	client  *qdrant.Client
	timeout time.Duration
	logger  *slog.Logger
}

var _ store.Store = (*Store)(nil)

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for connection diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// Connect builds a client handle bound to the normalized endpoint. The
// handle authenticates with cfg.APIKey, keeps its channel alive while idle
// so back-to-back batches reuse the connection, and skips the server
// compatibility probe, trusting the client's declared protocol version.
//
// No network I/O happens here: the gRPC channel dials lazily on the first
// call. Construction fails with ErrInvalidEndpoint for an unusable URL and
// ErrConnectionFailed for any other configuration problem.
func Connect(cfg Config, opts ...Option) (*Store, error) {
	s := &Store{
		timeout: cfg.Timeout,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	ep, err := ParseEndpoint(cfg.URL)
	if err != nil {
		return nil, err
	}

	codec, substituted, err := cfg.Compression.resolveCodec()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}
	if substituted {
		s.logger.Warn("compression mode not supported by transport, using gzip",
			"requested", string(cfg.Compression))
	}

	grpcOpts := []grpc.DialOption{
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                30 * time.Second,
			Timeout:             10 * time.Second,
			PermitWithoutStream: true,
		}),
	}
	if codec != "" {
		grpcOpts = append(grpcOpts, grpc.WithDefaultCallOptions(grpc.UseCompressor(codec)))
	}

	s.logger.Info("connecting to vector store", "endpoint", ep.String())

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:                   ep.Host,
		Port:                   ep.Port,
		APIKey:                 cfg.APIKey,
		UseTLS:                 ep.UseTLS,
		SkipCompatibilityCheck: true,
		GrpcOptions:            grpcOpts,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConnectionFailed, err)
	}

	s.client = client
	return s, nil
}

// CollectionExists reports whether the named collection exists.
func (s *Store) CollectionExists(ctx context.Context, name string) (bool, error) {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	exists, err := s.client.CollectionExists(ctx, name)
	if err != nil {
		return false, fmt.Errorf("collection existence check: %w", err)
	}
	return exists, nil
}

// CreateCollection creates the collection with the spec's dimensionality and
// distance metric.
func (s *Store) CreateCollection(ctx context.Context, spec store.CollectionSpec) error {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	err := s.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: spec.Name,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     spec.Dimensions,
			Distance: distanceOf(spec.Distance),
		}),
	})
	if err != nil {
		return fmt.Errorf("create collection: %w", err)
	}
	return nil
}

// UpsertPoints writes one batch of points into the named collection.
func (s *Store) UpsertPoints(ctx context.Context, collection string, points []core.Point) error {
	ctx, cancel := s.callCtx(ctx)
	defer cancel()

	records := make([]*qdrant.PointStruct, 0, len(points))
	for _, p := range points {
		records = append(records, toPointStruct(p))
	}

	_, err := s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: collection,
		Points:         records,
	})
	if err != nil {
		return fmt.Errorf("upsert %d points: %w", len(points), err)
	}
	return nil
}

// Close releases the underlying gRPC channel.
func (s *Store) Close() error {
	return s.client.Close()
}

// callCtx bounds a store call by the configured request timeout.
func (s *Store) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.timeout)
}

// toPointStruct converts a point to its wire representation. The payload
// document is forwarded verbatim.
func toPointStruct(p core.Point) *qdrant.PointStruct {
	return &qdrant.PointStruct{
		Id:      qdrant.NewIDUUID(p.ID),
		Vectors: qdrant.NewVectors(p.Vector...),
		Payload: qdrant.NewValueMap(p.Payload),
	}
}

// distanceOf maps the abstract metric to the wire enum. Unknown values fall
// back to cosine, the only metric this pipeline provisions.
func distanceOf(d store.Distance) qdrant.Distance {
	switch d {
	case store.DistanceEuclid:
		return qdrant.Distance_Euclid
	case store.DistanceDot:
		return qdrant.Distance_Dot
	default:
		return qdrant.Distance_Cosine
	}
}
