package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/vecload/store"
	"github.com/poiesic/vecload/store/mock"
)

func TestEnsureCollection_CreatesWhenAbsent(t *testing.T) {
	ctx := context.Background()
	s := mock.NewStore()

	spec := store.CollectionSpec{Name: "documents", Dimensions: 768, Distance: store.DistanceCosine}
	created, err := store.EnsureCollection(ctx, s, spec)
	require.NoError(t, err)
	assert.True(t, created, "absent collection should be created")

	got, ok := s.Collection("documents")
	require.True(t, ok)
	assert.Equal(t, spec, got, "creation should carry the requested spec")
	assert.Equal(t, 1, s.ExistsCalls())
	assert.Equal(t, 1, s.CreateCalls())
}

func TestEnsureCollection_IdempotentWhenPresent(t *testing.T) {
	ctx := context.Background()
	s := mock.NewStore()
	s.SeedCollection(store.CollectionSpec{Name: "documents", Dimensions: 512, Distance: store.DistanceCosine})

	// Existing configuration is never altered or re-validated, even though
	// the requested dimensionality differs.
	spec := store.CollectionSpec{Name: "documents", Dimensions: 768, Distance: store.DistanceCosine}

	for i := 0; i < 2; i++ {
		created, err := store.EnsureCollection(ctx, s, spec)
		require.NoError(t, err)
		assert.False(t, created, "existing collection must not be recreated")
	}

	assert.Equal(t, 0, s.CreateCalls(), "no creation call should be issued")
	got, _ := s.Collection("documents")
	assert.Equal(t, uint64(512), got.Dimensions, "existing spec should be untouched")
}

func TestEnsureCollection_ExistenceCheckError(t *testing.T) {
	ctx := context.Background()
	s := mock.NewStore()
	cause := errors.New("connection refused")
	s.CollectionExistsFunc = func(ctx context.Context, name string) (bool, error) {
		return false, cause
	}

	_, err := store.EnsureCollection(ctx, s, store.CollectionSpec{Name: "documents"})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrProvisionFailed)
	assert.ErrorIs(t, err, cause, "underlying cause should stay matchable")
	assert.Equal(t, 0, s.CreateCalls(), "failed existence check must abort before creation")
}

func TestEnsureCollection_CreationError(t *testing.T) {
	ctx := context.Background()
	s := mock.NewStore()
	cause := errors.New("invalid dimensions")
	s.CreateCollectionFunc = func(ctx context.Context, spec store.CollectionSpec) error {
		return cause
	}

	_, err := store.EnsureCollection(ctx, s, store.CollectionSpec{Name: "documents", Dimensions: 768})
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrProvisionFailed)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), `"documents"`, "error should name the collection")
}
