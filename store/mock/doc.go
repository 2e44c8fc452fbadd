// Package mock provides an in-memory test double for the store.Store
// interface.
//
// The mock keeps created collections and upserted points in maps, so tests
// exercise real provisioning and upload flows without a network. Custom
// behavior (failures, call counting beyond the built-in counters) is injected
// via function fields:
//
//	s := mock.NewStore()
//	s.UpsertPointsFunc = func(ctx context.Context, collection string, points []core.Point) error {
//	    return errors.New("boom")
//	}
package mock
